package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryUC domain.CategoryUsecase
}

// NewCategoryHandler registers job category routes. Reads are open to any
// authenticated user; writes are admin only and guarded in the router.
func NewCategoryHandler(read, admin *gin.RouterGroup, categoryUC domain.CategoryUsecase) {
	handler := &CategoryHandler{categoryUC: categoryUC}

	read.GET("/categories", handler.List)
	read.GET("/categories/:id", handler.Get)

	admin.POST("/categories", handler.Create)
	admin.PUT("/categories/:id", handler.Update)
	admin.DELETE("/categories/:id", handler.Delete)
}

// CategoryRequest is the request payload for creating or updating a category
type CategoryRequest struct {
	Name string  `json:"name" binding:"required"`
	Desc *string `json:"desc"`
}

// List godoc
// @Summary      List job categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.JobCategory}
// @Router       /categories [get]
// @Security     BearerAuth
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryUC.ListCategories(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Categories retrieved", categories)
}

// Get godoc
// @Summary      Get a job category
// @Tags         categories
// @Produce      json
// @Param        id  path      int  true  "Category ID"
// @Success      200  {object}  response.Response{data=domain.JobCategory}
// @Failure      404  {object}  response.Response
// @Router       /categories/{id} [get]
// @Security     BearerAuth
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	category, err := h.categoryUC.GetCategory(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Category retrieved", category)
}

// Create godoc
// @Summary      Create a job category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      CategoryRequest  true  "Category data"
// @Success      201   {object}  response.Response{data=domain.JobCategory}
// @Router       /categories [post]
// @Security     BearerAuth
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	category := &domain.JobCategory{Name: req.Name, Desc: req.Desc}
	if err := h.categoryUC.CreateCategory(c.Request.Context(), category); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Category created", category)
}

// Update godoc
// @Summary      Update a job category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Category ID"
// @Param        body  body      CategoryRequest  true  "Category data"
// @Success      200   {object}  response.Response{data=domain.JobCategory}
// @Failure      404   {object}  response.Response
// @Router       /categories/{id} [put]
// @Security     BearerAuth
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req CategoryRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	category := &domain.JobCategory{ID: id, Name: req.Name, Desc: req.Desc}
	if err := h.categoryUC.UpdateCategory(c.Request.Context(), category); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Category updated", category)
}

// Delete godoc
// @Summary      Delete a job category
// @Description  Fails while any job post still references the category
// @Tags         categories
// @Produce      json
// @Param        id  path      int  true  "Category ID"
// @Success      200  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /categories/{id} [delete]
// @Security     BearerAuth
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.categoryUC.DeleteCategory(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Category deleted", nil)
}
