package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	roleUC domain.RoleUsecase
}

// NewRoleHandler registers role management routes (admin only)
func NewRoleHandler(r *gin.RouterGroup, roleUC domain.RoleUsecase) {
	handler := &RoleHandler{roleUC: roleUC}

	roles := r.Group("/roles")
	{
		roles.GET("", handler.List)
		roles.GET("/:id", handler.Get)
		roles.POST("", handler.Create)
		roles.PUT("/:id", handler.Update)
		roles.DELETE("/:id", handler.Delete)
	}
}

// RoleRequest is the request payload for creating or updating a role
type RoleRequest struct {
	Name   string  `json:"name" binding:"required"`
	Desc   *string `json:"desc"`
	Status string  `json:"status"`
}

// List godoc
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Role}
// @Router       /roles [get]
// @Security     BearerAuth
func (h *RoleHandler) List(c *gin.Context) {
	roles, err := h.roleUC.ListRoles(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Roles retrieved", roles)
}

// Get godoc
// @Summary      Get a role
// @Tags         roles
// @Produce      json
// @Param        id  path      int  true  "Role ID"
// @Success      200  {object}  response.Response{data=domain.Role}
// @Failure      404  {object}  response.Response
// @Router       /roles/{id} [get]
// @Security     BearerAuth
func (h *RoleHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	role, err := h.roleUC.GetRole(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Role retrieved", role)
}

// Create godoc
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        body  body      RoleRequest  true  "Role data"
// @Success      201   {object}  response.Response{data=domain.Role}
// @Router       /roles [post]
// @Security     BearerAuth
func (h *RoleHandler) Create(c *gin.Context) {
	var req RoleRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	role := &domain.Role{Name: req.Name, Desc: req.Desc, Status: req.Status}
	if err := h.roleUC.CreateRole(c.Request.Context(), role); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Role created", role)
}

// Update godoc
// @Summary      Update a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Role ID"
// @Param        body  body      RoleRequest  true  "Role data"
// @Success      200   {object}  response.Response{data=domain.Role}
// @Failure      404   {object}  response.Response
// @Router       /roles/{id} [put]
// @Security     BearerAuth
func (h *RoleHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req RoleRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	role := &domain.Role{ID: id, Name: req.Name, Desc: req.Desc, Status: req.Status}
	if err := h.roleUC.UpdateRole(c.Request.Context(), role); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Role updated", role)
}

// Delete godoc
// @Summary      Delete a role
// @Tags         roles
// @Produce      json
// @Param        id  path      int  true  "Role ID"
// @Success      200  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /roles/{id} [delete]
// @Security     BearerAuth
func (h *RoleHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.roleUC.DeleteRole(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Role deleted", nil)
}
