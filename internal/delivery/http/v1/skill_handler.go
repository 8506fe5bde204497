package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

// NewSkillHandler registers skill taxonomy routes. Reads are open to any
// authenticated user; writes are admin only and guarded in the router.
func NewSkillHandler(read, admin *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	read.GET("/skills", handler.List)
	read.GET("/skills/:id", handler.Get)

	admin.POST("/skills", handler.Create)
	admin.PUT("/skills/:id", handler.Update)
	admin.DELETE("/skills/:id", handler.Delete)
}

// SkillRequest is the request payload for creating or updating a skill
type SkillRequest struct {
	Name string `json:"name" binding:"required"`
}

// List godoc
// @Summary      List skills
// @Tags         skills
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Skill}
// @Router       /skills [get]
// @Security     BearerAuth
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillUC.ListSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills retrieved", skills)
}

// Get godoc
// @Summary      Get a skill
// @Tags         skills
// @Produce      json
// @Param        id  path      int  true  "Skill ID"
// @Success      200  {object}  response.Response{data=domain.Skill}
// @Failure      404  {object}  response.Response
// @Router       /skills/{id} [get]
// @Security     BearerAuth
func (h *SkillHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	skill, err := h.skillUC.GetSkill(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill retrieved", skill)
}

// Create godoc
// @Summary      Create a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        body  body      SkillRequest  true  "Skill data"
// @Success      201   {object}  response.Response{data=domain.Skill}
// @Failure      409   {object}  response.Response
// @Router       /skills [post]
// @Security     BearerAuth
func (h *SkillHandler) Create(c *gin.Context) {
	var req SkillRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	skill := &domain.Skill{Name: req.Name}
	if err := h.skillUC.CreateSkill(c.Request.Context(), skill); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Skill created", skill)
}

// Update godoc
// @Summary      Update a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        id    path      int           true  "Skill ID"
// @Param        body  body      SkillRequest  true  "Skill data"
// @Success      200   {object}  response.Response{data=domain.Skill}
// @Failure      404   {object}  response.Response
// @Router       /skills/{id} [put]
// @Security     BearerAuth
func (h *SkillHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req SkillRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	skill := &domain.Skill{ID: id, Name: req.Name}
	if err := h.skillUC.UpdateSkill(c.Request.Context(), skill); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill updated", skill)
}

// Delete godoc
// @Summary      Delete a skill
// @Description  Fails while any profile or job post still references the skill
// @Tags         skills
// @Produce      json
// @Param        id  path      int  true  "Skill ID"
// @Success      200  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /skills/{id} [delete]
// @Security     BearerAuth
func (h *SkillHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.skillUC.DeleteSkill(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill deleted", nil)
}
