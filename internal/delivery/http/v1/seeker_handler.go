package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SeekerHandler struct {
	seekerUC domain.SeekerUsecase
}

// NewSeekerHandler registers seeker profile routes
func NewSeekerHandler(r *gin.RouterGroup, seekerUC domain.SeekerUsecase) {
	handler := &SeekerHandler{seekerUC: seekerUC}

	r.GET("/seekers/home", handler.Home)

	seekers := r.Group("/seekers")
	{
		seekers.GET("", handler.List)
		seekers.GET("/:id", handler.Get)
		seekers.POST("", handler.Create)
		seekers.PUT("/:id", handler.Update)
		seekers.DELETE("/:id", handler.Delete)

		seekers.GET("/:id/skills", handler.ListSkills)
		seekers.PUT("/:id/skills", handler.SyncSkills)
		seekers.DELETE("/:id/skills/:skillId", handler.DetachSkill)
	}
}

// SeekerProfileRequest is the request payload for creating or updating a
// seeker profile
type SeekerProfileRequest struct {
	UserID            int64   `json:"user_id" binding:"required"`
	ProfilePictureURL *string `json:"profile_picture_url"`
	Headline          *string `json:"headline"`
	Summary           *string `json:"summary"`
	Location          *string `json:"location"`
	CurrentPosition   *string `json:"current_position"`
	ExperienceYears   *int    `json:"experience_years"`
	ResumeURL         *string `json:"resume_url"`
	ProfileVisibility string  `json:"profile_visibility"`
}

// SyncSkillsRequest replaces the profile's full skill set in one call
type SyncSkillsRequest struct {
	Skills []domain.SeekerSkillInput `json:"skills" binding:"required"`
}

func (req *SeekerProfileRequest) toDomain(id int64) *domain.SeekerProfile {
	return &domain.SeekerProfile{
		ID:                id,
		UserID:            req.UserID,
		ProfilePictureURL: req.ProfilePictureURL,
		Headline:          req.Headline,
		Summary:           req.Summary,
		Location:          req.Location,
		CurrentPosition:   req.CurrentPosition,
		ExperienceYears:   req.ExperienceYears,
		ResumeURL:         req.ResumeURL,
		ProfileVisibility: req.ProfileVisibility,
	}
}

// List godoc
// @Summary      List seeker profiles
// @Description  Profiles of active users only
// @Tags         seekers
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.SeekerProfile}
// @Router       /seekers [get]
// @Security     BearerAuth
func (h *SeekerHandler) List(c *gin.Context) {
	profiles, err := h.seekerUC.ListProfiles(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Seeker profiles retrieved", profiles)
}

// Get godoc
// @Summary      Get a seeker profile
// @Tags         seekers
// @Produce      json
// @Param        id  path      int  true  "Profile ID"
// @Success      200  {object}  response.Response{data=domain.SeekerProfile}
// @Failure      404  {object}  response.Response
// @Router       /seekers/{id} [get]
// @Security     BearerAuth
func (h *SeekerHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	profile, err := h.seekerUC.GetProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Seeker profile retrieved", profile)
}

// Create godoc
// @Summary      Create a seeker profile
// @Tags         seekers
// @Accept       json
// @Produce      json
// @Param        body  body      SeekerProfileRequest  true  "Profile data"
// @Success      201   {object}  response.Response{data=domain.SeekerProfile}
// @Failure      409   {object}  response.Response
// @Router       /seekers [post]
// @Security     BearerAuth
func (h *SeekerHandler) Create(c *gin.Context) {
	var req SeekerProfileRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	profile := req.toDomain(0)
	if err := h.seekerUC.CreateProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Seeker profile created", profile)
}

// Update godoc
// @Summary      Update a seeker profile
// @Tags         seekers
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Profile ID"
// @Param        body  body      SeekerProfileRequest  true  "Profile data"
// @Success      200   {object}  response.Response{data=domain.SeekerProfile}
// @Failure      404   {object}  response.Response
// @Router       /seekers/{id} [put]
// @Security     BearerAuth
func (h *SeekerHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req SeekerProfileRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	profile := req.toDomain(id)
	if err := h.seekerUC.UpdateProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Seeker profile updated", profile)
}

// Delete godoc
// @Summary      Delete a seeker profile
// @Tags         seekers
// @Produce      json
// @Param        id  path      int  true  "Profile ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /seekers/{id} [delete]
// @Security     BearerAuth
func (h *SeekerHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.seekerUC.DeleteProfile(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Seeker profile deleted", nil)
}

// ListSkills godoc
// @Summary      List a seeker's skills
// @Tags         seekers
// @Produce      json
// @Param        id  path      int  true  "Profile ID"
// @Success      200  {object}  response.Response{data=[]domain.Skill}
// @Failure      404  {object}  response.Response
// @Router       /seekers/{id}/skills [get]
// @Security     BearerAuth
func (h *SeekerHandler) ListSkills(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	_, skills, err := h.seekerUC.ListSkills(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills retrieved", skills)
}

// SyncSkills godoc
// @Summary      Replace a seeker's skill set
// @Description  The submitted list becomes the profile's complete skill set
// @Tags         seekers
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Profile ID"
// @Param        body  body      SyncSkillsRequest  true  "Skill rows"
// @Success      200   {object}  response.Response{data=[]domain.Skill}
// @Failure      422   {object}  response.Response
// @Router       /seekers/{id}/skills [put]
// @Security     BearerAuth
func (h *SeekerHandler) SyncSkills(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req SyncSkillsRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	skills, err := h.seekerUC.SyncSkills(c.Request.Context(), id, req.Skills)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills updated", skills)
}

// DetachSkill godoc
// @Summary      Remove one skill from a seeker profile
// @Tags         seekers
// @Produce      json
// @Param        id       path      int  true  "Profile ID"
// @Param        skillId  path      int  true  "Skill ID"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /seekers/{id}/skills/{skillId} [delete]
// @Security     BearerAuth
func (h *SeekerHandler) DetachSkill(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	skillID, err := pathID(c, "skillId")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.seekerUC.DetachSkill(c.Request.Context(), id, skillID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill removed", nil)
}

// Home godoc
// @Summary      Seeker landing page data
// @Description  Counts, busiest categories and the latest open jobs
// @Tags         seekers
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.SeekerHomeData}
// @Router       /seekers/home [get]
// @Security     BearerAuth
func (h *SeekerHandler) Home(c *gin.Context) {
	data, err := h.seekerUC.HomeData(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Home data retrieved", data)
}
