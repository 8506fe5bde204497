package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// HistoryHandler serves a seeker's work and education history. Both resources
// share the period rules: no overlaps and at most one ongoing record per
// profile.
type HistoryHandler struct {
	experienceUC domain.ExperienceUsecase
	educationUC  domain.EducationUsecase
}

// NewHistoryHandler registers work experience and education routes
func NewHistoryHandler(r *gin.RouterGroup, experienceUC domain.ExperienceUsecase, educationUC domain.EducationUsecase) {
	handler := &HistoryHandler{experienceUC: experienceUC, educationUC: educationUC}

	seekers := r.Group("/seekers/:id")
	{
		seekers.GET("/experiences", handler.ListExperiences)
		seekers.POST("/experiences", handler.CreateExperience)
		seekers.PUT("/experiences/:expId", handler.UpdateExperience)
		seekers.DELETE("/experiences/:expId", handler.DeleteExperience)

		seekers.GET("/educations", handler.ListEducations)
		seekers.POST("/educations", handler.CreateEducation)
		seekers.PUT("/educations/:eduId", handler.UpdateEducation)
		seekers.DELETE("/educations/:eduId", handler.DeleteEducation)
	}
}

// ExperienceRequest is the request payload for work history records.
// end_date absent means the role is ongoing.
type ExperienceRequest struct {
	JobTitle       string     `json:"job_title" binding:"required"`
	CompanyName    string     `json:"company_name" binding:"required"`
	Location       *string    `json:"location"`
	EmploymentType string     `json:"employment_type" binding:"required"`
	StartDate      time.Time  `json:"start_date" binding:"required"`
	EndDate        *time.Time `json:"end_date"`
	Description    *string    `json:"description"`
}

// EducationRequest is the request payload for education records.
// end_year absent means the study is ongoing.
type EducationRequest struct {
	Institution       string  `json:"institution" binding:"required"`
	QualificationName string  `json:"qualification_name" binding:"required"`
	FieldOfStudy      *string `json:"field_of_study"`
	EducationLevel    string  `json:"education_level" binding:"required"`
	StartYear         int     `json:"start_year" binding:"required"`
	EndYear           *int    `json:"end_year"`
	Description       *string `json:"description"`
}

// ListExperiences godoc
// @Summary      List a seeker's work history
// @Tags         history
// @Produce      json
// @Param        id  path      int  true  "Profile ID"
// @Success      200  {object}  response.Response{data=[]domain.SeekerExperience}
// @Failure      404  {object}  response.Response
// @Router       /seekers/{id}/experiences [get]
// @Security     BearerAuth
func (h *HistoryHandler) ListExperiences(c *gin.Context) {
	profileID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	_, experiences, err := h.experienceUC.ListByProfile(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experiences retrieved", experiences)
}

// CreateExperience godoc
// @Summary      Add a work history record
// @Description  Rejected with a field error bag when the period overlaps an
// @Description  existing one or a second ongoing record is submitted
// @Tags         history
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Profile ID"
// @Param        body  body      ExperienceRequest  true  "Experience data"
// @Success      201   {object}  response.Response{data=domain.SeekerExperience}
// @Failure      422   {object}  response.Response
// @Router       /seekers/{id}/experiences [post]
// @Security     BearerAuth
func (h *HistoryHandler) CreateExperience(c *gin.Context) {
	profileID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req ExperienceRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	exp := &domain.SeekerExperience{
		ProfileID:      profileID,
		JobTitle:       req.JobTitle,
		CompanyName:    req.CompanyName,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Description:    req.Description,
	}
	if err := h.experienceUC.Create(c.Request.Context(), exp); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Experience added", exp)
}

// UpdateExperience godoc
// @Summary      Update a work history record
// @Tags         history
// @Accept       json
// @Produce      json
// @Param        id     path      int                true  "Profile ID"
// @Param        expId  path      int                true  "Experience ID"
// @Param        body   body      ExperienceRequest  true  "Experience data"
// @Success      200    {object}  response.Response{data=domain.SeekerExperience}
// @Failure      422    {object}  response.Response
// @Router       /seekers/{id}/experiences/{expId} [put]
// @Security     BearerAuth
func (h *HistoryHandler) UpdateExperience(c *gin.Context) {
	profileID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	expID, err := pathID(c, "expId")
	if err != nil {
		c.Error(err)
		return
	}

	var req ExperienceRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	exp := &domain.SeekerExperience{
		ID:             expID,
		ProfileID:      profileID,
		JobTitle:       req.JobTitle,
		CompanyName:    req.CompanyName,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Description:    req.Description,
	}
	if err := h.experienceUC.Update(c.Request.Context(), exp); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience updated", exp)
}

// DeleteExperience godoc
// @Summary      Delete a work history record
// @Tags         history
// @Produce      json
// @Param        id     path      int  true  "Profile ID"
// @Param        expId  path      int  true  "Experience ID"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /seekers/{id}/experiences/{expId} [delete]
// @Security     BearerAuth
func (h *HistoryHandler) DeleteExperience(c *gin.Context) {
	expID, err := pathID(c, "expId")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.experienceUC.Delete(c.Request.Context(), expID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience deleted", nil)
}

// ListEducations godoc
// @Summary      List a seeker's education history
// @Tags         history
// @Produce      json
// @Param        id  path      int  true  "Profile ID"
// @Success      200  {object}  response.Response{data=[]domain.SeekerEducation}
// @Failure      404  {object}  response.Response
// @Router       /seekers/{id}/educations [get]
// @Security     BearerAuth
func (h *HistoryHandler) ListEducations(c *gin.Context) {
	profileID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	_, educations, err := h.educationUC.ListByProfile(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Educations retrieved", educations)
}

// CreateEducation godoc
// @Summary      Add an education record
// @Tags         history
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "Profile ID"
// @Param        body  body      EducationRequest  true  "Education data"
// @Success      201   {object}  response.Response{data=domain.SeekerEducation}
// @Failure      422   {object}  response.Response
// @Router       /seekers/{id}/educations [post]
// @Security     BearerAuth
func (h *HistoryHandler) CreateEducation(c *gin.Context) {
	profileID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req EducationRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	edu := &domain.SeekerEducation{
		ProfileID:         profileID,
		Institution:       req.Institution,
		QualificationName: req.QualificationName,
		FieldOfStudy:      req.FieldOfStudy,
		EducationLevel:    req.EducationLevel,
		StartYear:         req.StartYear,
		EndYear:           req.EndYear,
		Description:       req.Description,
	}
	if err := h.educationUC.Create(c.Request.Context(), edu); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Education added", edu)
}

// UpdateEducation godoc
// @Summary      Update an education record
// @Tags         history
// @Accept       json
// @Produce      json
// @Param        id     path      int               true  "Profile ID"
// @Param        eduId  path      int               true  "Education ID"
// @Param        body   body      EducationRequest  true  "Education data"
// @Success      200    {object}  response.Response{data=domain.SeekerEducation}
// @Failure      422    {object}  response.Response
// @Router       /seekers/{id}/educations/{eduId} [put]
// @Security     BearerAuth
func (h *HistoryHandler) UpdateEducation(c *gin.Context) {
	profileID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	eduID, err := pathID(c, "eduId")
	if err != nil {
		c.Error(err)
		return
	}

	var req EducationRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	edu := &domain.SeekerEducation{
		ID:                eduID,
		ProfileID:         profileID,
		Institution:       req.Institution,
		QualificationName: req.QualificationName,
		FieldOfStudy:      req.FieldOfStudy,
		EducationLevel:    req.EducationLevel,
		StartYear:         req.StartYear,
		EndYear:           req.EndYear,
		Description:       req.Description,
	}
	if err := h.educationUC.Update(c.Request.Context(), edu); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education updated", edu)
}

// DeleteEducation godoc
// @Summary      Delete an education record
// @Tags         history
// @Produce      json
// @Param        id     path      int  true  "Profile ID"
// @Param        eduId  path      int  true  "Education ID"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /seekers/{id}/educations/{eduId} [delete]
// @Security     BearerAuth
func (h *HistoryHandler) DeleteEducation(c *gin.Context) {
	eduID, err := pathID(c, "eduId")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.educationUC.Delete(c.Request.Context(), eduID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education deleted", nil)
}
