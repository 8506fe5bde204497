package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
	seekerUC      domain.SeekerUsecase
}

// NewApplicationHandler registers application lifecycle routes
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase, seekerUC domain.SeekerUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC, seekerUC: seekerUC}

	r.POST("/jobs/:id/apply", handler.Apply)
	r.GET("/jobs/:id/applications", handler.ListByJob)
	r.GET("/jobs/:id/applied", handler.HasApplied)
	r.GET("/seekers/:id/applications", handler.ListBySeeker)

	applications := r.Group("/applications")
	{
		applications.PATCH("/:id/status", handler.UpdateStatus)
		applications.POST("/:id/withdraw", handler.Withdraw)
		applications.POST("/:id/reapply", handler.Reapply)
	}
}

// ApplyRequest is the request payload for submitting an application
type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

// ApplicationStatusRequest is the request payload for an employer status
// change. rejection_reason is mandatory when status is REJECTED.
type ApplicationStatusRequest struct {
	Status          string  `json:"status" binding:"required"`
	EmployerNotes   *string `json:"employer_notes"`
	RejectionReason *string `json:"rejection_reason"`
}

// Apply godoc
// @Summary      Apply to a job post
// @Description  One application per seeker per post; requires a resume on file
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int           true  "Job post ID"
// @Param        body  body      ApplyRequest  true  "Application data"
// @Success      201   {object}  response.Response{data=domain.JobApplication}
// @Failure      409   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobPostID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req ApplyRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	profile, err := h.seekerUC.GetProfileByUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(apperror.Forbidden("Only job seekers can apply to jobs"))
		return
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), jobPostID, profile.ID, req.CoverLetter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// HasApplied godoc
// @Summary      Check whether the current seeker applied to a post
// @Tags         applications
// @Produce      json
// @Param        id  path      int  true  "Job post ID"
// @Success      200  {object}  response.Response{data=map[string]bool}
// @Router       /jobs/{id}/applied [get]
// @Security     BearerAuth
func (h *ApplicationHandler) HasApplied(c *gin.Context) {
	jobPostID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	profile, err := h.seekerUC.GetProfileByUser(c.Request.Context(), userID)
	if err != nil {
		response.Success(c, http.StatusOK, "Application check", gin.H{"applied": false})
		return
	}

	applied, err := h.applicationUC.HasApplied(c.Request.Context(), jobPostID, profile.ID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application check", gin.H{"applied": applied})
}

// ListByJob godoc
// @Summary      List applications for a job post
// @Description  Employer view with seeker name, headline and resume joined
// @Tags         applications
// @Produce      json
// @Param        id  path      int  true  "Job post ID"
// @Success      200  {object}  response.Response{data=[]domain.JobApplication}
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	jobPostID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	apps, err := h.applicationUC.ListByJob(c.Request.Context(), jobPostID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// ListBySeeker godoc
// @Summary      List a seeker's applications
// @Description  Seeker view with job title, slug and company joined
// @Tags         applications
// @Produce      json
// @Param        id  path      int  true  "Seeker profile ID"
// @Success      200  {object}  response.Response{data=[]domain.JobApplication}
// @Router       /seekers/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListBySeeker(c *gin.Context) {
	seekerID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	apps, err := h.applicationUC.ListBySeeker(c.Request.Context(), seekerID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// UpdateStatus godoc
// @Summary      Update an application's status
// @Description  Employer-side transition; PENDING cannot be set directly and
// @Description  REJECTED requires a rejection reason
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                       true  "Application ID"
// @Param        body  body      ApplicationStatusRequest  true  "Status change"
// @Success      200   {object}  response.Response{data=domain.JobApplication}
// @Failure      422   {object}  response.Response
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req ApplicationStatusRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	app, err := h.applicationUC.UpdateStatus(c.Request.Context(), id, domain.ApplicationStatusUpdate{
		Status:          req.Status,
		EmployerNotes:   req.EmployerNotes,
		RejectionReason: req.RejectionReason,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application status updated", app)
}

// Withdraw godoc
// @Summary      Withdraw an application
// @Tags         applications
// @Produce      json
// @Param        id  path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /applications/{id}/withdraw [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.applicationUC.Withdraw(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application withdrawn", nil)
}

// Reapply godoc
// @Summary      Reactivate a withdrawn application
// @Description  The application returns to PENDING as a fresh submission
// @Tags         applications
// @Produce      json
// @Param        id  path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /applications/{id}/reapply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Reapply(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.applicationUC.Reapply(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application reactivated", nil)
}
