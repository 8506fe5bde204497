package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

// NewInterviewHandler registers interview scheduling routes
func NewInterviewHandler(r *gin.RouterGroup, interviewUC domain.InterviewUsecase) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	r.POST("/applications/:id/interviews", handler.Schedule)
	r.GET("/applications/:id/interviews", handler.ListByApplication)
	r.GET("/seekers/:id/interviews", handler.ListForSeeker)
	r.PATCH("/interviews/:id/status", handler.UpdateStatus)
}

// ScheduleInterviewRequest is the request payload for scheduling an interview.
// Scheduling again for the same application replaces the existing record.
type ScheduleInterviewRequest struct {
	Title       string    `json:"title" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	LocationURL string    `json:"location_url" binding:"required"`
	Type        string    `json:"type" binding:"required"`
}

// InterviewStatusRequest is the request payload for an interview status change
type InterviewStatusRequest struct {
	InterviewStatus string  `json:"interview_status" binding:"required"`
	Feedback        *string `json:"feedback"`
}

// Schedule godoc
// @Summary      Schedule an interview for an application
// @Description  Replaces any existing schedule and moves the application to
// @Description  INTERVIEW_SCHEDULED
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id    path      int                       true  "Application ID"
// @Param        body  body      ScheduleInterviewRequest  true  "Interview data"
// @Success      201   {object}  response.Response{data=domain.InterviewSchedule}
// @Failure      404   {object}  response.Response
// @Router       /applications/{id}/interviews [post]
// @Security     BearerAuth
func (h *InterviewHandler) Schedule(c *gin.Context) {
	applicationID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req ScheduleInterviewRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	iv := &domain.InterviewSchedule{
		JobApplicationID: applicationID,
		Title:            req.Title,
		ScheduledAt:      req.ScheduledAt,
		LocationURL:      req.LocationURL,
		Type:             req.Type,
	}
	scheduled, err := h.interviewUC.Schedule(c.Request.Context(), iv)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Interview scheduled", scheduled)
}

// ListByApplication godoc
// @Summary      List interviews for an application
// @Tags         interviews
// @Produce      json
// @Param        id  path      int  true  "Application ID"
// @Success      200  {object}  response.Response{data=[]domain.InterviewSchedule}
// @Router       /applications/{id}/interviews [get]
// @Security     BearerAuth
func (h *InterviewHandler) ListByApplication(c *gin.Context) {
	applicationID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	interviews, err := h.interviewUC.ListByApplication(c.Request.Context(), applicationID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interviews retrieved", interviews)
}

// ListForSeeker godoc
// @Summary      List a seeker's interviews
// @Description  Includes job title and company for display
// @Tags         interviews
// @Produce      json
// @Param        id  path      int  true  "Seeker profile ID"
// @Success      200  {object}  response.Response{data=[]domain.InterviewSchedule}
// @Router       /seekers/{id}/interviews [get]
// @Security     BearerAuth
func (h *InterviewHandler) ListForSeeker(c *gin.Context) {
	seekerID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	interviews, err := h.interviewUC.ListForSeeker(c.Request.Context(), seekerID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interviews retrieved", interviews)
}

// UpdateStatus godoc
// @Summary      Update an interview's status
// @Description  COMPLETED marks the application INTERVIEWED, CANCELLED drops it
// @Description  back to SHORTLISTED; feedback also lands in employer notes
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id    path      int                     true  "Interview ID"
// @Param        body  body      InterviewStatusRequest  true  "Status change"
// @Success      200   {object}  response.Response{data=domain.InterviewSchedule}
// @Failure      422   {object}  response.Response
// @Router       /interviews/{id}/status [patch]
// @Security     BearerAuth
func (h *InterviewHandler) UpdateStatus(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req InterviewStatusRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	iv, err := h.interviewUC.UpdateStatus(c.Request.Context(), id, domain.InterviewStatusUpdate{
		InterviewStatus: req.InterviewStatus,
		Feedback:        req.Feedback,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interview status updated", iv)
}
