package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobPostHandler struct {
	jobPostUC domain.JobPostUsecase
}

// NewJobPostHandler registers job post routes. The public group exposes the
// open-jobs board without authentication; everything mutating sits behind the
// protected group.
func NewJobPostHandler(public, protected *gin.RouterGroup, jobPostUC domain.JobPostUsecase) {
	handler := &JobPostHandler{jobPostUC: jobPostUC}

	public.GET("/jobs", handler.ListOpen)
	// Detail lookup keys on slug. The static segment keeps the route tree
	// compatible with the id-keyed application routes.
	public.GET("/jobs/slug/:slug", handler.GetBySlug)

	jobs := protected.Group("/jobs")
	{
		jobs.POST("", handler.Create)
		jobs.PUT("/:id", handler.Update)
		jobs.PATCH("/:id/archive", handler.Archive)
		jobs.PATCH("/:id/restore", handler.Restore)
		jobs.PATCH("/:id/toggle-visibility", handler.ToggleVisibility)
		jobs.PATCH("/:id/toggle-salary", handler.ToggleSalary)
	}
}

// JobPostRequest is the request payload for creating or updating a job post.
// The slug, status and application count are server-managed.
type JobPostRequest struct {
	EmployerID       int64      `json:"employer_profile_id" binding:"required"`
	CategoryID       int64      `json:"job_category_id" binding:"required"`
	Title            string     `json:"title" binding:"required"`
	WorkplaceType    string     `json:"workplace_type" binding:"required"`
	Location         string     `json:"location" binding:"required"`
	EmploymentType   string     `json:"employment_type" binding:"required"`
	ExperienceLevel  string     `json:"experience_level" binding:"required"`
	Description      string     `json:"description" binding:"required"`
	Responsibilities *string    `json:"responsibilities"`
	Qualifications   *string    `json:"qualifications"`
	SalaryMin        *float64   `json:"salary_min"`
	SalaryMax        *float64   `json:"salary_max"`
	Currency         string     `json:"currency"`
	SalaryVisible    bool       `json:"salary_visible"`
	ExpiresAt        *time.Time `json:"expires_at"`
	SkillIDs         []int64    `json:"skill_ids"`
}

func (req *JobPostRequest) toDomain(id int64) *domain.JobPost {
	return &domain.JobPost{
		ID:               id,
		EmployerID:       req.EmployerID,
		CategoryID:       req.CategoryID,
		Title:            req.Title,
		WorkplaceType:    req.WorkplaceType,
		Location:         req.Location,
		EmploymentType:   req.EmploymentType,
		ExperienceLevel:  req.ExperienceLevel,
		Description:      req.Description,
		Responsibilities: req.Responsibilities,
		Qualifications:   req.Qualifications,
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		Currency:         req.Currency,
		SalaryVisible:    req.SalaryVisible,
		ExpiresAt:        req.ExpiresAt,
	}
}

// ListOpen godoc
// @Summary      List open job posts
// @Description  The public job board, newest first
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.JobPost}
// @Router       /jobs [get]
func (h *JobPostHandler) ListOpen(c *gin.Context) {
	posts, err := h.jobPostUC.ListOpenPosts(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job posts retrieved", posts)
}

// GetBySlug godoc
// @Summary      Get an open job post by slug
// @Description  Closed and archived posts return 404
// @Tags         jobs
// @Produce      json
// @Param        slug  path      string  true  "Job post slug"
// @Success      200   {object}  response.Response{data=domain.JobPost}
// @Failure      404   {object}  response.Response
// @Router       /jobs/slug/{slug} [get]
func (h *JobPostHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.jobPostUC.GetOpenPostBySlug(c.Request.Context(), slug)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job post retrieved", post)
}

// Create godoc
// @Summary      Create a job post
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      JobPostRequest  true  "Job post data"
// @Success      201   {object}  response.Response{data=domain.JobPost}
// @Failure      422   {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobPostHandler) Create(c *gin.Context) {
	var req JobPostRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	post, err := h.jobPostUC.CreatePost(c.Request.Context(), req.toDomain(0), req.SkillIDs)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job post created", post)
}

// Update godoc
// @Summary      Update a job post
// @Description  Owner, slug, status and application count are preserved
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Job post ID"
// @Param        body  body      JobPostRequest  true  "Job post data"
// @Success      200   {object}  response.Response{data=domain.JobPost}
// @Failure      404   {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobPostHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req JobPostRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	post, err := h.jobPostUC.UpdatePost(c.Request.Context(), req.toDomain(id), req.SkillIDs)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job post updated", post)
}

// Archive godoc
// @Summary      Archive a job post
// @Description  The post disappears from public listings but keeps its data
// @Tags         jobs
// @Produce      json
// @Param        id  path      int  true  "Job post ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/archive [patch]
// @Security     BearerAuth
func (h *JobPostHandler) Archive(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.jobPostUC.ArchivePost(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job post archived", nil)
}

// Restore godoc
// @Summary      Restore an archived job post
// @Tags         jobs
// @Produce      json
// @Param        id  path      int  true  "Job post ID"
// @Success      200  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /jobs/{id}/restore [patch]
// @Security     BearerAuth
func (h *JobPostHandler) Restore(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.jobPostUC.RestorePost(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job post restored", nil)
}

// ToggleVisibility godoc
// @Summary      Toggle a job post between open and closed
// @Description  Archived posts must be restored before toggling
// @Tags         jobs
// @Produce      json
// @Param        id  path      int  true  "Job post ID"
// @Success      200  {object}  response.Response{data=map[string]string}
// @Failure      409  {object}  response.Response
// @Router       /jobs/{id}/toggle-visibility [patch]
// @Security     BearerAuth
func (h *JobPostHandler) ToggleVisibility(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	status, err := h.jobPostUC.ToggleVisibility(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job post status updated", gin.H{"status": status})
}

// ToggleSalary godoc
// @Summary      Toggle salary visibility on a job post
// @Tags         jobs
// @Produce      json
// @Param        id  path      int  true  "Job post ID"
// @Success      200  {object}  response.Response{data=map[string]bool}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/toggle-salary [patch]
// @Security     BearerAuth
func (h *JobPostHandler) ToggleSalary(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	visible, err := h.jobPostUC.ToggleSalaryVisibility(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Salary visibility updated", gin.H{"salary_visible": visible})
}
