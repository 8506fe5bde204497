package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type EmployerHandler struct {
	employerUC domain.EmployerUsecase
	jobPostUC  domain.JobPostUsecase
}

// NewEmployerHandler registers employer profile routes
func NewEmployerHandler(r *gin.RouterGroup, employerUC domain.EmployerUsecase, jobPostUC domain.JobPostUsecase) {
	handler := &EmployerHandler{employerUC: employerUC, jobPostUC: jobPostUC}

	employers := r.Group("/employers")
	{
		employers.GET("", handler.List)
		employers.GET("/:id", handler.Get)
		employers.POST("", handler.Create)
		employers.PUT("/:id", handler.Update)
		employers.DELETE("/:id", handler.Delete)

		employers.GET("/:id/home", handler.Home)
		employers.GET("/:id/jobs", handler.ListJobs)
	}
}

// EmployerProfileRequest is the request payload for creating or updating an
// employer profile. Verification is admin-driven and not settable here.
type EmployerProfileRequest struct {
	UserID               int64   `json:"user_id" binding:"required"`
	CompanyName          string  `json:"company_name" binding:"required"`
	CompanyLogoURL       *string `json:"company_logo_url"`
	Tagline              *string `json:"tagline"`
	AboutUs              *string `json:"about_us"`
	WebsiteURL           *string `json:"website_url"`
	Industry             *string `json:"industry"`
	HeadquartersLocation *string `json:"headquarters_location"`
	CompanySize          *string `json:"company_size"`
	FoundedYear          *int    `json:"founded_year"`
	Specialties          *string `json:"specialties"`
	LinkedinURL          *string `json:"linkedin_url"`
}

func (req *EmployerProfileRequest) toDomain(id int64) *domain.EmployerProfile {
	return &domain.EmployerProfile{
		ID:                   id,
		UserID:               req.UserID,
		CompanyName:          req.CompanyName,
		CompanyLogoURL:       req.CompanyLogoURL,
		Tagline:              req.Tagline,
		AboutUs:              req.AboutUs,
		WebsiteURL:           req.WebsiteURL,
		Industry:             req.Industry,
		HeadquartersLocation: req.HeadquartersLocation,
		CompanySize:          req.CompanySize,
		FoundedYear:          req.FoundedYear,
		Specialties:          req.Specialties,
		LinkedinURL:          req.LinkedinURL,
	}
}

// List godoc
// @Summary      List employer profiles
// @Tags         employers
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.EmployerProfile}
// @Router       /employers [get]
// @Security     BearerAuth
func (h *EmployerHandler) List(c *gin.Context) {
	profiles, err := h.employerUC.ListProfiles(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employer profiles retrieved", profiles)
}

// Get godoc
// @Summary      Get an employer profile
// @Tags         employers
// @Produce      json
// @Param        id  path      int  true  "Profile ID"
// @Success      200  {object}  response.Response{data=domain.EmployerProfile}
// @Failure      404  {object}  response.Response
// @Router       /employers/{id} [get]
// @Security     BearerAuth
func (h *EmployerHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	profile, err := h.employerUC.GetProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employer profile retrieved", profile)
}

// Create godoc
// @Summary      Create an employer profile
// @Tags         employers
// @Accept       json
// @Produce      json
// @Param        body  body      EmployerProfileRequest  true  "Profile data"
// @Success      201   {object}  response.Response{data=domain.EmployerProfile}
// @Failure      409   {object}  response.Response
// @Router       /employers [post]
// @Security     BearerAuth
func (h *EmployerHandler) Create(c *gin.Context) {
	var req EmployerProfileRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	profile := req.toDomain(0)
	if err := h.employerUC.CreateProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Employer profile created", profile)
}

// Update godoc
// @Summary      Update an employer profile
// @Tags         employers
// @Accept       json
// @Produce      json
// @Param        id    path      int                     true  "Profile ID"
// @Param        body  body      EmployerProfileRequest  true  "Profile data"
// @Success      200   {object}  response.Response{data=domain.EmployerProfile}
// @Failure      404   {object}  response.Response
// @Router       /employers/{id} [put]
// @Security     BearerAuth
func (h *EmployerHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req EmployerProfileRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	profile := req.toDomain(id)
	if err := h.employerUC.UpdateProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employer profile updated", profile)
}

// Delete godoc
// @Summary      Delete an employer profile
// @Tags         employers
// @Produce      json
// @Param        id  path      int  true  "Profile ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employers/{id} [delete]
// @Security     BearerAuth
func (h *EmployerHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.employerUC.DeleteProfile(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employer profile deleted", nil)
}

// Home godoc
// @Summary      Employer landing page data
// @Description  Post counts, total applications received and upcoming interviews
// @Tags         employers
// @Produce      json
// @Param        id  path      int  true  "Profile ID"
// @Success      200  {object}  response.Response{data=domain.EmployerHomeData}
// @Failure      404  {object}  response.Response
// @Router       /employers/{id}/home [get]
// @Security     BearerAuth
func (h *EmployerHandler) Home(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	data, err := h.employerUC.HomeData(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Home data retrieved", data)
}

// ListJobs godoc
// @Summary      List an employer's job posts
// @Description  Includes closed and archived posts
// @Tags         employers
// @Produce      json
// @Param        id  path      int  true  "Profile ID"
// @Success      200  {object}  response.Response{data=[]domain.JobPost}
// @Failure      404  {object}  response.Response
// @Router       /employers/{id}/jobs [get]
// @Security     BearerAuth
func (h *EmployerHandler) ListJobs(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	_, posts, err := h.jobPostUC.ListByEmployer(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job posts retrieved", posts)
}
