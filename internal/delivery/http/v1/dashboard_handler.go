package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

// NewDashboardHandler registers the admin dashboard route
func NewDashboardHandler(r *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}

	r.GET("/dashboard", handler.AdminDashboard)
}

// AdminDashboard godoc
// @Summary      Admin dashboard aggregates
// @Description  Headline metrics with 30-day growth and sparklines, top skills
// @Description  and the category distribution of open jobs
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.AdminDashboard}
// @Router       /admin/dashboard [get]
// @Security     BearerAuth
func (h *DashboardHandler) AdminDashboard(c *gin.Context) {
	dashboard, err := h.dashboardUC.AdminDashboard(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard retrieved", dashboard)
}
