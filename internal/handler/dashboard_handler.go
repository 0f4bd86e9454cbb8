package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viharinalla/student-dashboard/internal/response"
	"github.com/viharinalla/student-dashboard/internal/service"
)

// DashboardHandler serves the dashboard widgets.
type DashboardHandler struct {
	catalogService *service.CatalogService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(catalogService *service.CatalogService) *DashboardHandler {
	return &DashboardHandler{catalogService: catalogService}
}

// Stats godoc
// GET /api/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	response.Success(c, http.StatusOK, h.catalogService.Stats(c.Request.Context()))
}

// UpcomingAssignments godoc
// GET /api/assignments/upcoming
func (h *DashboardHandler) UpcomingAssignments(c *gin.Context) {
	response.Success(c, http.StatusOK, h.catalogService.UpcomingAssignments(c.Request.Context()))
}

// Attendance godoc
// GET /api/attendance
// Returns the summary cards and the day-by-day records for the term.
func (h *DashboardHandler) Attendance(c *gin.Context) {
	response.Success(c, http.StatusOK, h.catalogService.Attendance(c.Request.Context()))
}
