package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viharinalla/student-dashboard/internal/response"
	"github.com/viharinalla/student-dashboard/internal/service"
)

// CourseHandler serves the course list and course detail.
type CourseHandler struct {
	catalogService *service.CatalogService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(catalogService *service.CatalogService) *CourseHandler {
	return &CourseHandler{catalogService: catalogService}
}

// RecentCourses godoc
// GET /api/courses/recent
// Returns every course in catalog order.
func (h *CourseHandler) RecentCourses(c *gin.Context) {
	response.Success(c, http.StatusOK, h.catalogService.RecentCourses(c.Request.Context()))
}

// GetCourse godoc
// GET /api/courses/:id
// Returns the course with its description, syllabus and instructors.
func (h *CourseHandler) GetCourse(c *gin.Context) {
	detail, err := h.catalogService.CourseDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrCourseNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, detail)
}
