package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viharinalla/student-dashboard/internal/response"
	"github.com/viharinalla/student-dashboard/internal/service"
)

// CommunityHandler serves study groups and shared resources.
type CommunityHandler struct {
	catalogService *service.CatalogService
}

// NewCommunityHandler creates a new CommunityHandler.
func NewCommunityHandler(catalogService *service.CatalogService) *CommunityHandler {
	return &CommunityHandler{catalogService: catalogService}
}

// Groups godoc
// GET /api/groups
func (h *CommunityHandler) Groups(c *gin.Context) {
	response.Success(c, http.StatusOK, h.catalogService.Groups(c.Request.Context()))
}

// Resources godoc
// GET /api/resources
func (h *CommunityHandler) Resources(c *gin.Context) {
	response.Success(c, http.StatusOK, h.catalogService.Resources(c.Request.Context()))
}
