package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/viharinalla/student-dashboard/internal/model"
	"github.com/viharinalla/student-dashboard/internal/response"
)

// TimestampLayout renders UTC instants with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// HealthHandler reports liveness.
type HealthHandler struct {
	now func() time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

// Health godoc
// GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, model.Health{
		Status:    "ok",
		Timestamp: h.now().UTC().Format(TimestampLayout),
	})
}
