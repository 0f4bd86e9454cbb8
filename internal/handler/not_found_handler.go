package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viharinalla/student-dashboard/internal/response"
)

// NotFound answers every unmatched route, whatever the method.
func NotFound(c *gin.Context) {
	response.Fail(c, http.StatusNotFound, response.ErrNotFound)
}
