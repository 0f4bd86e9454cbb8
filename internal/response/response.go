package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON body of every non-2xx response.
type ErrorBody struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ────────────────────────────────────────────────────────────────────────────
// Helper builders
// ────────────────────────────────────────────────────────────────────────────

// Success sends data as the bare JSON body. The API has no envelope: clients
// decode arrays and objects directly.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Fail sends an error response carrying the message for code.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.Set(ContextKeyErrCode, code)
	c.JSON(statusCode, ErrorBody{Message: GetMessage(code)})
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.Set(ContextKeyErrCode, code)
	c.JSON(statusCode, ErrorBody{Message: GetMessage(code), Fields: fields})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.Set(ContextKeyErrCode, code)
	c.AbortWithStatusJSON(statusCode, ErrorBody{Message: GetMessage(code)})
}

// ErrCodeOf returns the error code recorded by Fail for the request, if any.
func ErrCodeOf(c *gin.Context) (ErrCode, bool) {
	v, ok := c.Get(ContextKeyErrCode)
	if !ok {
		return "", false
	}
	code, ok := v.(ErrCode)
	return code, ok
}
