package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/viharinalla/student-dashboard/internal/model"
	"github.com/viharinalla/student-dashboard/internal/response"
	"github.com/viharinalla/student-dashboard/internal/service"
	"github.com/viharinalla/student-dashboard/internal/validator"
)

// AuthHandler handles the login endpoint.
type AuthHandler struct {
	authService *service.AuthService
	log         zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		log:         log.With().Str("component", "auth_handler").Logger(),
	}
}

// Login godoc
// POST /api/auth/login
// Accepts any email and returns the demo user with a token. The password is
// never checked.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload model.LoginPayload
	if fields := validator.Bind(c, &payload); fields != nil {
		if _, ok := fields["email"]; ok {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrEmailRequired, fields)
			return
		}
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	req := model.LoginRequest{
		Email:    loginEmail(payload.Email),
		Password: jsonString(payload.Password),
		Name:     jsonString(payload.Name),
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmailRequired) {
			response.Fail(c, http.StatusBadRequest, response.ErrEmailRequired)
			return
		}
		h.log.Error().Err(err).Msg("failed to issue token")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// loginEmail returns the email carried by raw, or "" when raw holds a falsy
// value (null, false, 0 or an empty string). Other non-string values are kept
// as their compact JSON text.
func loginEmail(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	switch raw[0] {
	case 'n', 'f':
		return ""
	case 't':
		return "true"
	case '"':
		return jsonString(raw)
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return string(raw)
		}
		return buf.String()
	}

	if f, err := strconv.ParseFloat(string(raw), 64); err == nil && f == 0 {
		return ""
	}
	return string(raw)
}

// jsonString returns raw as a Go string when it is a JSON string, else "".
func jsonString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
