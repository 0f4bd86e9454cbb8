package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/viharinalla/student-dashboard/internal/config"
	"github.com/viharinalla/student-dashboard/internal/model"
)

// ErrEmailRequired is returned when a login carries no email.
var ErrEmailRequired = errors.New("email is required")

const (
	// MockToken is the token handed out in mock mode.
	MockToken = "mock-token"

	// The demo account. The name is fixed and does not follow the submitted
	// name; clients rely on this.
	mockUserID   = 1
	mockUserName = "Alex"
)

// Claims is the JWT body issued in jwt token mode.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// AuthService implements the demo login. Any email is accepted and the
// password is never checked.
type AuthService struct {
	cfg *config.Config
	now func() time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg, now: time.Now}
}

// Login builds the session for req.Email.
func (s *AuthService) Login(_ context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if req.Email == "" {
		return nil, ErrEmailRequired
	}

	user := model.User{ID: mockUserID, Name: mockUserName, Email: req.Email}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{Token: token, User: user}, nil
}

func (s *AuthService) issueToken(user model.User) (string, error) {
	if s.cfg.TokenMode != config.TokenModeJWT {
		return MockToken, nil
	}

	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		Email: user.Email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
