package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viharinalla/student-dashboard/internal/catalog"
	"github.com/viharinalla/student-dashboard/internal/config"
	"github.com/viharinalla/student-dashboard/internal/handler"
	"github.com/viharinalla/student-dashboard/internal/router"
	"github.com/viharinalla/student-dashboard/internal/service"
	"github.com/viharinalla/student-dashboard/internal/validator"
)

func setupEnv(t *testing.T) {
	t.Helper()
	validator.Setup()

	cat, err := catalog.Load(context.Background(), catalog.EmbeddedSource{})
	require.NoError(t, err)
	cfg := &config.Config{GinMode: gin.TestMode, TokenMode: config.TokenModeMock, CacheMaxAge: 60}
	log := zerolog.Nop()
	catalogService := service.NewCatalogService(cat, log)
	srv := httptest.NewServer(router.SetupRouter(&router.Handlers{
		Health:    handler.NewHealthHandler(),
		Auth:      handler.NewAuthHandler(service.NewAuthService(cfg), log),
		Course:    handler.NewCourseHandler(catalogService),
		Dashboard: handler.NewDashboardHandler(catalogService),
		Community: handler.NewCommunityHandler(catalogService),
	}, cfg, log))
	t.Cleanup(srv.Close)

	t.Setenv("API_URL", srv.URL)
	t.Setenv("SESSION_STORE", "file")
	t.Setenv("SESSION_FILE", filepath.Join(t.TempDir(), "session.json"))
	t.Setenv("LOG_LEVEL", "disabled")
}

func runCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestLoginWhoamiLogout(t *testing.T) {
	setupEnv(t)

	_, _, err := runCmd(t, "", "whoami")
	assert.EqualError(t, err, "not logged in")

	out, _, err := runCmd(t, "hunter2\n", "login", "-email", "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "Logged in as Alex (a@b.com)\n", out)

	out, _, err = runCmd(t, "", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "a@b.com")

	out, _, err = runCmd(t, "", "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome back, Alex!")
	assert.Contains(t, out, "Current Streak")

	_, _, err = runCmd(t, "", "logout")
	require.NoError(t, err)
	_, _, err = runCmd(t, "", "whoami")
	assert.Error(t, err)
}

func TestLoginPromptsForEmail(t *testing.T) {
	setupEnv(t)

	out, stderr, err := runCmd(t, "c@d.com\npw\n", "login")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Enter Email: ")
	assert.Contains(t, out, "c@d.com")
}

func TestLoginWithoutEmailFails(t *testing.T) {
	setupEnv(t)

	_, _, err := runCmd(t, "\n\n", "login")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email is required")
}

func TestCatalogCommands(t *testing.T) {
	setupEnv(t)

	out, _, err := runCmd(t, "", "courses", "-q", "react")
	require.NoError(t, err)
	assert.Contains(t, out, "Advanced React Patterns")
	assert.NotContains(t, out, "Machine Learning")

	out, _, err = runCmd(t, "", "courses", "-q", "zzz")
	require.NoError(t, err)
	assert.Equal(t, "No courses found.\n", out)

	out, _, err = runCmd(t, "", "course", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Machine Learning Fundamentals")
	assert.Contains(t, out, "Syllabus")

	_, _, err = runCmd(t, "", "course", "99")
	assert.EqualError(t, err, "Failed to load course")

	out, _, err = runCmd(t, "", "attendance")
	require.NoError(t, err)
	assert.Contains(t, out, "88%")

	for _, cmd := range []string{"health", "community", "resources"} {
		_, _, err := runCmd(t, "", cmd)
		assert.NoError(t, err, cmd)
	}
}

func TestUsageErrors(t *testing.T) {
	setupEnv(t)

	_, stderr, err := runCmd(t, "")
	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, stderr, "Usage: learnctl")

	_, stderr, err = runCmd(t, "", "bogus")
	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, stderr, `unknown command "bogus"`)

	_, _, err = runCmd(t, "", "course")
	assert.ErrorIs(t, err, errUsage)

	_, _, err = runCmd(t, "", "health", "extra")
	assert.ErrorIs(t, err, errUsage)
}
