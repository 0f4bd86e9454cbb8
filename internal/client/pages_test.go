package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viharinalla/student-dashboard/internal/model"
)

func jsonHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestDashboardReady(t *testing.T) {
	pages := NewPages(newAPI(newServer(t)), zerolog.Nop())

	page := pages.Dashboard(context.Background())
	require.Equal(t, StateReady, page.State, page.Error)
	assert.Len(t, page.Data.Courses, 3)
	assert.Len(t, page.Data.Stats, 4)
	assert.Len(t, page.Data.Assignments, 3)
}

func TestDashboardFailsWhenAnyFetchFails(t *testing.T) {
	// Stats is not routed, so it answers 500.
	srv := newStubServer(t, map[string]http.HandlerFunc{
		"/api/courses/recent":       jsonHandler(`[]`),
		"/api/assignments/upcoming": jsonHandler(`[]`),
	})
	pages := NewPages(newAPI(srv), zerolog.Nop())

	page := pages.Dashboard(context.Background())
	assert.Equal(t, StateError, page.State)
	assert.Equal(t, "Failed to load data", page.Error)
}

func TestCoursesFilter(t *testing.T) {
	pages := NewPages(newAPI(newServer(t)), zerolog.Nop())

	tests := []struct {
		q    string
		want []string
	}{
		{"", []string{"Advanced React Patterns", "Machine Learning Fundamentals", "UI/UX Design Principles"}},
		{"REACT", []string{"Advanced React Patterns"}},
		{"de", []string{"UI/UX Design Principles"}},
		{"nothing", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.q, func(t *testing.T) {
			page := pages.Courses(context.Background(), tt.q)
			require.Equal(t, StateReady, page.State)
			titles := make([]string, 0, len(page.Data))
			for _, c := range page.Data {
				titles = append(titles, c.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestFilterCoursesKeepsInputOnEmptyQuery(t *testing.T) {
	in := []model.Course{{ID: 1, Title: "A"}}
	assert.Equal(t, in, FilterCourses(in, ""))
	assert.Empty(t, FilterCourses(nil, "a"))
}

func TestCourseDetailErrors(t *testing.T) {
	pages := NewPages(newAPI(newServer(t)), zerolog.Nop())

	page := pages.CourseDetail(context.Background(), "42")
	assert.Equal(t, StateError, page.State)
	assert.Equal(t, "Failed to load course", page.Error)
	assert.Nil(t, page.Data)

	page = pages.CourseDetail(context.Background(), "3")
	require.Equal(t, StateReady, page.State)
	assert.Equal(t, "UI/UX Design Principles", page.Data.Title)
}

func TestCommunityResourcesAttendance(t *testing.T) {
	pages := NewPages(newAPI(newServer(t)), zerolog.Nop())
	ctx := context.Background()

	groups := pages.Community(ctx)
	require.Equal(t, StateReady, groups.State)
	assert.NotEmpty(t, groups.Data)

	resources := pages.Resources(ctx)
	require.Equal(t, StateReady, resources.State)
	assert.NotEmpty(t, resources.Data)

	attendance := pages.Attendance(ctx)
	require.Equal(t, StateReady, attendance.State)
	assert.Equal(t, "Days Present", attendance.Data.Summary[0].Label)
}

func TestTransportFailureSurfacesError(t *testing.T) {
	srv := newServer(t)
	api := newAPI(srv)
	srv.Close()

	page := NewPages(api, zerolog.Nop()).Courses(context.Background(), "")
	assert.Equal(t, StateError, page.State)
	assert.NotEmpty(t, page.Error)
	assert.NotEqual(t, "Failed to load courses", page.Error)
}

func TestCancelledLoadStaysLoading(t *testing.T) {
	pages := NewPages(newAPI(newServer(t)), zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	page := pages.Dashboard(ctx)
	assert.Equal(t, StateLoading, page.State)
	assert.Empty(t, page.Error)
	assert.Equal(t, "loading", page.State.String())
}
