// Package client talks to the dashboard API and holds the client-side
// session. It is the data layer behind cmd/learnctl.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/viharinalla/student-dashboard/internal/model"
	"github.com/viharinalla/student-dashboard/internal/response"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 4 << 20

// StatusError is returned for any non-2xx response. Body is the raw response
// text.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// API is a thin typed wrapper over the /api endpoints.
type API struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewAPI creates an API client for baseURL (scheme and host, no /api suffix).
// A nil httpClient gets a client with a 10s timeout.
func NewAPI(baseURL string, httpClient *http.Client, log zerolog.Logger) *API {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     log.With().Str("component", "api_client").Logger(),
	}
}

func (a *API) Health(ctx context.Context) (*model.Health, error) {
	var h model.Health
	if err := a.get(ctx, "/api/health", &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (a *API) RecentCourses(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	if err := a.get(ctx, "/api/courses/recent", &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Course fetches one course. id is sent as given; the server decides what
// counts as a valid ID.
func (a *API) Course(ctx context.Context, id string) (*model.CourseDetail, error) {
	var detail model.CourseDetail
	if err := a.get(ctx, "/api/courses/"+url.PathEscape(id), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (a *API) Stats(ctx context.Context) ([]model.Stat, error) {
	var stats []model.Stat
	if err := a.get(ctx, "/api/stats", &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (a *API) UpcomingAssignments(ctx context.Context) ([]model.Assignment, error) {
	var assignments []model.Assignment
	if err := a.get(ctx, "/api/assignments/upcoming", &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (a *API) Groups(ctx context.Context) ([]model.Group, error) {
	var groups []model.Group
	if err := a.get(ctx, "/api/groups", &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (a *API) Resources(ctx context.Context) ([]model.Resource, error) {
	var resources []model.Resource
	if err := a.get(ctx, "/api/resources", &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

func (a *API) Attendance(ctx context.Context) (*model.AttendanceOverview, error) {
	var overview model.AttendanceOverview
	if err := a.get(ctx, "/api/attendance", &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

// Login posts the credentials. A rejected login comes back as *StatusError.
func (a *API) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode login request: %w", err)
	}
	var resp model.LoginResponse
	if err := a.do(ctx, http.MethodPost, "/api/auth/login", bytes.NewReader(payload), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *API) get(ctx context.Context, path string, dst interface{}) error {
	return a.do(ctx, http.MethodGet, path, nil, dst)
}

func (a *API) do(ctx context.Context, method, path string, body io.Reader, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set(response.HeaderRequestID, reqID)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "br")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	res, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var reader io.Reader = res.Body
	if strings.EqualFold(res.Header.Get("Content-Encoding"), "br") {
		reader = brotli.NewReader(res.Body)
	}
	raw, err := io.ReadAll(io.LimitReader(reader, maxBodySize))
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, path, err)
	}

	a.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", res.StatusCode).
		Dur("latency", time.Since(start)).
		Str("request_id", reqID).
		Msg("api call")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &StatusError{StatusCode: res.StatusCode, Body: string(raw)}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
