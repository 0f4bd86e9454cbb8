//go:build e2e
// +build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/viharinalla/student-dashboard/internal/model"
)

const defaultBaseURL = "http://localhost:5000/api"

var baseURL string

func TestMain(m *testing.M) {
	// Load .env if present (ignore error)
	_ = godotenv.Load("../../.env")

	baseURL = os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	os.Exit(m.Run())
}

func TestE2EFlow(t *testing.T) {
	t.Run("Health", func(t *testing.T) {
		resp, err := get("/health")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status %d: %s", resp.StatusCode, readBody(resp))
		}
		var body model.Health
		decodeJSON(t, resp, &body)
		if body.Status != "ok" {
			t.Fatalf("status = %q", body.Status)
		}
		if _, err := time.Parse("2006-01-02T15:04:05.000Z", body.Timestamp); err != nil {
			t.Fatalf("timestamp %q: %v", body.Timestamp, err)
		}
		if resp.Header.Get("X-Request-ID") == "" {
			t.Fatal("X-Request-ID missing")
		}
	})

	var courses []model.Course
	t.Run("RecentCourses", func(t *testing.T) {
		resp, err := get("/courses/recent")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status %d: %s", resp.StatusCode, readBody(resp))
		}
		decodeJSON(t, resp, &courses)
		if len(courses) == 0 {
			t.Fatal("no courses")
		}
	})

	t.Run("CourseDetail", func(t *testing.T) {
		if len(courses) == 0 {
			t.Skip("no courses loaded")
		}
		resp, err := get("/courses/1")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status %d: %s", resp.StatusCode, readBody(resp))
		}
		var detail model.CourseDetail
		decodeJSON(t, resp, &detail)
		if detail.Title != courses[0].Title {
			t.Fatalf("title = %q, want %q", detail.Title, courses[0].Title)
		}
		if len(detail.Syllabus) != 4 {
			t.Fatalf("syllabus has %d entries", len(detail.Syllabus))
		}
	})

	t.Run("CourseNotFound", func(t *testing.T) {
		for _, path := range []string{"/courses/999999", "/courses/abc"} {
			resp, err := get(path)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			body := readBody(resp)
			resp.Body.Close()
			if resp.StatusCode != http.StatusNotFound {
				t.Fatalf("%s: status %d: %s", path, resp.StatusCode, body)
			}
		}
	})

	t.Run("StableCollections", func(t *testing.T) {
		for _, path := range []string{"/courses/recent", "/stats", "/assignments/upcoming", "/groups", "/resources", "/attendance"} {
			first := fetchBody(t, path)
			second := fetchBody(t, path)
			if first != second {
				t.Fatalf("%s changed between calls", path)
			}
		}
	})

	t.Run("LoginMissingEmail", func(t *testing.T) {
		resp, err := post("/auth/login", map[string]string{"password": "x"})
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("status %d: %s", resp.StatusCode, readBody(resp))
		}
		var body struct {
			Message string `json:"message"`
		}
		decodeJSON(t, resp, &body)
		if body.Message != "Email is required" {
			t.Fatalf("message = %q", body.Message)
		}
	})

	t.Run("Login", func(t *testing.T) {
		resp, err := post("/auth/login", map[string]string{"email": "e2e@example.com", "password": "anything"})
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status %d: %s", resp.StatusCode, readBody(resp))
		}
		var body model.LoginResponse
		decodeJSON(t, resp, &body)
		if body.Token == "" {
			t.Fatal("token missing")
		}
		if body.User.Email != "e2e@example.com" || body.User.ID != 1 {
			t.Fatalf("unexpected user %+v", body.User)
		}
	})

	t.Run("UnknownRoute", func(t *testing.T) {
		for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
			req, _ := http.NewRequest(method, baseURL+"/does-not-exist", nil)
			resp, err := httpClient.Do(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusNotFound {
				t.Fatalf("%s: status %d", method, resp.StatusCode)
			}
		}
	})
}

// Helpers

var httpClient = &http.Client{Timeout: 10 * time.Second}

func post(path string, body interface{}) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return httpClient.Do(req)
}

func get(path string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return httpClient.Do(req)
}

func fetchBody(t *testing.T, path string) string {
	t.Helper()
	resp, err := get(path)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("%s: status %d", path, resp.StatusCode)
	}
	return readBody(resp)
}

func readBody(resp *http.Response) string {
	b, _ := io.ReadAll(resp.Body)
	return string(b)
}

func decodeJSON(t *testing.T, resp *http.Response, v interface{}) {
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("json decode: %v", err)
	}
}
