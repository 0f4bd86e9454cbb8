package client

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/viharinalla/student-dashboard/internal/model"
	"golang.org/x/sync/errgroup"
)

// Page error messages shown when the API answers with a non-2xx status.
const (
	ErrMsgDashboard  = "Failed to load data"
	ErrMsgCourses    = "Failed to load courses"
	ErrMsgCourse     = "Failed to load course"
	ErrMsgGroups     = "Failed to load groups"
	ErrMsgResources  = "Failed to load resources"
	ErrMsgAttendance = "Failed to load attendance"
)

// State is the lifecycle of a page load.
type State int

const (
	StateLoading State = iota
	StateError
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Page is the outcome of one page load. The zero value is a page still
// loading.
type Page[T any] struct {
	State State
	Data  T
	Error string
}

// DashboardData is everything the dashboard shows.
type DashboardData struct {
	Courses     []model.Course
	Stats       []model.Stat
	Assignments []model.Assignment
}

// Pages loads the data behind each screen. Every call is a fresh fetch.
type Pages struct {
	api *API
	log zerolog.Logger
}

// NewPages creates a new Pages over api.
func NewPages(api *API, log zerolog.Logger) *Pages {
	return &Pages{api: api, log: log.With().Str("component", "pages").Logger()}
}

// Dashboard fetches courses, stats and assignments in parallel. One failed
// fetch fails the page.
func (p *Pages) Dashboard(ctx context.Context) Page[DashboardData] {
	var data DashboardData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		data.Courses, err = p.api.RecentCourses(gctx)
		return err
	})
	g.Go(func() (err error) {
		data.Stats, err = p.api.Stats(gctx)
		return err
	})
	g.Go(func() (err error) {
		data.Assignments, err = p.api.UpcomingAssignments(gctx)
		return err
	})
	return settle(ctx, p.log, data, g.Wait(), ErrMsgDashboard)
}

// Courses fetches the course list and keeps the titles containing q,
// ignoring case. An empty q keeps everything.
func (p *Pages) Courses(ctx context.Context, q string) Page[[]model.Course] {
	courses, err := p.api.RecentCourses(ctx)
	if err == nil {
		courses = FilterCourses(courses, q)
	}
	return settle(ctx, p.log, courses, err, ErrMsgCourses)
}

// CourseDetail fetches one course.
func (p *Pages) CourseDetail(ctx context.Context, id string) Page[*model.CourseDetail] {
	detail, err := p.api.Course(ctx, id)
	return settle(ctx, p.log, detail, err, ErrMsgCourse)
}

func (p *Pages) Community(ctx context.Context) Page[[]model.Group] {
	groups, err := p.api.Groups(ctx)
	return settle(ctx, p.log, groups, err, ErrMsgGroups)
}

func (p *Pages) Resources(ctx context.Context) Page[[]model.Resource] {
	resources, err := p.api.Resources(ctx)
	return settle(ctx, p.log, resources, err, ErrMsgResources)
}

func (p *Pages) Attendance(ctx context.Context) Page[*model.AttendanceOverview] {
	overview, err := p.api.Attendance(ctx)
	return settle(ctx, p.log, overview, err, ErrMsgAttendance)
}

// FilterCourses returns the courses whose title contains q, ignoring case.
func FilterCourses(courses []model.Course, q string) []model.Course {
	q = strings.ToLower(q)
	if q == "" {
		return courses
	}
	out := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if strings.Contains(strings.ToLower(c.Title), q) {
			out = append(out, c)
		}
	}
	return out
}

// settle turns a fetch result into a page. A cancelled caller gets the page
// back still loading: nobody is waiting for the outcome. Non-2xx answers use
// the page's own message; transport failures surface their error text.
func settle[T any](ctx context.Context, log zerolog.Logger, data T, err error, msg string) Page[T] {
	if ctx.Err() != nil {
		return Page[T]{State: StateLoading}
	}
	if err != nil {
		log.Debug().Err(err).Msg(msg)
		var se *StatusError
		if errors.As(err, &se) {
			return Page[T]{State: StateError, Error: msg}
		}
		return Page[T]{State: StateError, Error: err.Error()}
	}
	return Page[T]{State: StateReady, Data: data}
}
