package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/viharinalla/student-dashboard/internal/catalog"
	"github.com/viharinalla/student-dashboard/internal/model"
)

// ErrCourseNotFound is returned when no course matches the requested ID.
var ErrCourseNotFound = errors.New("course not found")

// Every course page shows the same outline and teaching staff.
var (
	defaultSyllabus = []string{
		"Introduction and setup",
		"Core concepts",
		"Applied patterns and best practices",
		"Capstone project",
	}
	defaultInstructors = []model.Instructor{
		{ID: 1, Name: "Dr. Smith"},
		{ID: 2, Name: "Alex Johnson"},
	}
)

// CatalogService serves read-only views over the startup catalog.
type CatalogService struct {
	catalog *catalog.Catalog
	log     zerolog.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(cat *catalog.Catalog, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		catalog: cat,
		log:     log.With().Str("component", "catalog_service").Logger(),
	}
}

func (s *CatalogService) RecentCourses(_ context.Context) []model.Course {
	return s.catalog.Courses()
}

// CourseDetail resolves rawID the way a numeric coercion would (" 2 " and
// "2.0" both mean 2) and synthesises the descriptive fields.
func (s *CatalogService) CourseDetail(_ context.Context, rawID string) (*model.CourseDetail, error) {
	id, ok := ParseCourseID(rawID)
	if !ok {
		s.log.Debug().Str("id", rawID).Msg("non-numeric course id")
		return nil, ErrCourseNotFound
	}

	course, ok := s.catalog.Course(id)
	if !ok {
		return nil, ErrCourseNotFound
	}

	syllabus := make([]string, len(defaultSyllabus))
	copy(syllabus, defaultSyllabus)
	instructors := make([]model.Instructor, len(defaultInstructors))
	copy(instructors, defaultInstructors)

	return &model.CourseDetail{
		Course:      course,
		Description: fmt.Sprintf("Deep dive into %s with hands-on lessons and projects.", course.Title),
		Syllabus:    syllabus,
		Instructors: instructors,
	}, nil
}

func (s *CatalogService) Stats(_ context.Context) []model.Stat {
	return s.catalog.Stats()
}

func (s *CatalogService) UpcomingAssignments(_ context.Context) []model.Assignment {
	return s.catalog.Assignments()
}

func (s *CatalogService) Groups(_ context.Context) []model.Group {
	return s.catalog.Groups()
}

func (s *CatalogService) Resources(_ context.Context) []model.Resource {
	return s.catalog.Resources()
}

// Attendance returns the summary cards and the recent entries.
func (s *CatalogService) Attendance(_ context.Context) model.AttendanceOverview {
	term := s.catalog.Attendance()
	return model.AttendanceOverview{
		Summary: []model.AttendanceSummary{
			{Label: "Days Present", Value: term.DaysPresent},
			{Label: "Days Absent", Value: term.DaysAbsent},
			{Label: "Attendance %", Value: AttendanceRate(term.DaysPresent, term.DaysAbsent)},
		},
		Records: term.Records,
	}
}

// AttendanceRate formats present/(present+absent) as a whole percentage.
func AttendanceRate(present, absent int) string {
	total := present + absent
	if total <= 0 {
		return "0%"
	}
	return strconv.Itoa(int(math.Round(float64(present)*100/float64(total)))) + "%"
}

// ParseCourseID converts a path segment to a course ID. It accepts surrounding
// whitespace, integral decimals and unsigned 0x/0o/0b literals; anything else
// is not an ID.
func ParseCourseID(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if base := radixPrefix(raw); base != 0 {
		n, err := strconv.ParseUint(raw[2:], base, 64)
		if err != nil || n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	}
	if id, err := strconv.Atoi(raw); err == nil {
		return id, true
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

func radixPrefix(raw string) int {
	if len(raw) < 2 || raw[0] != '0' {
		return 0
	}
	switch raw[1] {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	}
	return 0
}
