// Package catalog holds the read-only mock data served by the API. A Catalog
// is built once at startup from a Source and is never mutated afterwards, so
// it can be shared by all request goroutines without locking.
package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/viharinalla/student-dashboard/internal/model"
)

// ErrInvalid wraps every validation failure reported by New.
var ErrInvalid = errors.New("invalid catalog")

// Data is the raw catalog content as produced by a Source.
type Data struct {
	Courses     []model.Course       `mapstructure:"courses"`
	Stats       []model.Stat         `mapstructure:"stats"`
	Assignments []model.Assignment   `mapstructure:"assignments"`
	Groups      []model.Group        `mapstructure:"groups"`
	Resources   []model.Resource     `mapstructure:"resources"`
	Attendance  model.AttendanceTerm `mapstructure:"attendance"`
}

// Catalog is an immutable snapshot of Data.
type Catalog struct {
	data        Data
	courseIndex map[int]int
}

// New validates d and freezes it into a Catalog. The slices of d are copied,
// so later changes by the caller are not observed.
func New(d Data) (*Catalog, error) {
	if err := validate(d); err != nil {
		return nil, err
	}

	frozen := Data{
		Courses:     clone(d.Courses),
		Stats:       clone(d.Stats),
		Assignments: clone(d.Assignments),
		Groups:      clone(d.Groups),
		Resources:   clone(d.Resources),
		Attendance: model.AttendanceTerm{
			DaysPresent: d.Attendance.DaysPresent,
			DaysAbsent:  d.Attendance.DaysAbsent,
			Records:     clone(d.Attendance.Records),
		},
	}

	idx := make(map[int]int, len(frozen.Courses))
	for i, c := range frozen.Courses {
		idx[c.ID] = i
	}

	return &Catalog{data: frozen, courseIndex: idx}, nil
}

// Courses returns the recent courses in seed order.
func (c *Catalog) Courses() []model.Course { return clone(c.data.Courses) }

// Course looks up a course by ID.
func (c *Catalog) Course(id int) (model.Course, bool) {
	i, ok := c.courseIndex[id]
	if !ok {
		return model.Course{}, false
	}
	return c.data.Courses[i], true
}

func (c *Catalog) Stats() []model.Stat             { return clone(c.data.Stats) }
func (c *Catalog) Assignments() []model.Assignment { return clone(c.data.Assignments) }
func (c *Catalog) Groups() []model.Group           { return clone(c.data.Groups) }
func (c *Catalog) Resources() []model.Resource     { return clone(c.data.Resources) }

// Attendance returns the attendance term totals and records.
func (c *Catalog) Attendance() model.AttendanceTerm {
	a := c.data.Attendance
	a.Records = clone(a.Records)
	return a
}

// Snapshot returns a copy of the whole catalog, for writing it to another store.
func (c *Catalog) Snapshot() Data {
	return Data{
		Courses:     c.Courses(),
		Stats:       c.Stats(),
		Assignments: c.Assignments(),
		Groups:      c.Groups(),
		Resources:   c.Resources(),
		Attendance:  c.Attendance(),
	}
}

// Counts summarises the catalog size for startup logging.
func (c *Catalog) Counts() map[string]int {
	return map[string]int{
		"courses":     len(c.data.Courses),
		"stats":       len(c.data.Stats),
		"assignments": len(c.data.Assignments),
		"groups":      len(c.data.Groups),
		"resources":   len(c.data.Resources),
		"attendance":  len(c.data.Attendance.Records),
	}
}

func validate(d Data) error {
	seen := make(map[int]struct{}, len(d.Courses))
	for _, c := range d.Courses {
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("%w: duplicate course id %d", ErrInvalid, c.ID)
		}
		seen[c.ID] = struct{}{}
		if c.Title == "" {
			return fmt.Errorf("%w: course %d has no title", ErrInvalid, c.ID)
		}
		if c.Progress < 0 || c.Progress > 100 {
			return fmt.Errorf("%w: course %d progress %d out of range", ErrInvalid, c.ID, c.Progress)
		}
		if c.CompletedLessons < 0 || c.CompletedLessons > c.TotalLessons {
			return fmt.Errorf("%w: course %d completed %d of %d lessons", ErrInvalid, c.ID, c.CompletedLessons, c.TotalLessons)
		}
	}

	for _, s := range d.Stats {
		switch s.Value.(type) {
		case string, int, int32, int64, float64:
		default:
			return fmt.Errorf("%w: stat %q has unsupported value %v", ErrInvalid, s.Title, s.Value)
		}
	}

	for _, a := range d.Assignments {
		if !a.Status.Valid() {
			return fmt.Errorf("%w: assignment %d has status %q", ErrInvalid, a.ID, a.Status)
		}
		if _, err := time.Parse(model.DueDateLayout, a.DueDate); err != nil {
			return fmt.Errorf("%w: assignment %d due date %q", ErrInvalid, a.ID, a.DueDate)
		}
	}

	if d.Attendance.DaysPresent < 0 || d.Attendance.DaysAbsent < 0 {
		return fmt.Errorf("%w: negative attendance totals", ErrInvalid)
	}
	for _, r := range d.Attendance.Records {
		if r.Status != model.AttendancePresent && r.Status != model.AttendanceAbsent {
			return fmt.Errorf("%w: attendance on %s has status %q", ErrInvalid, r.Date, r.Status)
		}
	}
	return nil
}

// clone returns a copy of s that is never nil, so empty collections encode
// as [] rather than null.
func clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
