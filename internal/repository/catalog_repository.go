package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viharinalla/student-dashboard/internal/catalog"
	"github.com/viharinalla/student-dashboard/internal/model"
)

// CatalogRepository reads and replaces the catalog tables. It satisfies
// catalog.Source so the server can boot from PostgreSQL.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// Load reads every catalog table in seed order.
func (r *CatalogRepository) Load(ctx context.Context) (catalog.Data, error) {
	var (
		d   catalog.Data
		err error
	)
	if d.Courses, err = r.courses(ctx); err != nil {
		return catalog.Data{}, fmt.Errorf("load courses: %w", err)
	}
	if d.Stats, err = r.stats(ctx); err != nil {
		return catalog.Data{}, fmt.Errorf("load stats: %w", err)
	}
	if d.Assignments, err = r.assignments(ctx); err != nil {
		return catalog.Data{}, fmt.Errorf("load assignments: %w", err)
	}
	if d.Groups, err = r.groups(ctx); err != nil {
		return catalog.Data{}, fmt.Errorf("load groups: %w", err)
	}
	if d.Resources, err = r.resources(ctx); err != nil {
		return catalog.Data{}, fmt.Errorf("load resources: %w", err)
	}
	if d.Attendance, err = r.attendance(ctx); err != nil {
		return catalog.Data{}, fmt.Errorf("load attendance: %w", err)
	}
	return d, nil
}

func (r *CatalogRepository) courses(ctx context.Context) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, progress, total_lessons, completed_lessons, duration
		 FROM courses ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Progress, &c.TotalLessons, &c.CompletedLessons, &c.Duration); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (r *CatalogRepository) stats(ctx context.Context) ([]model.Stat, error) {
	rows, err := r.pool.Query(ctx, `SELECT title, value, change FROM stats ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []model.Stat
	for rows.Next() {
		var (
			s   model.Stat
			raw []byte
		)
		if err := rows.Scan(&s.Title, &raw, &s.Change); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &s.Value); err != nil {
			return nil, fmt.Errorf("stat %q value: %w", s.Title, err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *CatalogRepository) assignments(ctx context.Context) ([]model.Assignment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, course, due_date, status FROM assignments ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []model.Assignment
	for rows.Next() {
		var (
			a   model.Assignment
			due time.Time
		)
		if err := rows.Scan(&a.ID, &a.Title, &a.Course, &due, &a.Status); err != nil {
			return nil, err
		}
		a.DueDate = due.Format(model.DueDateLayout)
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *CatalogRepository) groups(ctx context.Context) ([]model.Group, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, members FROM study_groups ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []model.Group
	for rows.Next() {
		var g model.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.Members); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (r *CatalogRepository) resources(ctx context.Context) ([]model.Resource, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, title, description, url FROM resources ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resources []model.Resource
	for rows.Next() {
		var res model.Resource
		if err := rows.Scan(&res.ID, &res.Title, &res.Desc, &res.URL); err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}
	return resources, rows.Err()
}

func (r *CatalogRepository) attendance(ctx context.Context) (model.AttendanceTerm, error) {
	var term model.AttendanceTerm
	err := r.pool.QueryRow(ctx, `SELECT days_present, days_absent FROM attendance_terms WHERE id = 1`).
		Scan(&term.DaysPresent, &term.DaysAbsent)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return term, err
	}

	rows, err := r.pool.Query(ctx, `SELECT day, status FROM attendance_records ORDER BY day ASC`)
	if err != nil {
		return term, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rec model.AttendanceRecord
			day time.Time
		)
		if err := rows.Scan(&day, &rec.Status); err != nil {
			return term, err
		}
		rec.Date = day.Format(model.DueDateLayout)
		term.Records = append(term.Records, rec)
	}
	return term, rows.Err()
}

// Replace swaps the whole catalog for d inside a single transaction.
func (r *CatalogRepository) Replace(ctx context.Context, d catalog.Data) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		for _, table := range []string{"courses", "stats", "assignments", "study_groups", "resources", "attendance_terms", "attendance_records"} {
			if _, err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		for i, c := range d.Courses {
			if _, err := tx.Exec(ctx,
				`INSERT INTO courses (id, position, title, progress, total_lessons, completed_lessons, duration)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				c.ID, i, c.Title, c.Progress, c.TotalLessons, c.CompletedLessons, c.Duration); err != nil {
				return fmt.Errorf("insert course %d: %w", c.ID, err)
			}
		}

		for i, s := range d.Stats {
			raw, err := json.Marshal(s.Value)
			if err != nil {
				return fmt.Errorf("encode stat %q: %w", s.Title, err)
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO stats (position, title, value, change) VALUES ($1, $2, $3, $4)`,
				i, s.Title, raw, s.Change); err != nil {
				return fmt.Errorf("insert stat %q: %w", s.Title, err)
			}
		}

		for i, a := range d.Assignments {
			due, err := time.Parse(model.DueDateLayout, a.DueDate)
			if err != nil {
				return fmt.Errorf("assignment %d due date: %w", a.ID, err)
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO assignments (id, position, title, course, due_date, status)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				a.ID, i, a.Title, a.Course, due, string(a.Status)); err != nil {
				return fmt.Errorf("insert assignment %d: %w", a.ID, err)
			}
		}

		for i, g := range d.Groups {
			if _, err := tx.Exec(ctx,
				`INSERT INTO study_groups (id, position, name, members) VALUES ($1, $2, $3, $4)`,
				g.ID, i, g.Name, g.Members); err != nil {
				return fmt.Errorf("insert group %d: %w", g.ID, err)
			}
		}

		for i, res := range d.Resources {
			if _, err := tx.Exec(ctx,
				`INSERT INTO resources (id, position, title, description, url) VALUES ($1, $2, $3, $4, $5)`,
				res.ID, i, res.Title, res.Desc, res.URL); err != nil {
				return fmt.Errorf("insert resource %d: %w", res.ID, err)
			}
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO attendance_terms (id, days_present, days_absent) VALUES (1, $1, $2)`,
			d.Attendance.DaysPresent, d.Attendance.DaysAbsent); err != nil {
			return fmt.Errorf("insert attendance term: %w", err)
		}
		for _, rec := range d.Attendance.Records {
			day, err := time.Parse(model.DueDateLayout, rec.Date)
			if err != nil {
				return fmt.Errorf("attendance date %q: %w", rec.Date, err)
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO attendance_records (day, status) VALUES ($1, $2)`,
				day, string(rec.Status)); err != nil {
				return fmt.Errorf("insert attendance %s: %w", rec.Date, err)
			}
		}
		return nil
	})
}
