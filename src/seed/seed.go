// Package seed loads YAML fixtures of departments, supervisors, students,
// theses and admins into the store through the application services.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"gopkg.in/yaml.v3"

	"github.com/khabaroff/thesis-management/src/logging"
	"github.com/khabaroff/thesis-management/src/models"
	"github.com/khabaroff/thesis-management/src/repositories/postgres"
	"github.com/khabaroff/thesis-management/src/server"
)

// Fixture is the document layout. Rows refer to each other by key, never by id.
type Fixture struct {
	Departments []Department        `yaml:"departments"`
	Supervisors []Supervisor        `yaml:"supervisors"`
	Students    []Student           `yaml:"students"`
	Theses      []Thesis            `yaml:"theses"`
	Admins      []models.AdminInput `yaml:"admins"`
}

// Department is a fixture department. Key is how other rows refer to it.
type Department struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
}

// Supervisor is a fixture supervisor. Department names a Department key.
type Supervisor struct {
	Key            string  `yaml:"key"`
	Name           string  `yaml:"name"`
	Email          string  `yaml:"email"`
	Department     string  `yaml:"department"`
	Specialization *string `yaml:"specialization"`
}

// Student is a fixture student. StudentID is the registration number.
type Student struct {
	Key            string `yaml:"key"`
	Name           string `yaml:"name"`
	Email          string `yaml:"email"`
	StudentID      string `yaml:"student_id"`
	Department     string `yaml:"department"`
	EnrollmentYear *int   `yaml:"enrollment_year"`
}

// Thesis is a fixture thesis. Student and Supervisor name fixture keys.
type Thesis struct {
	Title          string  `yaml:"title"`
	Description    *string `yaml:"description"`
	Student        string  `yaml:"student"`
	Supervisor     string  `yaml:"supervisor"`
	SubmissionDate string  `yaml:"submission_date"`
	Grade          *string `yaml:"grade"`
}

// Result counts what Apply wrote
type Result struct {
	Departments   int
	Supervisors   int
	Students      int
	Theses        int
	Admins        int
	AdminsSkipped int
}

// Load reads and parses a fixture file
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a fixture and checks that every reference names a declared key
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixture) validate() error {
	keys := func(kind string, n int, key func(int) string) (map[string]bool, error) {
		seen := make(map[string]bool, n)
		for i := 0; i < n; i++ {
			k := key(i)
			if k == "" {
				continue
			}
			if seen[k] {
				return nil, fmt.Errorf("duplicate %s key %q", kind, k)
			}
			seen[k] = true
		}
		return seen, nil
	}

	depts, err := keys("department", len(f.Departments), func(i int) string { return f.Departments[i].Key })
	if err != nil {
		return err
	}
	sups, err := keys("supervisor", len(f.Supervisors), func(i int) string { return f.Supervisors[i].Key })
	if err != nil {
		return err
	}
	studs, err := keys("student", len(f.Students), func(i int) string { return f.Students[i].Key })
	if err != nil {
		return err
	}

	for _, s := range f.Supervisors {
		if s.Department != "" && !depts[s.Department] {
			return fmt.Errorf("supervisor %q: unknown department %q", s.Name, s.Department)
		}
	}
	for _, s := range f.Students {
		if s.Department != "" && !depts[s.Department] {
			return fmt.Errorf("student %q: unknown department %q", s.Name, s.Department)
		}
	}
	for _, t := range f.Theses {
		if !studs[t.Student] {
			return fmt.Errorf("thesis %q: unknown student %q", t.Title, t.Student)
		}
		if !sups[t.Supervisor] {
			return fmt.Errorf("thesis %q: unknown supervisor %q", t.Title, t.Supervisor)
		}
	}
	return nil
}

// TxBeginner starts a transaction; *pgxpool.Pool satisfies it
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// ApplyInTx runs Apply on services built over a single transaction. The
// transaction commits only if every row was written, so a failed run leaves
// nothing behind.
func ApplyInTx(ctx context.Context, db TxBeginner, build func(postgres.DBTX) *server.Services, f *Fixture) (*Result, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin seed transaction: %w", err)
	}
	// No-op once committed
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := Apply(ctx, build(tx), f)
	if err != nil {
		return res, err
	}
	if err := tx.Commit(ctx); err != nil {
		return res, fmt.Errorf("commit seed transaction: %w", err)
	}
	return res, nil
}

// Apply creates every row in dependency order and stops at the first error.
// Admins whose username is already stored are skipped; every other row is
// inserted unconditionally.
func Apply(ctx context.Context, svc *server.Services, f *Fixture) (*Result, error) {
	logger := logging.NewLogger("seed")
	res := &Result{}

	deptIDs := make(map[string]int64, len(f.Departments))
	for _, d := range f.Departments {
		out, err := svc.Departments.Create(ctx, models.DepartmentInput{Name: d.Name})
		if err != nil {
			return res, fmt.Errorf("department %q: %w", d.Name, err)
		}
		if d.Key != "" {
			deptIDs[d.Key] = out.ID
		}
		res.Departments++
	}

	ref := func(m map[string]int64, key string) *int64 {
		if key == "" {
			return nil
		}
		id := m[key]
		return &id
	}

	supIDs := make(map[string]int64, len(f.Supervisors))
	for _, s := range f.Supervisors {
		out, err := svc.Supervisors.Create(ctx, models.SupervisorInput{
			Name:           s.Name,
			Email:          s.Email,
			DepartmentID:   ref(deptIDs, s.Department),
			Specialization: s.Specialization,
		})
		if err != nil {
			return res, fmt.Errorf("supervisor %q: %w", s.Name, err)
		}
		if s.Key != "" {
			supIDs[s.Key] = out.ID
		}
		res.Supervisors++
	}

	studIDs := make(map[string]int64, len(f.Students))
	for _, s := range f.Students {
		out, err := svc.Students.Create(ctx, models.StudentInput{
			Name:           s.Name,
			Email:          s.Email,
			StudentID:      s.StudentID,
			DepartmentID:   ref(deptIDs, s.Department),
			EnrollmentYear: s.EnrollmentYear,
		})
		if err != nil {
			return res, fmt.Errorf("student %q: %w", s.Name, err)
		}
		if s.Key != "" {
			studIDs[s.Key] = out.ID
		}
		res.Students++
	}

	for _, t := range f.Theses {
		_, err := svc.Theses.Create(ctx, models.ThesisInput{
			Title:          t.Title,
			Description:    t.Description,
			StudentID:      studIDs[t.Student],
			SupervisorID:   supIDs[t.Supervisor],
			SubmissionDate: t.SubmissionDate,
			Grade:          t.Grade,
		})
		if err != nil {
			return res, fmt.Errorf("thesis %q: %w", t.Title, err)
		}
		res.Theses++
	}

	// Checked up front: a failed INSERT would abort the surrounding transaction
	for _, a := range f.Admins {
		exists, err := svc.Admins.Exists(ctx, a.Username)
		if err != nil {
			return res, fmt.Errorf("admin %q: %w", a.Username, err)
		}
		if exists {
			logger.Info().Str("username", a.Username).Msg("admin already exists, skipping")
			res.AdminsSkipped++
			continue
		}
		if _, err := svc.Admins.Register(ctx, a); err != nil {
			return res, fmt.Errorf("admin %q: %w", a.Username, err)
		}
		res.Admins++
	}

	return res, nil
}
