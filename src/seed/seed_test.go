package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/khabaroff/thesis-management/src/models"
	"github.com/khabaroff/thesis-management/src/repositories"
	"github.com/khabaroff/thesis-management/src/repositories/mock"
	"github.com/khabaroff/thesis-management/src/server"
	"github.com/khabaroff/thesis-management/src/services"
)

const fixtureYAML = `
departments:
  - key: cs
    name: Computer Science
supervisors:
  - key: turing
    name: Alan Turing
    email: turing@example.edu
    department: cs
students:
  - key: ada
    name: Ada Lovelace
    email: ada@example.edu
    student_id: S-001
    department: cs
    enrollment_year: 2021
theses:
  - title: Analytical Engines
    student: ada
    supervisor: turing
    submission_date: "2024-06-01"
admins:
  - username: admin
    email: admin@example.edu
    password: admin123
  - username: editor
    email: editor@example.edu
    password: editor123
`

type repos struct {
	departments *mock.DepartmentRepository
	supervisors *mock.SupervisorRepository
	students    *mock.StudentRepository
	theses      *mock.ThesisRepository
	admins      *mock.AdminRepository
}

func newServices() (*server.Services, *repos) {
	r := &repos{
		departments: mock.NewDepartmentRepository(),
		supervisors: mock.NewSupervisorRepository(),
		students:    mock.NewStudentRepository(),
		theses:      mock.NewThesisRepository(),
		admins:      mock.NewAdminRepository(),
	}
	tokens := services.NewTokenService("seed-test-secret-0123456789abcdefgh")
	return &server.Services{
		Tokens:      tokens,
		Admins:      services.NewAdminService(r.admins, services.NewPasswordHasher(bcrypt.MinCost), tokens),
		Departments: services.NewDepartmentService(r.departments),
		Supervisors: services.NewSupervisorService(r.supervisors, r.theses),
		Students:    services.NewStudentService(r.students, r.theses),
		Theses:      services.NewThesisService(r.theses),
	}, r
}

func TestParse(t *testing.T) {
	f, err := Parse([]byte(fixtureYAML))
	require.NoError(t, err)
	assert.Len(t, f.Departments, 1)
	assert.Equal(t, "S-001", f.Students[0].StudentID)
	require.NotNil(t, f.Students[0].EnrollmentYear)
	assert.Equal(t, 2021, *f.Students[0].EnrollmentYear)
	assert.Equal(t, "2024-06-01", f.Theses[0].SubmissionDate)
}

func TestParseRejectsBadReferences(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown department", "supervisors:\n  - key: x\n    name: X\n    department: nope\n"},
		{"unknown student", "supervisors:\n  - key: s\n    name: S\ntheses:\n  - title: T\n    student: ghost\n    supervisor: s\n"},
		{"duplicate key", "departments:\n  - key: a\n    name: A\n  - key: a\n    name: B\n"},
		{"not yaml", "departments: [unclosed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixtureYAML), 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Admins, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApplyResolvesReferences(t *testing.T) {
	svc, r := newServices()
	r.departments.CreateFunc = func(_ context.Context, in models.DepartmentInput) (*models.Department, error) {
		return &models.Department{ID: 7, Name: in.Name}, nil
	}
	r.supervisors.CreateFunc = func(_ context.Context, in models.SupervisorInput) (*models.Supervisor, error) {
		return &models.Supervisor{ID: 11, Name: in.Name, Email: in.Email, DepartmentID: in.DepartmentID}, nil
	}
	r.students.CreateFunc = func(_ context.Context, in models.StudentInput) (*models.Student, error) {
		return &models.Student{ID: 13, Name: in.Name, Email: in.Email, StudentID: in.StudentID}, nil
	}
	r.admins.GetByUsernameFunc = func(_ context.Context, username string) (*models.Admin, error) {
		if username == "admin" {
			return &models.Admin{ID: 1, Username: "admin"}, nil
		}
		return nil, repositories.ErrNotFound
	}

	f, err := Parse([]byte(fixtureYAML))
	require.NoError(t, err)

	res, err := Apply(context.Background(), svc, f)
	require.NoError(t, err)
	assert.Equal(t, &Result{Departments: 1, Supervisors: 1, Students: 1, Theses: 1, Admins: 1, AdminsSkipped: 1}, res)

	sup := r.supervisors.Calls["Create"][0].(models.SupervisorInput)
	require.NotNil(t, sup.DepartmentID)
	assert.Equal(t, int64(7), *sup.DepartmentID)

	thesis := r.theses.Calls["Create"][0].(models.ThesisInput)
	assert.Equal(t, int64(13), thesis.StudentID)
	assert.Equal(t, int64(11), thesis.SupervisorID)

	require.Len(t, r.admins.Calls["Create"], 1, "existing admin is never inserted")
	assert.Equal(t, "editor", r.admins.Calls["Create"][0].(*models.Admin).Username)
}

func TestApplyStopsOnError(t *testing.T) {
	svc, r := newServices()
	r.students.CreateFunc = func(context.Context, models.StudentInput) (*models.Student, error) {
		return nil, repositories.ErrDuplicate
	}

	f, err := Parse([]byte(fixtureYAML))
	require.NoError(t, err)

	res, err := Apply(context.Background(), svc, f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ada Lovelace")
	assert.Equal(t, 0, res.Theses)
	assert.Empty(t, r.theses.Calls["Create"])
}
