package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/khabaroff/thesis-management/src/models"
	"github.com/khabaroff/thesis-management/src/repositories"
)

const studentSelect = `
	SELECT s.id, s.name, s.email, s.student_id, s.department_id, d.name, s.enrollment_year, s.created_at
	FROM students s
	LEFT JOIN departments d ON s.department_id = d.id`

// StudentRepository stores students
type StudentRepository struct {
	db DBTX
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{db: db}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(&s.ID, &s.Name, &s.Email, &s.StudentID, &s.DepartmentID, &s.DepartmentName, &s.EnrollmentYear, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns all students ordered by name
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	rows, err := r.db.Query(ctx, studentSelect+` ORDER BY s.name, s.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// GetByID returns ErrNotFound when no student has the id
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	s, err := scanStudent(r.db.QueryRow(ctx, studentSelect+` WHERE s.id = $1`, id))
	return s, translate(err, repositories.ErrMissingReference)
}

// Create inserts a student and returns the stored row
func (r *StudentRepository) Create(ctx context.Context, in models.StudentInput) (*models.Student, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO students (name, email, student_id, department_id, enrollment_year)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		in.Name, in.Email, in.StudentID, in.DepartmentID, in.EnrollmentYear,
	).Scan(&id)
	if err != nil {
		return nil, translate(err, repositories.ErrMissingReference)
	}
	return r.GetByID(ctx, id)
}

// Update returns ErrNotFound when the id does not exist
func (r *StudentRepository) Update(ctx context.Context, id int64, in models.StudentInput) (*models.Student, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE students
		 SET name = $2, email = $3, student_id = $4, department_id = $5, enrollment_year = $6
		 WHERE id = $1`,
		id, in.Name, in.Email, in.StudentID, in.DepartmentID, in.EnrollmentYear,
	)
	if err != nil {
		return nil, translate(err, repositories.ErrMissingReference)
	}
	if err := requireAffected(tag); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete returns ErrNotFound when the id does not exist
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return translate(err, repositories.ErrReferenced)
	}
	return requireAffected(tag)
}

var _ repositories.StudentRepository = (*StudentRepository)(nil)
