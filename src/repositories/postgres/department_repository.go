package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/khabaroff/thesis-management/src/models"
	"github.com/khabaroff/thesis-management/src/repositories"
)

// DepartmentRepository stores departments
type DepartmentRepository struct {
	db DBTX
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db DBTX) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

func scanDepartment(row pgx.Row) (*models.Department, error) {
	var d models.Department
	if err := row.Scan(&d.ID, &d.Name, &d.CreatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

// List returns all departments ordered by name
func (r *DepartmentRepository) List(ctx context.Context) ([]models.Department, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, created_at FROM departments ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Department{}
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

// GetByID returns ErrNotFound when no department has the id
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	d, err := scanDepartment(r.db.QueryRow(ctx, `SELECT id, name, created_at FROM departments WHERE id = $1`, id))
	return d, translate(err, repositories.ErrMissingReference)
}

// Create inserts a department and returns the stored row
func (r *DepartmentRepository) Create(ctx context.Context, in models.DepartmentInput) (*models.Department, error) {
	d, err := scanDepartment(r.db.QueryRow(ctx,
		`INSERT INTO departments (name) VALUES ($1) RETURNING id, name, created_at`, in.Name))
	return d, translate(err, repositories.ErrMissingReference)
}

// Update returns ErrNotFound when the id does not exist
func (r *DepartmentRepository) Update(ctx context.Context, id int64, in models.DepartmentInput) (*models.Department, error) {
	d, err := scanDepartment(r.db.QueryRow(ctx,
		`UPDATE departments SET name = $2 WHERE id = $1 RETURNING id, name, created_at`, id, in.Name))
	return d, translate(err, repositories.ErrMissingReference)
}

// Delete returns ErrNotFound when the id does not exist
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return translate(err, repositories.ErrReferenced)
	}
	return requireAffected(tag)
}

var _ repositories.DepartmentRepository = (*DepartmentRepository)(nil)
