package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/khabaroff/thesis-management/src/models"
	"github.com/khabaroff/thesis-management/src/repositories"
)

const thesisSelect = `
	SELECT t.id, t.title, t.description, t.student_id, t.supervisor_id, t.submission_date, t.grade,
	       s.name, sup.name, t.created_at, t.updated_at
	FROM theses t
	LEFT JOIN students s ON t.student_id = s.id
	LEFT JOIN supervisors sup ON t.supervisor_id = sup.id`

// ThesisRepository stores theses
type ThesisRepository struct {
	db DBTX
}

// NewThesisRepository creates a new thesis repository
func NewThesisRepository(db DBTX) *ThesisRepository {
	return &ThesisRepository{db: db}
}

func scanThesis(row pgx.Row) (*models.Thesis, error) {
	var (
		t         models.Thesis
		submitted time.Time
	)
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.StudentID, &t.SupervisorID, &submitted, &t.Grade,
		&t.StudentName, &t.SupervisorName, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.SubmissionDate = models.NewDate(submitted)
	return &t, nil
}

// escapeLike makes % _ and \ in a user query match literally
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// buildThesisWhere turns a filter into a WHERE clause and its arguments
func buildThesisWhere(f models.ThesisFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, vals ...any) {
		for _, v := range vals {
			args = append(args, v)
			cond = strings.Replace(cond, "?", fmt.Sprintf("$%d", len(args)), 1)
		}
		conds = append(conds, cond)
	}

	if f.Year != 0 {
		add("EXTRACT(YEAR FROM t.submission_date) = ?", f.Year)
	}
	if f.From != nil && f.To != nil {
		add("t.submission_date BETWEEN ? AND ?", f.From.Time, f.To.Time)
	}
	if f.SupervisorID != 0 {
		add("t.supervisor_id = ?", f.SupervisorID)
	}
	if f.StudentID != 0 {
		add("t.student_id = ?", f.StudentID)
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		add("(t.title ILIKE ? OR s.name ILIKE ? OR sup.name ILIKE ?)", pattern, pattern, pattern)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List returns theses matching filter, newest submission first
func (r *ThesisRepository) List(ctx context.Context, filter models.ThesisFilter) ([]models.Thesis, error) {
	where, args := buildThesisWhere(filter)
	rows, err := r.db.Query(ctx, thesisSelect+where+` ORDER BY t.submission_date DESC, t.id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Thesis{}
	for rows.Next() {
		t, err := scanThesis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

// GetByID returns ErrNotFound when no thesis has the id
func (r *ThesisRepository) GetByID(ctx context.Context, id int64) (*models.Thesis, error) {
	t, err := scanThesis(r.db.QueryRow(ctx, thesisSelect+` WHERE t.id = $1`, id))
	return t, translate(err, repositories.ErrMissingReference)
}

// Create inserts a thesis and returns the stored row
func (r *ThesisRepository) Create(ctx context.Context, in models.ThesisInput, submission models.Date) (*models.Thesis, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO theses (title, description, student_id, supervisor_id, submission_date, grade)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		in.Title, in.Description, in.StudentID, in.SupervisorID, submission.Time, in.Grade,
	).Scan(&id)
	if err != nil {
		return nil, translate(err, repositories.ErrMissingReference)
	}
	return r.GetByID(ctx, id)
}

// Update returns ErrNotFound when the id does not exist
func (r *ThesisRepository) Update(ctx context.Context, id int64, in models.ThesisInput, submission models.Date) (*models.Thesis, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE theses
		 SET title = $2,
		     description = $3,
		     student_id = COALESCE(NULLIF($4::BIGINT, 0), student_id),
		     supervisor_id = COALESCE(NULLIF($5::BIGINT, 0), supervisor_id),
		     submission_date = $6,
		     grade = $7,
		     updated_at = NOW()
		 WHERE id = $1`,
		id, in.Title, in.Description, in.StudentID, in.SupervisorID, submission.Time, in.Grade,
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
func (r *ThesisRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM theses WHERE id = $1`, id)
	if err != nil {
		return translate(err, repositories.ErrReferenced)
	}
	return requireAffected(tag)
}

var _ repositories.ThesisRepository = (*ThesisRepository)(nil)
