package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khabaroff/thesis-management/src/database"
	"github.com/khabaroff/thesis-management/src/models"
	"github.com/khabaroff/thesis-management/src/repositories"
)

func strPtr(s string) *string { return &s }

func TestDepartmentRepository_CRUD(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		ctx := context.Background()
		repo := NewDepartmentRepository(tdb.Pool)

		physics, err := repo.Create(ctx, models.DepartmentInput{Name: "Physics"})
		require.NoError(t, err)
		assert.NotZero(t, physics.ID)
		assert.Equal(t, "Physics", physics.Name)

		_, err = repo.Create(ctx, models.DepartmentInput{Name: "Biology"})
		require.NoError(t, err)

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Biology", list[0].Name, "ordered by name")

		updated, err := repo.Update(ctx, physics.ID, models.DepartmentInput{Name: "Applied Physics"})
		require.NoError(t, err)
		assert.Equal(t, "Applied Physics", updated.Name)

		_, err = repo.Update(ctx, 999999, models.DepartmentInput{Name: "Nope"})
		assert.ErrorIs(t, err, repositories.ErrNotFound)

		require.NoError(t, repo.Delete(ctx, physics.ID))
		assert.ErrorIs(t, repo.Delete(ctx, physics.ID), repositories.ErrNotFound)

		_, err = repo.GetByID(ctx, physics.ID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestStudentRepository_DuplicateAndDepartmentJoin(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		ctx := context.Background()
		deptID, err := tdb.CreateTestDepartment("Mathematics")
		require.NoError(t, err)

		repo := NewStudentRepository(tdb.Pool)
		year := 2021
		s, err := repo.Create(ctx, models.StudentInput{
			Name: "Ada", Email: "ada@example.com", StudentID: "S-001",
			DepartmentID: &deptID, EnrollmentYear: &year,
		})
		require.NoError(t, err)
		require.NotNil(t, s.DepartmentName)
		assert.Equal(t, "Mathematics", *s.DepartmentName)
		assert.Equal(t, 2021, *s.EnrollmentYear)

		_, err = repo.Create(ctx, models.StudentInput{Name: "Bob", Email: "bob@example.com", StudentID: "S-001"})
		assert.ErrorIs(t, err, repositories.ErrDuplicate)

		missing := int64(424242)
		_, err = repo.Create(ctx, models.StudentInput{Name: "Cy", Email: "cy@example.com", StudentID: "S-002", DepartmentID: &missing})
		assert.ErrorIs(t, err, repositories.ErrMissingReference)

		// Department removal detaches the student
		require.NoError(t, NewDepartmentRepository(tdb.Pool).Delete(ctx, deptID))
		s, err = repo.GetByID(ctx, s.ID)
		require.NoError(t, err)
		assert.Nil(t, s.DepartmentID)
		assert.Nil(t, s.DepartmentName)
	})
}

func TestThesisRepository_Filters(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		ctx := context.Background()
		supID, err := tdb.CreateTestSupervisor("Grace Hopper", "grace@example.com", nil)
		require.NoError(t, err)
		otherSup, err := tdb.CreateTestSupervisor("Alan Turing", "alan@example.com", nil)
		require.NoError(t, err)
		stuID, err := tdb.CreateTestStudent("Ada Lovelace", "ada@example.com", "S-100", nil)
		require.NoError(t, err)

		repo := NewThesisRepository(tdb.Pool)
		mk := func(title, date string, sup int64) *models.Thesis {
			d, err := models.ParseDate(date)
			require.NoError(t, err)
			th, err := repo.Create(ctx, models.ThesisInput{Title: title, StudentID: stuID, SupervisorID: sup}, d)
			require.NoError(t, err)
			return th
		}
		first := mk("Compilers at 100% speed", "2023-05-10", supID)
		mk("Analytical Engines", "2024-02-01", otherSup)

		all, err := repo.List(ctx, models.ThesisFilter{})
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Analytical Engines", all[0].Title, "newest first")
		assert.Equal(t, "Ada Lovelace", *all[0].StudentName)
		assert.Equal(t, "Alan Turing", *all[0].SupervisorName)

		byYear, err := repo.List(ctx, models.ThesisFilter{Year: 2023})
		require.NoError(t, err)
		require.Len(t, byYear, 1)
		assert.Equal(t, first.ID, byYear[0].ID)

		from, _ := models.ParseDate("2024-02-01")
		to, _ := models.ParseDate("2024-02-01")
		byRange, err := repo.List(ctx, models.ThesisFilter{From: &from, To: &to})
		require.NoError(t, err)
		assert.Len(t, byRange, 1, "range is inclusive")

		bySup, err := repo.List(ctx, models.ThesisFilter{SupervisorID: supID})
		require.NoError(t, err)
		assert.Len(t, bySup, 1)

		byName, err := repo.List(ctx, models.ThesisFilter{Query: "turing"})
		require.NoError(t, err)
		assert.Len(t, byName, 1)

		literal, err := repo.List(ctx, models.ThesisFilter{Query: "100%"})
		require.NoError(t, err)
		assert.Len(t, literal, 1)

		wildcard, err := repo.List(ctx, models.ThesisFilter{Query: "%"})
		require.NoError(t, err)
		assert.Len(t, wildcard, 1, "percent matches literally")

		d, _ := models.ParseDate("2023-06-01")
		updated, err := repo.Update(ctx, first.ID, models.ThesisInput{Title: "Compilers", Grade: strPtr("A")}, d)
		require.NoError(t, err)
		assert.Equal(t, supID, updated.SupervisorID, "zero supervisor keeps stored value")
		assert.Equal(t, "2023-06-01", updated.SubmissionDate.String())

		// Supervisors with theses cannot be deleted
		err = NewSupervisorRepository(tdb.Pool).Delete(ctx, supID)
		assert.ErrorIs(t, err, repositories.ErrReferenced)

		// Deleting the student removes the theses
		require.NoError(t, NewStudentRepository(tdb.Pool).Delete(ctx, stuID))
		all, err = repo.List(ctx, models.ThesisFilter{})
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestAdminRepository(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		ctx := context.Background()
		repo := NewAdminRepository(tdb.Pool)

		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)

		a := &models.Admin{Username: "admin", Email: "admin@example.com", PasswordHash: "hash-1"}
		require.NoError(t, repo.Create(ctx, a))
		assert.NotZero(t, a.ID)

		err = repo.Create(ctx, &models.Admin{Username: "admin", Email: "x@example.com", PasswordHash: "h"})
		assert.ErrorIs(t, err, repositories.ErrDuplicate)

		got, err := repo.GetByUsername(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, "hash-1", got.PasswordHash)

		_, err = repo.GetByUsername(ctx, "Admin")
		assert.ErrorIs(t, err, repositories.ErrNotFound, "usernames are case-sensitive")

		updated, err := repo.Update(ctx, a.ID, "admin", "new@example.com", "")
		require.NoError(t, err)
		assert.Equal(t, "hash-1", updated.PasswordHash, "empty hash keeps password")
		assert.Equal(t, "new@example.com", updated.Email)

		updated, err = repo.Update(ctx, a.ID, "admin", "new@example.com", "hash-2")
		require.NoError(t, err)
		assert.Equal(t, "hash-2", updated.PasswordHash)

		list, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)

		require.NoError(t, repo.Delete(ctx, a.ID))
		assert.ErrorIs(t, repo.Delete(ctx, a.ID), repositories.ErrNotFound)
	})
}
