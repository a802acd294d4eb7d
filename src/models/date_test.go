package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-15", d.String())

	d, err = ParseDate("2024-06-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-15", d.String())

	_, err = ParseDate("15/06/2024")
	assert.Error(t, err)

	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)
}

func TestThesisJSONShape(t *testing.T) {
	d, _ := ParseDate("2023-09-01")
	name := "Ada"
	th := Thesis{ID: 7, Title: "Graphs", StudentID: 1, SupervisorID: 2, SubmissionDate: d, StudentName: &name}

	b, err := json.Marshal(th)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, "2023-09-01", out["submission_date"])
	assert.Equal(t, "Ada", out["student_name"])
	assert.NotContains(t, out, "supervisor_name")
}

func TestAdminHashNeverSerialized(t *testing.T) {
	a := Admin{ID: 1, Username: "admin", Email: "a@example.com", PasswordHash: "$2a$10$secret"}
	b, err := json.Marshal(a)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret")
	assert.NotContains(t, string(b), "password")

	pub := a.Public()
	assert.Equal(t, AdminPublic{ID: 1, Username: "admin", Email: "a@example.com"}, pub)
}
