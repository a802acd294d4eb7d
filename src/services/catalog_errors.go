package services

import (
	"errors"

	"github.com/khabaroff/thesis-management/src/repositories"
)

// storeError classifies a repository error for the named entity
func storeError(entity string, err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return NotFound(entity + " not found")
	case errors.Is(err, repositories.ErrDuplicate):
		return Conflict(entity+" already exists", err)
	case errors.Is(err, repositories.ErrReferenced):
		return Conflict(entity+" is still referenced by other records", err)
	case errors.Is(err, repositories.ErrMissingReference):
		return Conflict("Referenced record does not exist", err)
	default:
		return Internal("failed to access "+entity, err)
	}
}
