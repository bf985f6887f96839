package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassesThrough(t *testing.T) {
	original := NewValidationError("bad input", map[string]any{"field": "status"})
	mapped := ToDomainError(original)
	require.Equal(t, "VALIDATION_FAILED", mapped.Code)
	require.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
	require.Equal(t, "status", mapped.Details["field"])
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	mapped := ToDomainError(fmt.Errorf("query profile: %w", pgx.ErrNoRows))
	require.Equal(t, "NOT_FOUND", mapped.Code)
	require.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	cause := errors.New("socket closed")
	mapped := ToDomainError(cause)
	require.Equal(t, "INTERNAL_ERROR", mapped.Code)
	require.ErrorIs(t, mapped, cause)
}

func TestToDomainErrorNil(t *testing.T) {
	require.Nil(t, ToDomainError(nil))
}
