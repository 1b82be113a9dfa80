package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		errType ErrorType
		want    int
	}{
		{ValidationError, http.StatusNotAcceptable},
		{NotFoundError, http.StatusNotFound},
		{ConflictError, http.StatusConflict},
		{AuthError, http.StatusUnauthorized},
		{UnauthorizedError, http.StatusForbidden},
		{BadRequestError, http.StatusBadRequest},
		{DatabaseError, http.StatusInternalServerError},
		{UnknownError, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, NewAppError(tc.errType, "x", nil).StatusCode(), "type %d", tc.errType)
	}
}

func TestFromErrorWalksWrappedChain(t *testing.T) {
	base := NewNotFoundError("realty not found", nil)
	wrapped := fmt.Errorf("lookup: %w", base)

	ae, ok := FromError(wrapped)
	require.True(t, ok)
	assert.Same(t, base, ae)
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsValidationError(wrapped))

	assert.True(t, IsAuthError(fmt.Errorf("mw: %w", NewAuthError("missing token", nil))))
	assert.True(t, IsUnauthorizedError(NewUnauthorizedError("not yours", nil)))
	assert.False(t, IsAuthError(NewUnauthorizedError("not yours", nil)))

	_, ok = FromError(errors.New("plain"))
	assert.False(t, ok)
	_, ok = FromError(nil)
	assert.False(t, ok)
}

func TestErrorIncludesUnderlying(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseError("failed to list zones", cause)

	assert.Equal(t, "failed to list zones: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestWriteError(t *testing.T) {
	t.Run("validation error carries message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/users", nil)

		WriteError(rec, req, NewValidationError("Validation Error: invalid email", nil))

		assert.Equal(t, http.StatusNotAcceptable, rec.Code)
		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Validation Error: invalid email", body.Message)
	})

	t.Run("not found has empty body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/zones/9", nil)

		WriteError(rec, req, NewNotFoundError("zone not found", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("plain errors become generic 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/realties", nil)

		WriteError(rec, req, errors.New("pq: password authentication failed"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "password authentication")
	})
}

func TestParseID(t *testing.T) {
	id, err := ParseID("17")
	require.NoError(t, err)
	assert.Equal(t, uint(17), id)

	for _, raw := range []string{"", "0", "-3", "abc", "1.5", "99999999999999999999999"} {
		_, err := ParseID(raw)
		assert.True(t, IsNotFound(err), "raw %q", raw)
	}
}
