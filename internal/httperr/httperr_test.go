package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Mapping(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{Validation, http.StatusBadRequest},
		{Conflict, http.StatusBadRequest},
		{Auth, http.StatusUnauthorized},
		{Forbidden, http.StatusForbidden},
		{Scoring, http.StatusBadRequest},
		{Persistence, http.StatusInternalServerError},
		{Internal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Status(E(tc.kind, "x")))
	}
}

func TestStatus_UnknownErrorIs500(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("boom")))
}

func TestWrite_Body(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, E(Validation, "missing field Age"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "missing field Age", body["error"])
}

func TestWrite_DoesNotLeakInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestWrap_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := Wrap(Persistence, "history write failed", cause)
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "history write failed")
}
