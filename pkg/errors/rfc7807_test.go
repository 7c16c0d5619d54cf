package errors_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/Aidin1998/hello-service/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStatus(t *testing.T) {
	tests := []struct {
		status    int
		wantType  string
		wantTitle string
	}{
		{http.StatusNotFound, errors.TypeNotFound, errors.TitleNotFound},
		{http.StatusMethodNotAllowed, errors.TypeMethodNotAllowed, errors.TitleMethodNotAllowed},
		{http.StatusInternalServerError, errors.TypeInternalError, errors.TitleInternalError},
		{http.StatusTeapot, errors.TypeUnknown, "I'm a teapot"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			p := errors.FromStatus(tt.status, "detail", "/x")
			assert.Equal(t, tt.status, p.Status)
			assert.Equal(t, tt.wantType, p.Type)
			assert.Equal(t, tt.wantTitle, p.Title)
			assert.Equal(t, "/x", p.Instance)
		})
	}
}

func TestProblemDetailsJSON(t *testing.T) {
	p := errors.NewNotFoundError("no route", "/nope").WithTraceID("abc")

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "Not Found", body["title"])
	assert.Equal(t, float64(http.StatusNotFound), body["status"])
	assert.Equal(t, "no route", body["detail"])
	assert.Equal(t, "/nope", body["instance"])
	assert.Equal(t, "abc", body["trace_id"])
}

func TestProblemDetailsOmitsEmptyFields(t *testing.T) {
	raw, err := json.Marshal(errors.NewInternalError("", ""))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "detail")
	assert.NotContains(t, string(raw), "instance")
	assert.NotContains(t, string(raw), "trace_id")
}

func TestAsProblem(t *testing.T) {
	wrapped := fmt.Errorf("route lookup: %w", errors.NewMethodNotAllowedError("use GET", "/health"))
	p := errors.AsProblem(wrapped, "/health")
	assert.Equal(t, http.StatusMethodNotAllowed, p.Status)
	assert.Equal(t, "use GET", p.Detail)

	p = errors.AsProblem(fmt.Errorf("secret internals"), "/boom")
	assert.Equal(t, http.StatusInternalServerError, p.Status)
	assert.NotContains(t, p.Detail, "secret")
	assert.Equal(t, "/boom", p.Instance)
}

func TestIsMatchesWrappedProblem(t *testing.T) {
	problem := errors.NewNotFoundError("", "/x")
	assert.True(t, errors.Is(fmt.Errorf("wrapped: %w", problem), problem))
	assert.False(t, errors.Is(fmt.Errorf("plain"), problem))
}

func TestProblemDetailsError(t *testing.T) {
	assert.Equal(t, "404 Not Found", errors.NewNotFoundError("", "").Error())
	assert.Equal(t, "500 Internal Server Error: boom", errors.NewInternalError("boom", "").Error())
}
