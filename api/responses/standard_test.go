package responses_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Aidin1998/hello-service/api/responses"
	"github.com/Aidin1998/hello-service/common/apiutil"
	"github.com/Aidin1998/hello-service/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadFieldOrder(t *testing.T) {
	raw, err := json.Marshal(responses.Welcome("orders", "0.1.0"))
	require.NoError(t, err)
	assert.Equal(t, `{"message":"Welcome to orders","status":"running","version":"0.1.0"}`, string(raw))

	raw, err = json.Marshal(responses.Health("orders"))
	require.NoError(t, err)
	assert.Equal(t, `{"status":"healthy","service":"orders"}`, string(raw))

	raw, err = json.Marshal(responses.Greeting("orders", "Ada"))
	require.NoError(t, err)
	assert.Equal(t, `{"message":"Hello, Ada!","service":"orders"}`, string(raw))
}

func TestProblemWritesProblemJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/missing", nil)
	c.Set(apiutil.TraceIDKey, "req-1")

	responses.Problem(c, http.StatusNotFound, "no route for GET /missing")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, errors.ContentType, w.Header().Get("Content-Type"))

	var body errors.ProblemDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, errors.TypeNotFound, body.Type)
	assert.Equal(t, "/missing", body.Instance)
	assert.Equal(t, "req-1", body.TraceID)
}
