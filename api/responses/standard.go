package responses

import (
	"github.com/Aidin1998/hello-service/common/apiutil"
	"github.com/Aidin1998/hello-service/pkg/errors"
	"github.com/gin-gonic/gin"
)

// Status values reported by the service
const (
	StatusRunning = "running"
	StatusHealthy = "healthy"
)

// WelcomeResponse is returned by the root endpoint
type WelcomeResponse struct {
	Message string `json:"message" example:"Welcome to hello-service"`
	Status  string `json:"status" example:"running"`
	Version string `json:"version" example:"0.1.0"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Service string `json:"service" example:"hello-service"`
}

// GreetingResponse is returned by the hello endpoint
type GreetingResponse struct {
	Message string `json:"message" example:"Hello, World!"`
	Service string `json:"service" example:"hello-service"`
}

// Welcome builds the root payload for the named service
func Welcome(service, version string) WelcomeResponse {
	return WelcomeResponse{
		Message: "Welcome to " + service,
		Status:  StatusRunning,
		Version: version,
	}
}

// Health builds the health payload for the named service
func Health(service string) HealthResponse {
	return HealthResponse{
		Status:  StatusHealthy,
		Service: service,
	}
}

// Greeting builds the hello payload for name
func Greeting(service, name string) GreetingResponse {
	return GreetingResponse{
		Message: "Hello, " + name + "!",
		Service: service,
	}
}

// Error writes problemDetails with the problem+json content type
func Error(c *gin.Context, problemDetails *errors.ProblemDetails) {
	if problemDetails.TraceID == "" {
		if traceID := apiutil.GetTraceID(c); traceID != "" {
			problemDetails.WithTraceID(traceID)
		}
	}

	c.Header("Content-Type", errors.ContentType)
	c.JSON(problemDetails.Status, problemDetails)
}

// Problem writes a problem for status scoped to the request path
func Problem(c *gin.Context, status int, detail string) {
	Error(c, errors.FromStatus(status, detail, c.Request.URL.Path))
}
