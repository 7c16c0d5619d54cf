// Package errors renders framework-level failures as RFC 7807 Problem Details
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Is reports whether any error in err's tree matches target
var Is = errors.Is

// ContentType is the media type of a problem details body
const ContentType = "application/problem+json"

// Problem type URIs
const (
	TypeNotFound         = "/problems/not-found"
	TypeMethodNotAllowed = "/problems/method-not-allowed"
	TypeInternalError    = "/problems/internal-error"
	TypeUnknown          = "about:blank"
)

// Problem titles
const (
	TitleNotFound         = "Not Found"
	TitleMethodNotAllowed = "Method Not Allowed"
	TitleInternalError    = "Internal Server Error"
)

// ProblemDetails represents an RFC 7807 Problem Details response
type ProblemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	TraceID  string `json:"trace_id,omitempty"`
}

var _ error = (*ProblemDetails)(nil)

// Error implements the error interface
func (p *ProblemDetails) Error() string {
	if p.Detail == "" {
		return fmt.Sprintf("%d %s", p.Status, p.Title)
	}
	return fmt.Sprintf("%d %s: %s", p.Status, p.Title, p.Detail)
}

// WithTraceID adds a trace ID to the problem details
func (p *ProblemDetails) WithTraceID(traceID string) *ProblemDetails {
	p.TraceID = traceID
	return p
}

// NewNotFoundError creates a not found error problem
func NewNotFoundError(detail, instance string) *ProblemDetails {
	return NewProblemDetails(TypeNotFound, TitleNotFound, http.StatusNotFound, detail, instance)
}

// NewMethodNotAllowedError creates a method not allowed problem
func NewMethodNotAllowedError(detail, instance string) *ProblemDetails {
	return NewProblemDetails(TypeMethodNotAllowed, TitleMethodNotAllowed, http.StatusMethodNotAllowed, detail, instance)
}

// NewInternalError creates an internal server error problem
func NewInternalError(detail, instance string) *ProblemDetails {
	return NewProblemDetails(TypeInternalError, TitleInternalError, http.StatusInternalServerError, detail, instance)
}

// NewProblemDetails creates a generic problem details with all fields
func NewProblemDetails(problemType, title string, status int, detail, instance string) *ProblemDetails {
	return &ProblemDetails{
		Type:     problemType,
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: instance,
	}
}

// FromStatus maps an HTTP status to its problem type. Statuses without a
// dedicated type use about:blank and the standard status text as title.
func FromStatus(status int, detail, instance string) *ProblemDetails {
	switch status {
	case http.StatusNotFound:
		return NewNotFoundError(detail, instance)
	case http.StatusMethodNotAllowed:
		return NewMethodNotAllowedError(detail, instance)
	case http.StatusInternalServerError:
		return NewInternalError(detail, instance)
	default:
		return NewProblemDetails(TypeUnknown, http.StatusText(status), status, detail, instance)
	}
}

// AsProblem unwraps err into a ProblemDetails, falling back to a 500 that
// does not leak the original message.
func AsProblem(err error, instance string) *ProblemDetails {
	var p *ProblemDetails
	if errors.As(err, &p) {
		return p
	}
	return NewInternalError("An unexpected error occurred", instance)
}
