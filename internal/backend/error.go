package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrBadRequest      = errors.New("bad request")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrTooManyRequests = errors.New("too many requests")
)

// Error is a non-2xx answer from the backend.
type Error struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Is lets errors.Is match an *Error against the status sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrBadRequest:
		return e.StatusCode == http.StatusBadRequest
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrTooManyRequests:
		return e.StatusCode == http.StatusTooManyRequests
	}
	return false
}

type errorBody struct {
	Message json.RawMessage `json:"message"`
	Error   string          `json:"error"`
}

func newError(status int, body []byte) *Error {
	return &Error{
		StatusCode: status,
		Message:    extractMessage(body),
		Body:       body,
	}
}

// extractMessage reads "message" (a string or a list of strings), then "error".
func extractMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}

	if len(eb.Message) > 0 {
		var s string
		if err := json.Unmarshal(eb.Message, &s); err == nil && s != "" {
			return s
		}
		var list []string
		if err := json.Unmarshal(eb.Message, &list); err == nil && len(list) > 0 {
			return strings.Join(list, ", ")
		}
	}
	return eb.Error
}

// Message returns the server's message for err, or fallback when there is none.
func Message(err error, fallback string) string {
	var be *Error
	if errors.As(err, &be) && be.Message != "" {
		return be.Message
	}
	return fallback
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var be *Error
	if errors.As(err, &be) {
		return be.StatusCode
	}
	return 0
}
