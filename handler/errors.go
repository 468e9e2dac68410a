package handler

import (
	"errors"
	"net/http"
)

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response.
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrSSENotInitialized indicates SSE was used on a request that is not a datastar request.
	ErrSSENotInitialized = errors.New("SSE not initialized for this request")
	// ErrBinderNotApplicable is returned by binders that do not handle the request; Wrap skips them.
	ErrBinderNotApplicable = errors.New("binder not applicable to this request")
)

// HTTPError carries a status code and a user-facing message.
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError. An empty message defaults to the status text.
func NewHTTPError(code int, message string) HTTPError {
	if message == "" {
		message = http.StatusText(code)
	}
	return HTTPError{Code: code, Message: message}
}

// BadRequest is shorthand for a 400 HTTPError.
func BadRequest(message string) HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}
