package core

import (
	"errors"
	"fmt"

	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
)

// HandlerError represents an error that occurred during handler execution
type HandlerError struct {
	// The underlying error
	Err error

	// User-friendly message to display
	UserMessage string
}

// Error implements the error interface
func (e *HandlerError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMessage
}

// Unwrap returns the underlying error
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// NewUserError creates an error with a user-friendly message
func NewUserError(message string) *HandlerError {
	return &HandlerError{
		UserMessage: message,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *HandlerError {
	return &HandlerError{
		UserMessage: fmt.Sprintf("%s not found", resource),
	}
}

// UserMessage picks what to tell the user about err. Codes the user can act
// on keep the error text, everything else gets a generic message.
func UserMessage(err error) string {
	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) && handlerErr.UserMessage != "" {
		return handlerErr.UserMessage
	}

	switch dnderr.GetCode(err) {
	case dnderr.CodeInvalidArgument, dnderr.CodeNotFound, dnderr.CodeCancelled:
		return rootMessage(err)
	case dnderr.CodeInvalidConfiguration:
		return "The long rest settings are invalid: " + rootMessage(err)
	case dnderr.CodeUnavailable:
		return "A backing service is unavailable. Please try again later."
	}
	return "An error occurred while processing your request."
}

// rootMessage returns the message of the innermost dnderr error
func rootMessage(err error) string {
	msg := err.Error()
	for err != nil {
		var dndErr *dnderr.Error
		if !errors.As(err, &dndErr) {
			break
		}
		msg = dndErr.Message
		err = dndErr.Cause
	}
	return msg
}
