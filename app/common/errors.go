package common

import (
	"fmt"
)

// UserVisibleError is an error whose message is safe to show to the
// operator, along with an HTTP status code for the web layer.
type UserVisibleError struct {
	HttpCode int
	Message  string
}

func (e *UserVisibleError) Error() string {
	return fmt.Sprintf("Error %d: %s", e.HttpCode, e.Message)
}

func NewUserVisibleError(httpCode int, message string) *UserVisibleError {
	return &UserVisibleError{
		HttpCode: httpCode,
		Message:  message,
	}
}

func Errorf(httpCode int, format string, args ...any) *UserVisibleError {
	return &UserVisibleError{
		HttpCode: httpCode,
		Message:  fmt.Sprintf(format, args...),
	}
}

func WrapErrorForResponse(err error, message string) error {
	if e, ok := err.(*UserVisibleError); ok {
		return &UserVisibleError{
			HttpCode: e.HttpCode,
			Message:  fmt.Sprintf("%s: %s", message, e.Message),
		}
	}
	return err
}
