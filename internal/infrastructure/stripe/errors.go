package stripe

import (
	"errors"
	"fmt"
)

type Error struct {
	Type       string
	Code       string
	Message    string
	StatusCode int
}

type apiErrorResponse struct {
	Err apiError `json:"error"`
}

type apiError struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("stripe error [%s/%s]: %s (status: %d)", e.Type, e.Code, e.Message, e.StatusCode)
}

func IsError(err error) (*Error, bool) {
	var stripeErr *Error
	ok := errors.As(err, &stripeErr)
	return stripeErr, ok
}
