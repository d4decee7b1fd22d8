package plaid

import (
	"errors"
	"fmt"
)

type Error struct {
	ErrorType    string `json:"error_type"`
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
	RequestID    string `json:"request_id"`
	StatusCode   int    `json:"-"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("plaid error [%s/%s]: %s (status: %d)", e.ErrorType, e.ErrorCode, e.ErrorMessage, e.StatusCode)
}

func IsError(err error) (*Error, bool) {
	var plaidErr *Error
	ok := errors.As(err, &plaidErr)
	return plaidErr, ok
}
