package application

import (
	"errors"
	"fmt"
	"net/http"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

// ServiceError carries the stage a request died at plus the fixed message the
// caller sees. Provider error detail stays in Err for the operational log and
// is never returned to the caller.
type ServiceError struct {
	Stage      string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	StageValidation = "VALIDATION"
	StageBankLink   = "BANK_LINK"
	StageProcessor  = "PROCESSOR"
)

// Every failure path answers 500 with a short fixed string, validation
// included. That matches the system this replaces; see DESIGN.md.
const (
	MsgMissingToken   = "Missing token"
	MsgBankLinkFailed = "Error negotiating with provider"
	MsgCreateFailed   = "Unable to create customer."
)

func NewMissingTokenError() *ServiceError {
	return &ServiceError{
		Stage:      StageValidation,
		Message:    MsgMissingToken,
		HTTPStatus: http.StatusInternalServerError,
	}
}

func NewBankLinkError(err error) *ServiceError {
	return &ServiceError{
		Stage:      StageBankLink,
		Message:    MsgBankLinkFailed,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewProcessorError(err error) *ServiceError {
	return &ServiceError{
		Stage:      StageProcessor,
		Message:    MsgCreateFailed,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
