package model

import "fmt"

type ErrorCode string

const (
	ErrInvalidRequest    ErrorCode = "INVALID_REQUEST"
	ErrInvalidAddress    ErrorCode = "INVALID_ADDRESS"
	ErrInvalidUID        ErrorCode = "INVALID_UID"
	ErrInvalidValue      ErrorCode = "INVALID_VALUE"
	ErrAccessDenied      ErrorCode = "ACCESS_DENIED"
	ErrInsufficientValue ErrorCode = "INSUFFICIENT_VALUE"
	ErrNotPayable        ErrorCode = "NOT_PAYABLE"
	ErrInternal          ErrorCode = "INTERNAL"
)

// CodedError is a stable error with a machine-readable code and a human message.
type CodedError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e *CodedError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code ErrorCode, message string) *CodedError {
	return &CodedError{Code: code, Message: message}
}
