package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"

	// Content generation errors
	CodeUnsupportedFileType    ErrorCode = "UNSUPPORTED_FILE_TYPE"
	CodeMissingInput           ErrorCode = "MISSING_INPUT"
	CodeMalformedDocument      ErrorCode = "MALFORMED_DOCUMENT"
	CodeModelInvocationFailure ErrorCode = "MODEL_INVOCATION_FAILURE"
	CodeResponseParseFailure   ErrorCode = "RESPONSE_PARSE_FAILURE"

	// Store errors
	CodeStoreWriteFailure ErrorCode = "STORE_WRITE_FAILURE"
	CodeStoreReadFailure  ErrorCode = "STORE_READ_FAILURE"
)

// Client-facing messages.
const (
	MsgUnsupportedFileType = "Unsupported file type."
	MsgMissingInput        = "Please provide either a topic or upload a file."
	MsgGenerationFailed    = "Failed to generate content from AI."
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewUnsupportedFileTypeError(filename string) *DomainError {
	return NewError(CodeUnsupportedFileType, MsgUnsupportedFileType, fmt.Errorf("file %q", filename))
}

func NewMissingInputError() *DomainError {
	return NewError(CodeMissingInput, MsgMissingInput, nil)
}

// NewGenerationError builds the single server-side failure every step of content
// generation collapses into. The message carries the underlying cause for the client.
func NewGenerationError(code ErrorCode, err error) *DomainError {
	return NewError(code, fmt.Sprintf("%s Error: %v", MsgGenerationFailed, err), err)
}

func NewStoreWriteError(message string, err error) *DomainError {
	return NewError(CodeStoreWriteFailure, message, err)
}

func NewStoreReadError(message string, err error) *DomainError {
	return NewError(CodeStoreReadFailure, message, err)
}

// HasCode reports whether err is a DomainError carrying code.
func HasCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == code
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects field errors for one request.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	msg := v[0].Error()
	for _, e := range v[1:] {
		msg += "; " + e.Error()
	}
	return msg
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "field required"}
}

func NewInvalidFormatError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message}
}
