package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// AppError is a structured error carrying a code the HTTP layer maps to a
// status. Upload names the form part or file the error belongs to, if any.
type AppError struct {
	Code    string
	Upload  string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	msg := e.Message
	if e.Upload != "" {
		msg = e.Upload + ": " + msg
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

const (
	CodeDecodeError      = "DECODE_ERROR"
	CodeInputFormatError = "INPUT_FORMAT_ERROR"
	CodeSchemaError      = "SCHEMA_ERROR"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeTooLarge         = "PAYLOAD_TOO_LARGE"
	CodeInternalError    = "INTERNAL_ERROR"
)

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap wraps err with a message, keeping the code of an inner AppError.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := As(err); ok {
		return &AppError{Code: appErr.Code, Message: message, Cause: err}
	}
	return &AppError{Code: CodeInternalError, Message: message, Cause: err}
}

// Decode reports that an upload is not text in a supported encoding.
func Decode(upload string, cause error) *AppError {
	return &AppError{Code: CodeDecodeError, Upload: upload, Message: "upload is not valid UTF-8 text", Cause: cause}
}

// InputFormat reports that an upload could not be read as CSV.
func InputFormat(upload string, cause error) *AppError {
	return &AppError{Code: CodeInputFormatError, Upload: upload, Message: "malformed CSV", Cause: cause}
}

// Schema reports required columns absent from a table header.
func Schema(upload string, missing ...string) *AppError {
	quoted := make([]string, len(missing))
	for i, m := range missing {
		quoted[i] = fmt.Sprintf("%q", m)
	}
	return &AppError{
		Code:    CodeSchemaError,
		Upload:  upload,
		Message: "missing required column(s): " + strings.Join(quoted, ", "),
	}
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

// As returns the outermost AppError in err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetCode returns the error code if err wraps an AppError, otherwise "UNKNOWN".
func GetCode(err error) string {
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}
