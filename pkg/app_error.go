package pkg

import "fmt"

// AppError is an error carrying the HTTP status and the public code/message
// returned to API clients.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

// HTTPError is the JSON error body.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// ToHTTPError drops the wrapped cause; internals never reach the client.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}
