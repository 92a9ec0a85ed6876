package errcode

import "net/http"

// Err is a business error that carries the HTTP status it maps to.
type Err struct {
	Code int
	Msg  string
}

func (e *Err) Error() string {
	return e.Msg
}

func NewErr(code int, msg string) *Err {
	return &Err{Code: code, Msg: msg}
}

// NewCustomErr wraps an arbitrary message as an internal error.
func NewCustomErr(msg string) *Err {
	return NewErr(http.StatusInternalServerError, msg)
}

// NewNotFoundErr marks a referenced entity as absent.
func NewNotFoundErr(msg string) *Err {
	return NewErr(http.StatusNotFound, msg)
}

// NewInvalidParamsErr rejects malformed input before any state change.
func NewInvalidParamsErr(msg string) *Err {
	return NewErr(http.StatusBadRequest, msg)
}

var (
	ErrInvalidParams = NewErr(http.StatusBadRequest, "invalid params")
	ErrNotFound      = NewErr(http.StatusNotFound, "record not found")
	ErrUnexpected    = NewErr(http.StatusInternalServerError, "internal server error")
)
