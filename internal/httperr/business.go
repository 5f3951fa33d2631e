package httperr

import (
	"errors"
	"net/http"
)

type BusinessError struct {
	Code    string
	Message string
	Status  int
}

func (e BusinessError) Error() string {
	return e.Code
}

func (e BusinessError) HTTPStatus() int {
	if e.Status == 0 {
		return http.StatusBadRequest
	}
	return e.Status
}

func ErrBusiness(code, message string) error {
	return BusinessError{Code: code, Message: message, Status: http.StatusBadRequest}
}

func ErrNotFound(code, message string) error {
	return BusinessError{Code: code, Message: message, Status: http.StatusNotFound}
}

func ErrForbidden(code, message string) error {
	return BusinessError{Code: code, Message: message, Status: http.StatusForbidden}
}

func ErrUnavailable(code, message string) error {
	return BusinessError{Code: code, Message: message, Status: http.StatusServiceUnavailable}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
