package errors

import (
	"errors"
)

func Is(err, target error) bool {
	if err == nil && target == nil {
		return false
	}
	return errors.Is(err, target)
}

func As[T error](err error, target *T) bool {
	if err == nil {
		return false
	}
	return errors.As(err, target)
}

func GetErrorCode(err error) Code {
	var e *Error
	if As(err, &e) {
		return e.Code
	}
	return ""
}

// Detail returns the detail stored under key on the first coded error in err's chain.
func Detail(err error, key string) (interface{}, bool) {
	var e *Error
	if !As(err, &e) {
		return nil, false
	}
	v, ok := e.Details[key]
	return v, ok
}
