package middleware

import "errors"

var (
	ErrQueryTooLong = errors.New("query exceeds maximum length")
	ErrInternal     = errors.New("internal server error")
)
