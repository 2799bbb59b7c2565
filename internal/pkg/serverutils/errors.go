package serverutils

import "errors"

var (
	ErrNotFound   = errors.New("the requested resource was not found")
	ErrBadRequest = errors.New("the request could not be processed due to invalid input")
)
