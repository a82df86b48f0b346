package adapter

import "errors"

var (
	ErrBadRequest            = errors.New("bad request")
	ErrNotFound              = errors.New("not found")
	ErrRequestEntityTooLarge = errors.New("request entity too large")
	ErrUnprocessableEntity   = errors.New("unprocessable entity")
	ErrInternalServerError   = errors.New("internal server error")
	ErrUnexpectedStatus      = errors.New("unexpected status")
)
