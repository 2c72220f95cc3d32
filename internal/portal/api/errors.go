package api

import "errors"

var (
	ErrUnavailable        = errors.New("gateway unavailable")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
