package server

import "errors"

var (
	ErrInvalidProjectionRequest = errors.New("invalid projection request")
	ErrInvalidAmount            = errors.New("invalid amount")
	ErrCoinNotFound             = errors.New("coin not found")
)
