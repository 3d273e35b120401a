package services

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotConfigured = errors.New("integration is not configured")
	ErrNotConnected  = errors.New("no connection for user")
)
