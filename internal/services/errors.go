package services

import "errors"

var (
	ErrMissingParameters  = errors.New("missing parameters")
	ErrDuplicateEmail     = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateLike      = errors.New("item already liked")

	// ErrUpstream оборачивает любой сбой обращения к API каталога.
	ErrUpstream = errors.New("upstream failure")
)
