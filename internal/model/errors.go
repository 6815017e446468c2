package model

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned by stores when a unique constraint rejects a write.
	ErrAlreadyExists = errors.New("already exists")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("invalid user creation")
	// ErrCorruptCredential means a stored password hash could not be decoded.
	ErrCorruptCredential = errors.New("corrupt credential")
	ErrForbidden         = errors.New("forbidden resource")
)
