package services

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTableNumberTaken   = errors.New("table number already in use")
	ErrTableMissing       = errors.New("table does not exist")
	ErrCategoryMissing    = errors.New("menu category does not exist")
)
