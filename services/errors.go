package services

import "errors"

// Sentinel errors. Controllers translate these into HTTP status codes; the
// services themselves never see the transport.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrWrongPassword      = errors.New("wrong password")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidPrice       = errors.New("price must be positive")
)
