package models

import "errors"

// Domain errors. Controllers map these onto HTTP status codes; anything
// else coming out of the service layer is treated as a store failure.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProductNotFound    = errors.New("product not found")
	ErrMissingFields      = errors.New("all fields are required")
	ErrInvalidPrice       = errors.New("price must be a non-negative number")
	ErrUnsupportedImage   = errors.New("only image files are allowed")
	ErrImageTooLarge      = errors.New("image exceeds the size limit")
)
