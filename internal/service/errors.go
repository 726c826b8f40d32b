package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrInvalidID        = errors.New("invalid id")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrOrderNotFound    = errors.New("order not found")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
	ErrDatabaseUnavailable   = errors.New("database is unavailable")
)
