package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNoCipherPool is returned when no usable cipher pool entry is cached.
	ErrNoCipherPool = errors.New("cipher pool is empty")

	// ErrUnknownPool is returned for a record that references a pool entry
	// this instance has not loaded.
	ErrUnknownPool = errors.New("unknown cipher pool entry")

	// ErrOutdatedCipherPool is returned by encryption when the database holds
	// a newer pool entry than the one this instance can use.
	ErrOutdatedCipherPool = errors.New("cipher pool is outdated")

	ErrInvalidRotationRequest = errors.New("invalid rotation request")
	ErrSelfTestFailed         = errors.New("cipher self-test failed")
	ErrRotationInProgress     = errors.New("rotation is already in progress")
)
