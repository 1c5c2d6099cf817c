package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidAlgorithm     = errors.New("invalid algorithm")
	ErrInvalidSecretSource  = errors.New("invalid secret source type")
	ErrEmptySecretData      = errors.New("secret source data is required")
	ErrSecretSourceMismatch = errors.New("secret source does not fit the algorithm")
	ErrEmptyOperator        = errors.New("operator is required")
	ErrEmptyConfigName      = errors.New("config name is required")
	ErrConfigNameTooLong    = errors.New("config name is too long")
	ErrInvalidConfigName    = errors.New("config name contains invalid characters")
)
