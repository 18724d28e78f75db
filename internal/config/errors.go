package config

import "errors"

// Validation errors returned by StructuredConfig.validate when a required
// setting is missing from every configuration source.
var (
	// ErrNoDatabaseDSN is returned when no database connection string was
	// provided via env, flags, or the JSON file.
	ErrNoDatabaseDSN = errors.New("no database DSN provided")

	// ErrNoTokenSignKey is returned when no admin session token signing key
	// was provided.
	ErrNoTokenSignKey = errors.New("no token sign key provided")

	// ErrInvalidNetAddress is returned when a -a flag value is not in
	// "host:port" form.
	ErrInvalidNetAddress = errors.New("need address in a form host:port")
)
