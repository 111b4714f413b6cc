package config

import "errors"

// Load failures fall in two buckets: the sources could not be read at
// all, or they produced values that fail validation. Callers match on
// these with errors.Is.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)
