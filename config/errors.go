package config

import "errors"

var (
	// ErrUnknownFormat is returned for files that are neither TOML nor YAML.
	ErrUnknownFormat = errors.New("config: unknown settings format")

	// ErrDecode wraps syntax errors and unknown keys.
	ErrDecode = errors.New("config: decode failed")

	// ErrInvalid is returned for well-formed settings with bad values.
	ErrInvalid = errors.New("config: invalid settings")
)
