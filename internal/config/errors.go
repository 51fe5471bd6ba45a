package config

import "errors"

var (
	// ErrNotFound is returned when the configuration file does not exist.
	ErrNotFound = errors.New("configuration file not found")
	// ErrUnreadable is returned when the configuration file exists but cannot be opened or read.
	ErrUnreadable = errors.New("configuration file is not readable")
	// ErrParse is returned when the file contents are not a single well-formed YAML document.
	ErrParse = errors.New("configuration file is not well-formed")
)
