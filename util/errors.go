package util

import "errors"

// Sentinel errors for package util.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// File and directory errors
	ErrDirectoryNotFound = errors.New("directory does not exist")
	ErrExpectedFile      = errors.New("expected file, got directory")

	// Conversion errors
	ErrNotTabular = errors.New("json data must be an array of objects")
)
