package repository

import "errors"

// Sentinel kinds for dataset load errors.
var (
	// ErrFileAccess marks a missing or unreadable input file.
	ErrFileAccess = errors.New("dataset file access failed")
	// ErrSchema marks an expected column missing from the header.
	ErrSchema = errors.New("dataset schema mismatch")
	// ErrValueParse marks a non-numeric value in a numeric column.
	ErrValueParse = errors.New("dataset value parse failed")
)
