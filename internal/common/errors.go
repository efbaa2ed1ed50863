// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
)

// Common application errors.
var (
	// Input errors.
	ErrMissingNameColumn = errors.New("input is missing required column \"name\"")
	ErrEmptyInput        = errors.New("input contains no records")

	// LLM adapter errors.
	ErrNotInitialized = errors.New("adapter not initialized")

	// Configuration errors.
	ErrMissingAPIKey = errors.New("missing API key")
)
