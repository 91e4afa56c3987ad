// Package util provides the shared logging and error types for the
// uisp-zabbix-sync commands.
package util

import (
	"errors"
)

// Sentinel errors for precondition failures
var (
	ErrFileNotFound  = errors.New("file not found")
	ErrMissingColumn = errors.New("required column missing")
	ErrInvalidURL    = errors.New("invalid URL")
)
