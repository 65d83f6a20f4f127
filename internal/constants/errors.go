package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIConfigured   = errors.New("no API endpoint configured, use --api or 'repuestos config set api <url>'")
	ErrUnknownConfigKey  = errors.New("unknown configuration key")
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrInvalidValue      = errors.New("invalid configuration value")
)

// Argument errors.
var (
	ErrInvalidID            = errors.New("invalid id, expected a positive integer")
	ErrNoFieldsToUpdate     = errors.New("no fields to update, pass at least one flag")
	ErrConfirmationRequired = errors.New("refusing to delete without confirmation, use --force")
	ErrDeleteCancelled      = errors.New("delete cancelled")
)

// Command errors.
var (
	ErrDashboardLoad = errors.New("failed to load dashboard data")
)
