package db

import "errors"

// Domain-level database error sentinels.
var (
	// Shortcut errors
	ErrShortcutNotFound = errors.New("shortcut not found")
	ErrDuplicateKeyword = errors.New("keyword already exists")

	// Provider status errors
	ErrProviderStatusNotFound = errors.New("provider status not found")
)
