package models

import "errors"

var (
	// ErrItemNotFound indicates an id that is not part of the catalog
	ErrItemNotFound = errors.New("item not found")

	// ErrSessionNotFound indicates an unknown or expired session
	ErrSessionNotFound = errors.New("session not found")

	ErrInvalidWidth      = errors.New("width must be between 5 and 100")
	ErrInvalidDirection  = errors.New("direction must be asc or desc")
	ErrInvalidBackground = errors.New("invalid background")
	ErrInvalidCategory   = errors.New("invalid category")

	// ErrEmptyCatalog indicates that no valid item survived loading
	ErrEmptyCatalog = errors.New("catalog is empty")

	ErrExportFailed   = errors.New("export failed")
	ErrExportNotFound = errors.New("export expired or not found")
)
