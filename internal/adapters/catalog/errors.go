package catalog

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrNotFound    = errors.New("event not found")
	ErrLoadCatalog = errors.New("load catalog failed")
)
