package appointment

import "errors"

// ErrCatalogNotFound is returned by Catalog lookups for unknown ids.
var ErrCatalogNotFound = errors.New("catalog record not found")
