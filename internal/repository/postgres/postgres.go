package postgres

import "github.com/pkg/errors"

// ErrNotFound is the sentinel for queries that matched no live row.
var ErrNotFound = errors.New("row not found")
