// Package idgen wraps the UUID generator so tests can stub it.  It lives
// under internal because identifiers are opaque strings; callers must not
// rely on their shape.
package idgen

import "github.com/google/uuid"

// NewFunc produces identifiers; tests override it for determinism.
var NewFunc = func() string { return uuid.New().String() }

// New returns a fresh globally unique identifier.
func New() string { return NewFunc() }
