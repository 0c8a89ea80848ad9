package interfaces

import "errors"

// ErrConflict is returned by repositories when a unique constraint rejects a write.
var ErrConflict = errors.New("conflicting record")
