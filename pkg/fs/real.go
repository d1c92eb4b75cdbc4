package fs

import "os"

// Real implements [FS] against the real filesystem. It is the only [FS]
// implementation in this module.
type Real struct{}

// NewReal returns a new [Real] filesystem.
func NewReal() *Real {
	return &Real{}
}

// OpenFile wraps [os.OpenFile]. The store engine uses this for every
// store-file open (create, read-write, read-only — see
// pkg/imgstore/open_flags.go); the CLI shell uses it for its history
// file.
func (r *Real) OpenFile(path string, flag int, perm os.FileMode) (File, error) {
	return os.OpenFile(path, flag, perm)
}

// ReadFile wraps [os.ReadFile]. Used for whole-file loads that never
// touch the store format directly: a JPEG to insert, a HuJSON config
// file.
func (r *Real) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile wraps [os.WriteFile]. Used for whole-file writes outside the
// store format: writing a read-out variant to disk.
func (r *Real) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// Remove wraps [os.Remove]. Used to clear a stale compaction scratch file
// before it is recreated, and as the non-atomic fallback path in
// pkg/imgstore/compact.go's atomicReplace.
func (r *Real) Remove(path string) error {
	return os.Remove(path)
}

// Compile-time interface check.
var _ FS = (*Real)(nil)
