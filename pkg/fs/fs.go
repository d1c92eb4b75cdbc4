// Package fs provides a narrow filesystem abstraction so callers can
// substitute a fake in tests without touching the real disk.
//
// The main types are:
//   - [FS]: interface for opening, reading, writing, and removing files
//   - [File]: interface for an open file, positioned by Seek
//   - [Real]: production implementation using the [os] package
//
// The store engine (pkg/imgstore) uses [FS] for the single store file it
// owns (create/open/compact); the CLI (cmd/imgstore) uses it for the
// plain whole-file reads and writes around that engine: loading a JPEG to
// insert, writing a read-out variant, loading a config file, and the
// shell's persisted command history.
package fs

import (
	"io"
	"os"
)

// File represents an open, seekable file handle.
//
// This interface is satisfied by [os.File]. imgstore's own I/O
// (pkg/imgstore/io.go) only ever seeks to an absolute offset and then
// reads or writes a fixed-size buffer, so the interface is kept to
// exactly that: positioned reads and writes plus Close. It deliberately
// does not carry [os.File.Fd], [os.File.Stat], [os.File.Sync], or
// [os.File.Chmod] — nothing in this module needs them, and a narrower
// interface is easier to fake in tests.
type File interface {
	io.ReadWriteCloser
	io.Seeker
}

// FS defines the filesystem operations this module actually performs:
// opening a file with explicit flags for positioned reads/writes, slurping
// or writing a whole file in one call, and removing a file. Paths use OS
// semantics (like the os package and path/filepath), not the
// slash-separated paths used by the standard library io/fs package.
//
// Implementations must be safe for concurrent use by multiple goroutines.
type FS interface {
	// OpenFile opens a file with the given flags and permissions. See
	// [os.OpenFile]. Used for both the store engine's positioned I/O
	// (exclusive create, read-write, read-only) and the CLI's history
	// file (read-only, truncate-or-create).
	OpenFile(path string, flag int, perm os.FileMode) (File, error)

	// ReadFile reads an entire file into memory. See [os.ReadFile].
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating or truncating it. See
	// [os.WriteFile].
	WriteFile(path string, data []byte, perm os.FileMode) error

	// Remove deletes a file. See [os.Remove].
	Remove(path string) error
}

// Compile-time interface check.
var _ File = (*os.File)(nil)
