package imgstore

import "fmt"

// Resolution identifies one of the three variants a store keeps per image.
type Resolution int

const (
	// Thumb is the small bounding-box variant, materialized lazily.
	Thumb Resolution = iota
	// Small is the medium bounding-box variant, materialized lazily.
	Small
	// Orig is the resolution the image was inserted at.
	Orig

	// nbRes is the number of variants tracked per slot.
	nbRes = 3
)

// String renders r the way the CLI and ParseResolution expect to round-trip
// it (spec.md §9(d)).
func (r Resolution) String() string {
	switch r {
	case Thumb:
		return "thumb"
	case Small:
		return "small"
	case Orig:
		return "orig"
	default:
		return fmt.Sprintf("imgstore.Resolution(%d)", int(r))
	}
}

// valid reports whether r is one of Thumb, Small, Orig.
func (r Resolution) valid() bool {
	return r >= Thumb && r <= Orig
}

// Options configures the creation of a new store (spec.md §4.3, §9(a)).
//
// Width/height bounds describe a bounding box: the resize cache fits an
// image within it, preserving aspect ratio, without ever upscaling past
// the box's limits on either axis.
type Options struct {
	// MaxFiles is the fixed slot capacity of the store, in [1, 100000].
	MaxFiles uint32

	// ThumbWidth and ThumbHeight bound the thumbnail variant, each in
	// [1, 128].
	ThumbWidth, ThumbHeight uint16

	// SmallWidth and SmallHeight bound the small variant, each in
	// [1, 512].
	SmallWidth, SmallHeight uint16
}

// DefaultOptions returns a set of valid creation Options. Create itself
// never substitutes them: it always takes explicit values and rejects
// zero fields. This helper exists only for CLI defaulting.
func DefaultOptions() Options {
	return Options{
		MaxFiles:    10,
		ThumbWidth:  64,
		ThumbHeight: 64,
		SmallWidth:  256,
		SmallHeight: 256,
	}
}

// Metadata is the caller-facing view of one valid image's slot record
// (spec.md §4.9).
type Metadata struct {
	ImgID           string
	SHA256          [32]byte
	OrigWidth       uint32
	OrigHeight      uint32
	Size            [nbRes]uint32
	Materialized    [nbRes]bool
}

// Stats summarizes a store's header fields (spec.md §4.9, §6.1).
type Stats struct {
	Version  uint32
	NumValid uint32
	MaxFiles uint32
	ThumbWidth, ThumbHeight uint16
	SmallWidth, SmallHeight uint16
}

// OpenMode selects whether Open permits mutation (spec.md §9(a): the
// original's "rb"/"rb+" distinction is rendered as an explicit typed enum
// rather than a string predicate).
type OpenMode int

const (
	// ReadWrite permits every operation, including Insert, Delete, and
	// Compact.
	ReadWrite OpenMode = iota
	// ReadOnly permits the non-mutating calls (Read, Metadata, List,
	// ImageIDs, Stats); Insert, Delete, and Compact fail with
	// ErrInvalidArgument. Read of a Thumb or Small variant that is not yet
	// materialized has to append it to the file, so on a ReadOnly store it
	// fails with ErrIO.
	ReadOnly
)

// ListMode selects the rendering of List (spec.md §4.9).
type ListMode int

const (
	// ListHuman renders a readable, multi-line summary of the store.
	ListHuman ListMode = iota
	// ListStructured returns image ids in allocation order as a JSON
	// document of the form {"Images": [...]}.
	ListStructured
)
