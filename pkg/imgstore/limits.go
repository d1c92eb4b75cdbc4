package imgstore

// Hardcoded format limits, taken from the original on-disk format
// (spec.md §3, §6.1). These are not tunable: the on-disk layout and the
// wire size of every field are derived from them.
const (
	// maxStoreName is the maximum length, in bytes, of the magic name
	// stored in the header (excluding the NUL terminator).
	maxStoreName = 31

	// maxImgIDLen is the maximum length, in bytes, of an image id
	// (excluding the NUL terminator).
	maxImgIDLen = 127

	// maxMaxFiles is the maximum allowed slot capacity of a store.
	maxMaxFiles = 100_000

	// maxThumbRes is the maximum width/height, in pixels, allowed for the
	// thumbnail variant's bounding box.
	maxThumbRes = 128

	// maxSmallRes is the maximum width/height, in pixels, allowed for the
	// small variant's bounding box.
	maxSmallRes = 512

	// storeMagic is the literal magic string written into every store
	// created by this package (spec.md §6.1).
	storeMagic = "EPFL ImgStore binary"
)
