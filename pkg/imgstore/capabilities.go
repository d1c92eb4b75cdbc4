package imgstore

// ImageCodec and Hasher are the external collaborators the engine depends
// on but does not implement itself (spec.md §1): decoding/resizing/encoding
// JPEG bytes, and computing a content digest. Default implementations live
// in internal/codec and internal/hashsum; callers may substitute their own.

// ImageCodec decodes, probes, and resizes JPEG-encoded images.
type ImageCodec interface {
	// Dimensions returns the pixel width and height of a JPEG image.
	// It returns an error on malformed input; the engine wraps any such
	// error in ErrImgLib.
	Dimensions(jpeg []byte) (width, height uint32, err error)

	// Resize decodes a JPEG image, scales it to fit within a
	// maxWidth x maxHeight bounding box while preserving aspect ratio,
	// and returns the result re-encoded as JPEG. The scale factor is not
	// capped at 1: a box larger than the original upscales it (as the
	// default internal/codec implementation does).
	Resize(jpeg []byte, maxWidth, maxHeight uint32) ([]byte, error)
}

// Hasher computes a content digest used for deduplication.
type Hasher interface {
	// Sum256 returns the SHA-256 digest of data.
	Sum256(data []byte) [32]byte
}
