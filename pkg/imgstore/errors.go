package imgstore

import "errors"

// Sentinel errors returned by imgstore operations.
//
// Callers should classify errors with [errors.Is]:
//
//	if errors.Is(err, imgstore.ErrNotFound) {
//	    // ...
//	}
var (
	// ErrIO indicates a file open, seek, read, write, rename, or remove
	// failed, or that a read/write was short.
	ErrIO = errors.New("imgstore: i/o error")

	// ErrOutOfMemory indicates a buffer or metadata array allocation
	// failed.
	ErrOutOfMemory = errors.New("imgstore: out of memory")

	// ErrInvalidFilename indicates a store path was empty.
	ErrInvalidFilename = errors.New("imgstore: invalid filename")

	// ErrInvalidArgument indicates a nil/empty value where one was
	// required, an out-of-range numeric argument, or an unknown option.
	ErrInvalidArgument = errors.New("imgstore: invalid argument")

	// ErrMaxFiles indicates max_files was out of range (0 or >100,000)
	// at create time.
	ErrMaxFiles = errors.New("imgstore: invalid max files")

	// ErrResolutions indicates res_thumb/res_small were out of range at
	// create time, or an unknown resolution token/out-of-range variant
	// index was supplied.
	ErrResolutions = errors.New("imgstore: invalid resolution")

	// ErrInvalidImgID indicates an img_id was empty or exceeded 127
	// bytes.
	ErrInvalidImgID = errors.New("imgstore: invalid image id")

	// ErrFullImgStore indicates an insert was attempted with
	// num_valid == max_files.
	ErrFullImgStore = errors.New("imgstore: store is full")

	// ErrNotFound indicates find_by_id exhausted the valid set without
	// a match.
	ErrNotFound = errors.New("imgstore: image not found")

	// ErrDuplicateID indicates an insert was attempted with an id
	// already present among valid slots.
	ErrDuplicateID = errors.New("imgstore: duplicate image id")

	// ErrImgLib indicates a codec operation (load, resize, encode,
	// probe) failed.
	ErrImgLib = errors.New("imgstore: image codec error")

	// ErrClosed indicates an operation was attempted on a closed store.
	ErrClosed = errors.New("imgstore: store is closed")
)
