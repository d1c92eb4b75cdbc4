package imgstore

import (
	"fmt"
	"io"

	"github.com/omarelmalki/image-database-manager/pkg/fs"
)

// file wraps an open store handle and the positioned reads/writes every
// mutator needs. A store is single-threaded (spec.md §5): callers never
// interleave calls, so plain Seek-then-Read/Write is safe without an
// internal lock.
type file struct {
	f fs.File
}

func (sf *file) readAt(buf []byte, off int64) error {
	if _, err := sf.f.Seek(off, io.SeekStart); err != nil {
		return fmt.Errorf("%w: seek: %v", ErrIO, err)
	}
	if _, err := io.ReadFull(sf.f, buf); err != nil {
		return fmt.Errorf("%w: read: %v", ErrIO, err)
	}
	return nil
}

func (sf *file) writeAt(buf []byte, off int64) error {
	if _, err := sf.f.Seek(off, io.SeekStart); err != nil {
		return fmt.Errorf("%w: seek: %v", ErrIO, err)
	}
	n, err := sf.f.Write(buf)
	if err != nil {
		return fmt.Errorf("%w: write: %v", ErrIO, err)
	}
	if n != len(buf) {
		return fmt.Errorf("%w: short write (%d of %d bytes)", ErrIO, n, len(buf))
	}
	return nil
}

// readHeader reads and decodes the header record at the start of the file.
func (sf *file) readHeader() (header, error) {
	buf := make([]byte, headerSize)
	if err := sf.readAt(buf, 0); err != nil {
		return header{}, err
	}
	return decodeHeader(buf), nil
}

// writeHeader encodes and writes h at the start of the file.
func (sf *file) writeHeader(h *header) error {
	return sf.writeAt(encodeHeader(h), 0)
}

// readSlot reads and decodes the metadata record at index idx.
func (sf *file) readSlot(idx int) (slot, error) {
	buf := make([]byte, slotSize)
	if err := sf.readAt(buf, slotOffsetInFile(idx)); err != nil {
		return slot{}, err
	}
	return decodeSlot(buf), nil
}

// writeSlot encodes and writes s at index idx.
func (sf *file) writeSlot(idx int, s *slot) error {
	return sf.writeAt(encodeSlot(s), slotOffsetInFile(idx))
}

// payloadBase is the absolute byte offset where the payload heap begins:
// immediately after the header and the full (fixed-size) slot array.
func payloadBase(maxFiles uint32) int64 {
	return int64(headerSize) + int64(maxFiles)*int64(slotSize)
}

// appendPayload writes data at offset at, the current end of the payload
// heap. The caller tracks that offset (see store.heapEnd).
func (sf *file) appendPayload(data []byte, at int64) error {
	return sf.writeAt(data, at)
}

// readPayload reads n bytes starting at off.
func (sf *file) readPayload(off int64, n uint32) ([]byte, error) {
	buf := make([]byte, n)
	if err := sf.readAt(buf, off); err != nil {
		return nil, err
	}
	return buf, nil
}
