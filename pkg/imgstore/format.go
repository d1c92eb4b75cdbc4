package imgstore

import "encoding/binary"

// On-disk layout (spec.md §6.1). All integers are little-endian. Record
// sizes are stable across rebuilds: every reserved field is padded to an
// exact width and always written as zero.

// Header field offsets (bytes from file start).
const (
	hdrOffMagic      = 0x00 // [32]byte (31 bytes + NUL)
	hdrOffVersion    = 0x20 // uint32
	hdrOffNumValid   = 0x24 // uint32
	hdrOffMaxFiles   = 0x28 // uint32
	hdrOffResThumbW  = 0x2C // uint16
	hdrOffResThumbH  = 0x2E // uint16
	hdrOffResSmallW  = 0x30 // uint16
	hdrOffResSmallH  = 0x32 // uint16
	hdrOffReserved32 = 0x34 // uint32
	hdrOffReserved64 = 0x38 // uint64

	// headerSize is the fixed on-disk size of the header record.
	headerSize = 0x40 // 64 bytes
)

// Slot field offsets (bytes from the start of the slot record).
const (
	slotOffImgID       = 0x00 // [128]byte (127 bytes + NUL)
	slotOffSHA         = 0x80 // [32]byte
	slotOffOrigW       = 0xA0 // uint32
	slotOffOrigH       = 0xA4 // uint32
	slotOffSizeThumb   = 0xA8 // uint32
	slotOffSizeSmall   = 0xAC // uint32
	slotOffSizeOrig    = 0xB0 // uint32
	slotOffOffsetThumb = 0xB4 // uint64
	slotOffOffsetSmall = 0xBC // uint64
	slotOffOffsetOrig  = 0xC4 // uint64
	slotOffIsValid     = 0xCC // uint16
	slotOffReserved16  = 0xCE // uint16

	// slotSize is the fixed on-disk size of one metadata slot record.
	slotSize = 0xD0 // 208 bytes
)

// is_valid sentinel values (spec.md §3).
const (
	slotEmpty uint16 = 0
	slotValid uint16 = 1
)

// header is the in-memory mirror of the 64-byte header record.
type header struct {
	magic       [maxStoreName + 1]byte
	version     uint32
	numValid    uint32
	maxFiles    uint32
	resThumbW   uint16
	resThumbH   uint16
	resSmallW   uint16
	resSmallH   uint16
	reserved32  uint32
	reserved64  uint64
}

// slot is the in-memory mirror of one 208-byte metadata record.
type slot struct {
	imgID   [maxImgIDLen + 1]byte
	sha     [32]byte
	origW   uint32
	origH   uint32
	size    [3]uint32 // indexed by Resolution
	offset  [3]uint64 // indexed by Resolution
	isValid uint16
}

// id returns the slot's image id as a Go string, trimmed at the first NUL.
func (s *slot) id() string {
	n := 0
	for n < len(s.imgID) && s.imgID[n] != 0 {
		n++
	}
	return string(s.imgID[:n])
}

// setID copies id into the fixed-width img_id field, NUL-padding the rest.
// At most maxImgIDLen bytes are copied, so the field always keeps its
// terminating NUL.
func (s *slot) setID(id string) {
	clear(s.imgID[:])
	copy(s.imgID[:maxImgIDLen], id)
}

// encodeHeader serializes h into a fresh headerSize-byte slice.
func encodeHeader(h *header) []byte {
	buf := make([]byte, headerSize)

	copy(buf[hdrOffMagic:], h.magic[:])
	binary.LittleEndian.PutUint32(buf[hdrOffVersion:], h.version)
	binary.LittleEndian.PutUint32(buf[hdrOffNumValid:], h.numValid)
	binary.LittleEndian.PutUint32(buf[hdrOffMaxFiles:], h.maxFiles)
	binary.LittleEndian.PutUint16(buf[hdrOffResThumbW:], h.resThumbW)
	binary.LittleEndian.PutUint16(buf[hdrOffResThumbH:], h.resThumbH)
	binary.LittleEndian.PutUint16(buf[hdrOffResSmallW:], h.resSmallW)
	binary.LittleEndian.PutUint16(buf[hdrOffResSmallH:], h.resSmallH)
	binary.LittleEndian.PutUint32(buf[hdrOffReserved32:], 0)
	binary.LittleEndian.PutUint64(buf[hdrOffReserved64:], 0)

	return buf
}

// decodeHeader deserializes a headerSize-byte slice into a header.
func decodeHeader(buf []byte) header {
	var h header

	copy(h.magic[:], buf[hdrOffMagic:hdrOffMagic+len(h.magic)])
	h.version = binary.LittleEndian.Uint32(buf[hdrOffVersion:])
	h.numValid = binary.LittleEndian.Uint32(buf[hdrOffNumValid:])
	h.maxFiles = binary.LittleEndian.Uint32(buf[hdrOffMaxFiles:])
	h.resThumbW = binary.LittleEndian.Uint16(buf[hdrOffResThumbW:])
	h.resThumbH = binary.LittleEndian.Uint16(buf[hdrOffResThumbH:])
	h.resSmallW = binary.LittleEndian.Uint16(buf[hdrOffResSmallW:])
	h.resSmallH = binary.LittleEndian.Uint16(buf[hdrOffResSmallH:])
	h.reserved32 = binary.LittleEndian.Uint32(buf[hdrOffReserved32:])
	h.reserved64 = binary.LittleEndian.Uint64(buf[hdrOffReserved64:])

	return h
}

// encodeSlot serializes s into a fresh slotSize-byte slice.
func encodeSlot(s *slot) []byte {
	buf := make([]byte, slotSize)

	copy(buf[slotOffImgID:], s.imgID[:])
	copy(buf[slotOffSHA:], s.sha[:])
	binary.LittleEndian.PutUint32(buf[slotOffOrigW:], s.origW)
	binary.LittleEndian.PutUint32(buf[slotOffOrigH:], s.origH)
	binary.LittleEndian.PutUint32(buf[slotOffSizeThumb:], s.size[Thumb])
	binary.LittleEndian.PutUint32(buf[slotOffSizeSmall:], s.size[Small])
	binary.LittleEndian.PutUint32(buf[slotOffSizeOrig:], s.size[Orig])
	binary.LittleEndian.PutUint64(buf[slotOffOffsetThumb:], s.offset[Thumb])
	binary.LittleEndian.PutUint64(buf[slotOffOffsetSmall:], s.offset[Small])
	binary.LittleEndian.PutUint64(buf[slotOffOffsetOrig:], s.offset[Orig])
	binary.LittleEndian.PutUint16(buf[slotOffIsValid:], s.isValid)
	binary.LittleEndian.PutUint16(buf[slotOffReserved16:], 0)

	return buf
}

// decodeSlot deserializes a slotSize-byte slice into a slot.
func decodeSlot(buf []byte) slot {
	var s slot

	copy(s.imgID[:], buf[slotOffImgID:slotOffImgID+len(s.imgID)])
	copy(s.sha[:], buf[slotOffSHA:slotOffSHA+len(s.sha)])
	s.origW = binary.LittleEndian.Uint32(buf[slotOffOrigW:])
	s.origH = binary.LittleEndian.Uint32(buf[slotOffOrigH:])
	s.size[Thumb] = binary.LittleEndian.Uint32(buf[slotOffSizeThumb:])
	s.size[Small] = binary.LittleEndian.Uint32(buf[slotOffSizeSmall:])
	s.size[Orig] = binary.LittleEndian.Uint32(buf[slotOffSizeOrig:])
	s.offset[Thumb] = binary.LittleEndian.Uint64(buf[slotOffOffsetThumb:])
	s.offset[Small] = binary.LittleEndian.Uint64(buf[slotOffOffsetSmall:])
	s.offset[Orig] = binary.LittleEndian.Uint64(buf[slotOffOffsetOrig:])
	s.isValid = binary.LittleEndian.Uint16(buf[slotOffIsValid:])

	return s
}

// slotOffsetInFile returns the absolute byte offset of slot idx within the
// store file.
func slotOffsetInFile(idx int) int64 {
	return int64(headerSize) + int64(idx)*int64(slotSize)
}

// newHeader builds the header for a freshly created store.
func newHeader(maxFiles uint32, thumbW, thumbH, smallW, smallH uint16) header {
	var h header

	copy(h.magic[:], storeMagic)
	h.version = 0
	h.numValid = 0
	h.maxFiles = maxFiles
	h.resThumbW = thumbW
	h.resThumbH = thumbH
	h.resSmallW = smallW
	h.resSmallH = smallH

	return h
}
