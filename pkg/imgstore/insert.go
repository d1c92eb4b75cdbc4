package imgstore

import "fmt"

// Insert adds a JPEG image under imgID. If the store already holds
// bit-identical content under a different id, the new slot shares that
// content's storage instead of appending a second copy (spec.md §4.5,
// P2). Grounded step-for-step on original_source/imgst_insert.c.
func (s *Store) Insert(data []byte, imgID string) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: empty image data", ErrInvalidArgument)
	}
	if err := validateImgID(imgID); err != nil {
		return err
	}
	if s.hdr.numValid >= s.hdr.maxFiles {
		return ErrFullImgStore
	}

	idx := s.findEmpty()
	if idx < 0 {
		return ErrFullImgStore
	}

	sl := &s.slots[idx]
	*sl = slot{}
	sl.sha = s.hash.Sum256(data)
	sl.setID(imgID)
	sl.size[Orig] = uint32(len(data))

	if err := s.dedup(idx); err != nil {
		return err
	}

	if sl.offset[Orig] == 0 {
		off := s.heapEnd
		if err := s.sf.appendPayload(data, off); err != nil {
			return err
		}
		s.heapEnd += int64(len(data))

		sl.offset[Orig] = uint64(off)
		sl.offset[Thumb] = 0
		sl.size[Thumb] = 0
		sl.offset[Small] = 0
		sl.size[Small] = 0
	}

	w, h, err := s.codec.Dimensions(data)
	if err != nil {
		return fmt.Errorf("%w: dimensions: %v", ErrImgLib, err)
	}
	sl.origW, sl.origH = w, h

	s.hdr.numValid++
	s.bumpVersion()
	if err := s.flushHeader(); err != nil {
		return err
	}

	sl.isValid = slotValid
	return s.flushSlot(idx)
}
