package imgstore

import "fmt"

// materialize ensures the given variant of slot idx exists on disk,
// resizing and appending it if necessary. It is a no-op for Orig and for
// any variant already present (offset != 0), so repeated calls are
// idempotent (spec.md P4). Grounded on original_source/image_content.c
// (lazily_resize/resize_image/shrink_value).
func (s *Store) materialize(idx int, res Resolution) error {
	if res == Orig {
		return nil
	}
	sl := &s.slots[idx]
	if sl.offset[res] != 0 {
		return nil
	}

	orig, err := s.sf.readPayload(int64(sl.offset[Orig]), sl.size[Orig])
	if err != nil {
		return err
	}

	maxW, maxH := s.boundsFor(res)
	resized, err := s.codec.Resize(orig, uint32(maxW), uint32(maxH))
	if err != nil {
		return fmt.Errorf("%w: resize: %v", ErrImgLib, err)
	}

	off := s.heapEnd
	if err := s.sf.appendPayload(resized, off); err != nil {
		return err
	}
	s.heapEnd += int64(len(resized))

	sl.offset[res] = uint64(off)
	sl.size[res] = uint32(len(resized))

	return s.flushSlot(idx)
}

// boundsFor returns the bounding box configured for a variant.
func (s *Store) boundsFor(res Resolution) (width, height uint16) {
	switch res {
	case Thumb:
		return s.hdr.resThumbW, s.hdr.resThumbH
	case Small:
		return s.hdr.resSmallW, s.hdr.resSmallH
	default:
		return 0, 0
	}
}
