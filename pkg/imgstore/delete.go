package imgstore

// Delete logically removes imgID: its slot is marked empty but the bytes
// it owns in the payload heap are not reclaimed until Compact runs
// (spec.md §4.7, P5). Grounded on original_source/imgst_delete.c.
func (s *Store) Delete(imgID string) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	if err := validateImgID(imgID); err != nil {
		return err
	}

	idx, ok := s.findByID(imgID)
	if !ok {
		return ErrNotFound
	}

	s.slots[idx].isValid = slotEmpty
	if err := s.flushSlot(idx); err != nil {
		return err
	}

	s.hdr.numValid--
	s.bumpVersion()
	return s.flushHeader()
}
