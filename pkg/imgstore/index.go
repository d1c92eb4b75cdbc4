package imgstore

// findByID locates the slot holding img_id among the valid entries and
// returns its index. It stops scanning as soon as every valid slot has
// been seen, mirroring find_img_id's early-exit on num_files
// (original_source/tools.c).
func (s *Store) findByID(imgID string) (int, bool) {
	seen := uint32(0)
	for i := range s.slots {
		if seen >= s.hdr.numValid {
			break
		}
		if s.slots[i].isValid != slotValid {
			continue
		}
		seen++
		if s.slots[i].id() == imgID {
			return i, true
		}
	}
	return -1, false
}

// findEmpty returns the index of the first empty slot, or -1 if the store
// is at capacity (original_source/imgst_insert.c's
// find_empty_and_update_metadata: lowest free index wins).
func (s *Store) findEmpty() int {
	for i := range s.slots {
		if s.slots[i].isValid == slotEmpty {
			return i
		}
	}
	return -1
}

// bumpVersion increments the header's monotonic version counter. Insert
// and Delete call it; materializing a cached variant on Read does not
// (spec.md invariant I7).
func (s *Store) bumpVersion() {
	s.hdr.version++
}

// flushHeader writes the in-memory header to disk.
func (s *Store) flushHeader() error {
	return s.sf.writeHeader(&s.hdr)
}

// flushSlot writes slot idx to disk from memory.
func (s *Store) flushSlot(idx int) error {
	return s.sf.writeSlot(idx, &s.slots[idx])
}
