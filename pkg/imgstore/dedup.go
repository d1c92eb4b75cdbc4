package imgstore

import "fmt"

// dedup scans every slot against the freshly-populated slot at index,
// rejecting duplicate ids and adopting payload offsets from the first
// content match it finds. Grounded on
// original_source/dedup.c (do_name_and_content_dedup): the scan covers
// every slot unconditionally (not just the num_valid seen so far), the id
// check fires as soon as a match is found even after a content match has
// already been adopted, and only the first content match wins.
func (s *Store) dedup(index int) error {
	target := &s.slots[index]
	found := false

	for i := range s.slots {
		if i == index || s.slots[i].isValid != slotValid {
			continue
		}
		other := &s.slots[i]

		if other.id() == target.id() {
			return fmt.Errorf("%w: %q", ErrDuplicateID, target.id())
		}
		if !found && other.sha == target.sha {
			target.offset[Orig] = other.offset[Orig]
			target.offset[Thumb] = other.offset[Thumb]
			target.offset[Small] = other.offset[Small]
			target.size[Thumb] = other.size[Thumb]
			target.size[Small] = other.size[Small]
			found = true
		}
	}

	if !found {
		target.offset[Orig] = 0
	}
	return nil
}
