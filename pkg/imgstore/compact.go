package imgstore

import (
	"fmt"

	atomicfile "github.com/natefinch/atomic"

	"github.com/omarelmalki/image-database-manager/pkg/fs"
)

// Compact rewrites the store into a fresh file with the same capacity and
// variant bounds, copying forward only valid slots and reclaiming the
// space deleted slots and their payloads held (spec.md §4.8, P6). Variant
// resolutions present in the source are re-derived from the codec rather
// than copied byte-for-byte, so compaction preserves decoded content but
// not necessarily the encoded bytes of cached variants. Grounded on
// original_source/imgst_gbcollect.c.
func (s *Store) Compact() error {
	if err := s.checkWritable(); err != nil {
		return err
	}

	scratch := s.path + ".compact.tmp"
	opts := Options{
		MaxFiles:    s.hdr.maxFiles,
		ThumbWidth:  s.hdr.resThumbW,
		ThumbHeight: s.hdr.resThumbH,
		SmallWidth:  s.hdr.resSmallW,
		SmallHeight: s.hdr.resSmallH,
	}
	s.fsys.Remove(scratch)

	dst, err := create(s.fsys, scratch, opts, s.codec, s.hash)
	if err != nil {
		return fmt.Errorf("compact: creating scratch store: %w", err)
	}

	seen := uint32(0)
	for i := range s.slots {
		if seen >= s.hdr.numValid {
			break
		}
		if s.slots[i].isValid != slotValid {
			continue
		}
		seen++

		sl := &s.slots[i]
		orig, err := s.sf.readPayload(int64(sl.offset[Orig]), sl.size[Orig])
		if err != nil {
			dst.Close()
			return err
		}

		id := sl.id()
		if err := dst.Insert(orig, id); err != nil {
			dst.Close()
			return fmt.Errorf("compact: reinserting %q: %w", id, err)
		}

		newIdx, ok := dst.findByID(id)
		if !ok {
			dst.Close()
			return fmt.Errorf("compact: %q vanished from scratch store", id)
		}

		for res := Thumb; res < Orig; res++ {
			if !anySlotWithContentHasVariant(s.slots, sl.sha, res) {
				continue
			}
			if err := dst.materialize(newIdx, res); err != nil {
				dst.Close()
				return fmt.Errorf("compact: re-materializing %q: %w", id, err)
			}
		}
	}

	if err := dst.Close(); err != nil {
		return err
	}
	if err := s.sf.f.Close(); err != nil {
		return fmt.Errorf("%w: close %q: %v", ErrIO, s.path, err)
	}
	s.closed = true

	if err := atomicReplace(s.fsys, scratch, s.path); err != nil {
		return fmt.Errorf("%w: compact: swap: %v", ErrIO, err)
	}

	reopened, err := open(s.fsys, s.path, s.mode, s.codec, s.hash)
	if err != nil {
		return err
	}
	*s = *reopened
	return nil
}

// anySlotWithContentHasVariant reports whether any slot in the source store
// sharing sha's content ever had variant res materialized, including slots
// already deleted. Because dedup makes offset[ORIG] content-addressed, a
// variant resized from that shared content is equally valid for every slot
// carrying the same sha; compact re-derives it for the surviving id even
// when the slot that originally triggered the resize is the one being
// dropped (spec.md §8 scenario 6).
func anySlotWithContentHasVariant(slots []slot, sha [32]byte, res Resolution) bool {
	for i := range slots {
		if slots[i].sha == sha && slots[i].offset[res] != 0 {
			return true
		}
	}
	return false
}

// atomicReplace durably replaces dst's content with src's. On an
// os-backed *fs.Real it uses natefinch/atomic's ReplaceFile
// (fsync-before-rename); on any other fs.FS it falls back to a
// non-atomic read, write, and remove through that FS.
func atomicReplace(fsys fs.FS, src, dst string) error {
	if _, ok := fsys.(*fs.Real); ok {
		return atomicfile.ReplaceFile(src, dst)
	}
	data, err := fsys.ReadFile(src)
	if err != nil {
		return err
	}
	if err := fsys.WriteFile(dst, data, 0o644); err != nil {
		return err
	}
	return fsys.Remove(src)
}
