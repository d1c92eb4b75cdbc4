package imgstore

// Read returns the JPEG bytes of imgID at the given resolution, resizing
// and caching the variant on first request (spec.md §4.6). Grounded on
// original_source/imgst_read.c.
func (s *Store) Read(imgID string, res Resolution) ([]byte, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	if !res.valid() {
		return nil, ErrResolutions
	}
	if err := validateImgID(imgID); err != nil {
		return nil, err
	}

	idx, ok := s.findByID(imgID)
	if !ok {
		return nil, ErrNotFound
	}

	if err := s.materialize(idx, res); err != nil {
		return nil, err
	}

	sl := &s.slots[idx]
	return s.sf.readPayload(int64(sl.offset[res]), sl.size[res])
}

// Metadata returns the caller-facing record for imgID.
func (s *Store) Metadata(imgID string) (Metadata, error) {
	if err := s.checkOpen(); err != nil {
		return Metadata{}, err
	}
	idx, ok := s.findByID(imgID)
	if !ok {
		return Metadata{}, ErrNotFound
	}
	sl := &s.slots[idx]
	return Metadata{
		ImgID:      sl.id(),
		SHA256:     sl.sha,
		OrigWidth:  sl.origW,
		OrigHeight: sl.origH,
		Size:       sl.size,
		Materialized: [nbRes]bool{
			Thumb: sl.offset[Thumb] != 0,
			Small: sl.offset[Small] != 0,
			Orig:  sl.offset[Orig] != 0,
		},
	}, nil
}
