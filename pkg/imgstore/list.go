package imgstore

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// List renders the store's contents in the given mode (spec.md §4.9).
// Human mode mirrors print_header/print_metadata's field order and labels
// verbatim (original_source/tools.c); structured mode returns the same
// `{"Images": [...]}` JSON document do_list's JSON mode produced
// (original_source/imgst_list.c), in allocation order.
func (s *Store) List(mode ListMode) (string, error) {
	if err := s.checkOpen(); err != nil {
		return "", err
	}

	switch mode {
	case ListHuman:
		return s.listHuman(), nil
	case ListStructured:
		return s.listStructured()
	default:
		return "", fmt.Errorf("%w: unknown list mode %d", ErrInvalidArgument, mode)
	}
}

func (s *Store) listHuman() string {
	var b strings.Builder

	fmt.Fprintln(&b, "*****************************************")
	fmt.Fprintln(&b, "**********IMGSTORE HEADER START**********")
	fmt.Fprintf(&b, "TYPE: %s\n", storeMagic)
	fmt.Fprintf(&b, "VERSION: %d\n", s.hdr.version)
	fmt.Fprintf(&b, "IMAGE COUNT: %d\t\tMAX IMAGES: %d\n", s.hdr.numValid, s.hdr.maxFiles)
	fmt.Fprintf(&b, "THUMBNAIL: %d x %d\tSMALL: %d x %d\n", s.hdr.resThumbW, s.hdr.resThumbH, s.hdr.resSmallW, s.hdr.resSmallH)
	fmt.Fprintln(&b, "***********IMGSTORE HEADER END***********")
	fmt.Fprintln(&b, "*****************************************")

	if s.hdr.numValid == 0 {
		fmt.Fprintln(&b, "<< empty imgStore >>")
		return b.String()
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
		writeSlotSummary(&b, &s.slots[i])
	}

	return b.String()
}

func writeSlotSummary(b *strings.Builder, sl *slot) {
	fmt.Fprintf(b, "IMAGE ID: %s\n", sl.id())
	fmt.Fprintf(b, "SHA: %s\n", hex.EncodeToString(sl.sha[:]))
	fmt.Fprintf(b, "VALID: %d\n", sl.isValid)
	fmt.Fprintf(b, "OFFSET ORIG. : %d\t\tSIZE ORIG. : %d\n", sl.offset[Orig], sl.size[Orig])
	fmt.Fprintf(b, "OFFSET THUMB.: %d\t\tSIZE THUMB.: %d\n", sl.offset[Thumb], sl.size[Thumb])
	fmt.Fprintf(b, "OFFSET SMALL : %d\t\tSIZE SMALL : %d\n", sl.offset[Small], sl.size[Small])
	fmt.Fprintf(b, "ORIGINAL: %d x %d\n", sl.origW, sl.origH)
	fmt.Fprintln(b, "*****************************************")
}

func (s *Store) listStructured() (string, error) {
	ids, err := s.ImageIDs()
	if err != nil {
		return "", err
	}
	doc, err := json.Marshal(struct {
		Images []string `json:"Images"`
	}{Images: ids})
	if err != nil {
		return "", fmt.Errorf("%w: marshal: %v", ErrIO, err)
	}
	return string(doc), nil
}

// ImageIDs returns every valid image id in allocation order.
func (s *Store) ImageIDs() ([]string, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	ids := make([]string, 0, s.hdr.numValid)
	seen := uint32(0)
	for i := range s.slots {
		if seen >= s.hdr.numValid {
			break
		}
		if s.slots[i].isValid != slotValid {
			continue
		}
		seen++
		ids = append(ids, s.slots[i].id())
	}
	return ids, nil
}
