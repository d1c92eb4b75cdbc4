package imgstore

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func Test_Header_EncodeDecode_RoundTrips(t *testing.T) {
	t.Parallel()

	h := newHeader(42, 64, 64, 256, 200)
	h.version = 7
	h.numValid = 3

	got := decodeHeader(encodeHeader(&h))

	if diff := cmp.Diff(h, got, cmp.AllowUnexported(header{})); diff != "" {
		t.Fatalf("header round-trip mismatch (-want +got):\n%s", diff)
	}
}

func Test_Header_EncodeHeader_Produces_Fixed_Size_Buffer(t *testing.T) {
	t.Parallel()

	h := newHeader(1, 1, 1, 1, 1)
	require.Len(t, encodeHeader(&h), headerSize)
}

func Test_Slot_EncodeDecode_RoundTrips(t *testing.T) {
	t.Parallel()

	var s slot
	s.setID("cat.jpg")
	s.sha = [32]byte{1, 2, 3, 4}
	s.origW, s.origH = 1920, 1080
	s.size = [3]uint32{111, 222, 333}
	s.offset = [3]uint64{1000, 2000, 3000}
	s.isValid = slotValid

	got := decodeSlot(encodeSlot(&s))

	if diff := cmp.Diff(s, got, cmp.AllowUnexported(slot{})); diff != "" {
		t.Fatalf("slot round-trip mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "cat.jpg", got.id())
}

func Test_Slot_SetID_Truncates_At_Field_Width(t *testing.T) {
	t.Parallel()

	var s slot
	long := make([]byte, maxImgIDLen+50)
	for i := range long {
		long[i] = 'x'
	}
	s.setID(string(long))

	require.LessOrEqual(t, len(s.id()), maxImgIDLen)
}

func Test_SlotOffsetInFile_Is_Contiguous_And_Fixed_Width(t *testing.T) {
	t.Parallel()

	require.Equal(t, int64(headerSize), slotOffsetInFile(0))
	require.Equal(t, int64(headerSize)+int64(slotSize), slotOffsetInFile(1))
	require.Equal(t, int64(headerSize)+5*int64(slotSize), slotOffsetInFile(5))
}
