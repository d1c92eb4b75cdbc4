package imgstore_test

import (
	"encoding/json"
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omarelmalki/image-database-manager/internal/codec"
	"github.com/omarelmalki/image-database-manager/internal/hashsum"
	"github.com/omarelmalki/image-database-manager/pkg/imgstore"
)

func Test_Create_Rejects_Invalid_MaxFiles(t *testing.T) {
	t.Parallel()

	path := t.TempDir() + "/x.imgst"
	opts := defaultTestOptions()
	opts.MaxFiles = 0

	_, err := imgstore.Create(path, opts, codec.JPEG{}, hashsum.SHA256{})
	require.ErrorIs(t, err, imgstore.ErrMaxFiles)
}

func Test_Create_Rejects_OutOfRange_Resolutions(t *testing.T) {
	t.Parallel()

	path := t.TempDir() + "/x.imgst"
	opts := defaultTestOptions()
	opts.ThumbWidth = 129

	_, err := imgstore.Create(path, opts, codec.JPEG{}, hashsum.SHA256{})
	require.ErrorIs(t, err, imgstore.ErrResolutions)
}

func Test_Insert_Then_Read_Orig_RoundTrips(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, defaultTestOptions())
	data := genJPEG(t, 40, 20, color.RGBA{R: 200, A: 255})

	require.NoError(t, store.Insert(data, "cat.jpg"))

	got, err := store.Read("cat.jpg", imgstore.Orig)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func Test_Read_Unknown_Id_Returns_NotFound(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, defaultTestOptions())

	_, err := store.Read("missing.jpg", imgstore.Orig)
	require.ErrorIs(t, err, imgstore.ErrNotFound)
}

func Test_Insert_Duplicate_Id_Is_Rejected(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, defaultTestOptions())
	data := genJPEG(t, 10, 10, color.RGBA{G: 1, A: 255})

	require.NoError(t, store.Insert(data, "a.jpg"))
	err := store.Insert(genJPEG(t, 5, 5, color.RGBA{B: 9, A: 255}), "a.jpg")
	require.ErrorIs(t, err, imgstore.ErrDuplicateID)
}

func Test_Insert_Beyond_Capacity_Returns_FullImgStore(t *testing.T) {
	t.Parallel()

	opts := defaultTestOptions()
	opts.MaxFiles = 1
	store, _ := newStore(t, opts)

	require.NoError(t, store.Insert(genJPEG(t, 4, 4, color.RGBA{A: 255}), "one.jpg"))
	err := store.Insert(genJPEG(t, 4, 4, color.RGBA{A: 255}), "two.jpg")
	require.ErrorIs(t, err, imgstore.ErrFullImgStore)
}

func Test_Insert_Identical_Content_Shares_Storage(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, defaultTestOptions())
	data := genJPEG(t, 30, 30, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	require.NoError(t, store.Insert(data, "first.jpg"))
	require.NoError(t, store.Insert(data, "second.jpg"))

	first, err := store.Metadata("first.jpg")
	require.NoError(t, err)
	second, err := store.Metadata("second.jpg")
	require.NoError(t, err)

	require.Equal(t, first.SHA256, second.SHA256)

	gotFirst, err := store.Read("first.jpg", imgstore.Orig)
	require.NoError(t, err)
	gotSecond, err := store.Read("second.jpg", imgstore.Orig)
	require.NoError(t, err)
	require.Equal(t, gotFirst, gotSecond)
}

func Test_Read_Thumb_Is_Lazily_Materialized_And_Cached(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, defaultTestOptions())
	require.NoError(t, store.Insert(genJPEG(t, 200, 100, color.RGBA{R: 255, A: 255}), "big.jpg"))

	before, err := store.Metadata("big.jpg")
	require.NoError(t, err)
	require.False(t, before.Materialized[imgstore.Thumb])

	thumb1, err := store.Read("big.jpg", imgstore.Thumb)
	require.NoError(t, err)
	require.NotEmpty(t, thumb1)

	after, err := store.Metadata("big.jpg")
	require.NoError(t, err)
	require.True(t, after.Materialized[imgstore.Thumb])

	thumb2, err := store.Read("big.jpg", imgstore.Thumb)
	require.NoError(t, err)
	require.Equal(t, thumb1, thumb2)
}

func Test_Delete_Then_Read_Returns_NotFound(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, defaultTestOptions())
	require.NoError(t, store.Insert(genJPEG(t, 8, 8, color.RGBA{A: 255}), "gone.jpg"))
	require.NoError(t, store.Delete("gone.jpg"))

	_, err := store.Read("gone.jpg", imgstore.Orig)
	require.ErrorIs(t, err, imgstore.ErrNotFound)
}

func Test_Delete_Frees_A_Slot_For_Reuse(t *testing.T) {
	t.Parallel()

	opts := defaultTestOptions()
	opts.MaxFiles = 1
	store, _ := newStore(t, opts)

	require.NoError(t, store.Insert(genJPEG(t, 4, 4, color.RGBA{A: 255}), "one.jpg"))
	require.NoError(t, store.Delete("one.jpg"))
	require.NoError(t, store.Insert(genJPEG(t, 4, 4, color.RGBA{A: 255}), "two.jpg"))
}

func Test_Operations_On_Closed_Store_Return_ErrClosed(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, defaultTestOptions())
	require.NoError(t, store.Close())

	_, err := store.Read("anything", imgstore.Orig)
	require.ErrorIs(t, err, imgstore.ErrClosed)
}

func Test_Version_Is_Monotonic_Across_Mutations(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, defaultTestOptions())

	s0, err := store.Stats()
	require.NoError(t, err)

	require.NoError(t, store.Insert(genJPEG(t, 4, 4, color.RGBA{A: 255}), "a.jpg"))
	s1, err := store.Stats()
	require.NoError(t, err)
	require.Greater(t, s1.Version, s0.Version)

	require.NoError(t, store.Delete("a.jpg"))
	s2, err := store.Stats()
	require.NoError(t, err)
	require.Greater(t, s2.Version, s1.Version)
}

func Test_ReadOnly_Store_Rejects_Mutation(t *testing.T) {
	t.Parallel()

	_, path := newStore(t, defaultTestOptions())

	ro, err := imgstore.Open(path, imgstore.ReadOnly, codec.JPEG{}, hashsum.SHA256{})
	require.NoError(t, err)
	defer ro.Close()

	err = ro.Insert(genJPEG(t, 4, 4, color.RGBA{A: 255}), "nope.jpg")
	require.ErrorIs(t, err, imgstore.ErrInvalidArgument)
}

func Test_Compact_Preserves_Live_Images_And_Reclaims_Deleted_Ones(t *testing.T) {
	t.Parallel()

	opts := defaultTestOptions()
	opts.MaxFiles = 3
	store, path := newStore(t, opts)

	require.NoError(t, store.Insert(genJPEG(t, 10, 10, color.RGBA{R: 1, A: 255}), "keep.jpg"))
	require.NoError(t, store.Insert(genJPEG(t, 10, 10, color.RGBA{G: 1, A: 255}), "drop.jpg"))
	_, err := store.Read("keep.jpg", imgstore.Thumb)
	require.NoError(t, err)
	require.NoError(t, store.Delete("drop.jpg"))

	require.NoError(t, store.Compact())

	keep, err := store.Read("keep.jpg", imgstore.Orig)
	require.NoError(t, err)
	require.NotEmpty(t, keep)

	_, err = store.Read("drop.jpg", imgstore.Orig)
	require.ErrorIs(t, err, imgstore.ErrNotFound)

	stats, err := store.Stats()
	require.NoError(t, err)
	require.Equal(t, uint32(1), stats.NumValid)

	require.NoError(t, store.Insert(genJPEG(t, 4, 4, color.RGBA{A: 255}), "new1.jpg"))
	require.NoError(t, store.Insert(genJPEG(t, 4, 4, color.RGBA{A: 255}), "new2.jpg"))

	_ = path
}

func Test_List_Human_Mode_Reports_Store_Contents(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, defaultTestOptions())
	require.NoError(t, store.Insert(genJPEG(t, 4, 4, color.RGBA{A: 255}), "a.jpg"))

	out, err := store.List(imgstore.ListHuman)
	require.NoError(t, err)
	require.Contains(t, out, "a.jpg")
	require.Contains(t, out, "IMGSTORE HEADER")
}

func Test_List_Structured_Mode_Returns_Ids_In_Allocation_Order(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, defaultTestOptions())
	require.NoError(t, store.Insert(genJPEG(t, 4, 4, color.RGBA{A: 255}), "first.jpg"))
	require.NoError(t, store.Insert(genJPEG(t, 4, 4, color.RGBA{R: 9, A: 255}), "second.jpg"))

	out, err := store.List(imgstore.ListStructured)
	require.NoError(t, err)
	require.JSONEq(t, `{"Images":["first.jpg","second.jpg"]}`, out)
}

func Test_ImageIDs_Matches_List_Structured(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, defaultTestOptions())
	require.NoError(t, store.Insert(genJPEG(t, 4, 4, color.RGBA{A: 255}), "only.jpg"))

	ids, err := store.ImageIDs()
	require.NoError(t, err)
	require.Equal(t, []string{"only.jpg"}, ids)

	out, err := store.List(imgstore.ListStructured)
	require.NoError(t, err)
	wantJSON, err := json.Marshal(map[string][]string{"Images": ids})
	require.NoError(t, err)
	require.JSONEq(t, string(wantJSON), out)
}

func Test_Reopen_Preserves_State(t *testing.T) {
	t.Parallel()

	store, path := newStore(t, defaultTestOptions())
	require.NoError(t, store.Insert(genJPEG(t, 4, 4, color.RGBA{A: 255}), "persist.jpg"))
	require.NoError(t, store.Close())

	reopened, err := imgstore.Open(path, imgstore.ReadWrite, codec.JPEG{}, hashsum.SHA256{})
	require.NoError(t, err)
	defer reopened.Close()

	data, err := reopened.Read("persist.jpg", imgstore.Orig)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}

func Test_Create_Fails_If_File_Already_Exists(t *testing.T) {
	t.Parallel()

	_, path := newStore(t, defaultTestOptions())

	_, err := imgstore.Create(path, defaultTestOptions(), codec.JPEG{}, hashsum.SHA256{})
	require.Error(t, err)
	require.True(t, errors.Is(err, imgstore.ErrIO) || errors.Is(err, imgstore.ErrInvalidArgument))
}
