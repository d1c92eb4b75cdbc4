package imgstore_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omarelmalki/image-database-manager/internal/codec"
	"github.com/omarelmalki/image-database-manager/internal/hashsum"
	"github.com/omarelmalki/image-database-manager/pkg/imgstore"
)

// genJPEG renders a solid-color w x h image and encodes it as JPEG, so
// tests never depend on external fixture files.
func genJPEG(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func newStore(t *testing.T, opts imgstore.Options) (*imgstore.Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.imgst")
	store, err := imgstore.Create(path, opts, codec.JPEG{}, hashsum.SHA256{})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store, path
}

func defaultTestOptions() imgstore.Options {
	return imgstore.Options{
		MaxFiles:    4,
		ThumbWidth:  16,
		ThumbHeight: 16,
		SmallWidth:  32,
		SmallHeight: 32,
	}
}
