package imgstore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omarelmalki/image-database-manager/pkg/imgstore"
)

func Test_ParseResolution_Accepts_Known_Tokens(t *testing.T) {
	t.Parallel()

	cases := map[string]imgstore.Resolution{
		"orig":      imgstore.Orig,
		"original":  imgstore.Orig,
		"thumb":     imgstore.Thumb,
		"thumbnail": imgstore.Thumb,
		"small":     imgstore.Small,
	}

	for token, want := range cases {
		got, err := imgstore.ParseResolution(token)
		require.NoErrorf(t, err, "token %q", token)
		require.Equalf(t, want, got, "token %q", token)
	}
}

func Test_ParseResolution_Rejects_Unknown_Token(t *testing.T) {
	t.Parallel()

	_, err := imgstore.ParseResolution("huge")
	require.ErrorIs(t, err, imgstore.ErrResolutions)
}

func Test_VariantFilename_Matches_Convention(t *testing.T) {
	t.Parallel()

	name, err := imgstore.VariantFilename("cat", imgstore.Thumb)
	require.NoError(t, err)
	require.Equal(t, "cat_thumb.jpg", name)

	name, err = imgstore.VariantFilename("cat", imgstore.Small)
	require.NoError(t, err)
	require.Equal(t, "cat_small.jpg", name)

	name, err = imgstore.VariantFilename("cat", imgstore.Orig)
	require.NoError(t, err)
	require.Equal(t, "cat_orig.jpg", name)
}

func Test_VariantFilename_Rejects_Invalid_Id(t *testing.T) {
	t.Parallel()

	_, err := imgstore.VariantFilename("", imgstore.Orig)
	require.ErrorIs(t, err, imgstore.ErrInvalidImgID)
}
