package imgstore

import "fmt"

// ParseResolution maps a resolution token to its Resolution constant,
// mirroring resolution_atoi (original_source/tools.c): "orig"/"original",
// "thumb"/"thumbnail", "small".
func ParseResolution(token string) (Resolution, error) {
	switch token {
	case "orig", "original":
		return Orig, nil
	case "thumb", "thumbnail":
		return Thumb, nil
	case "small":
		return Small, nil
	default:
		return 0, fmt.Errorf("%w: unknown resolution %q", ErrResolutions, token)
	}
}

// variantSuffix is appended before the ".jpg" extension, mirroring
// create_name's THUMB_STR/SMALL_STR/ORIG_STR constants.
func variantSuffix(res Resolution) (string, error) {
	switch res {
	case Thumb:
		return "_thumb", nil
	case Small:
		return "_small", nil
	case Orig:
		return "_orig", nil
	default:
		return "", ErrResolutions
	}
}

// VariantFilename builds the on-disk filename a front-end should use when
// writing a variant out as a standalone JPEG file, mirroring create_name
// (original_source/tools.c): "<img_id><suffix>.jpg".
func VariantFilename(imgID string, res Resolution) (string, error) {
	if err := validateImgID(imgID); err != nil {
		return "", err
	}
	suffix, err := variantSuffix(res)
	if err != nil {
		return "", err
	}
	return imgID + suffix + ".jpg", nil
}
