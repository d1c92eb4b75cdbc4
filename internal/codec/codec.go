// Package codec provides the default ImageCodec implementation for
// pkg/imgstore, built entirely on the standard library: no imaging or
// resize library appears anywhere in the reference corpus this package
// was developed against, so decoding and resizing are done with
// image/jpeg and a small nearest-neighbor scaler rather than a fabricated
// third-party dependency.
package codec

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
)

// JPEG implements pkg/imgstore.ImageCodec using image/jpeg for decode and
// encode and nearest-neighbor sampling for resize. Its zero value is
// ready to use.
type JPEG struct {
	// Quality is the JPEG encoding quality passed to jpeg.Options.
	// Zero selects jpeg's default (jpeg.DefaultQuality).
	Quality int
}

// Dimensions decodes only the JPEG header to report width and height.
func (c JPEG) Dimensions(data []byte) (width, height uint32, err error) {
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("decode config: %w", err)
	}
	return uint32(cfg.Width), uint32(cfg.Height), nil
}

// Resize decodes data, scales it to fit within maxWidth x maxHeight while
// preserving aspect ratio (original_source/image_content.c's
// shrink_value: the smaller of the two axis ratios wins), and re-encodes
// the result as JPEG. It does not clamp the ratio to 1, matching the
// original: a bounding box larger than the source upscales.
func (c JPEG) Resize(data []byte, maxWidth, maxHeight uint32) ([]byte, error) {
	src, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return nil, fmt.Errorf("source image has zero dimension")
	}

	hShrink := float64(maxWidth) / float64(srcW)
	vShrink := float64(maxHeight) / float64(srcH)
	ratio := hShrink
	if vShrink < ratio {
		ratio = vShrink
	}

	dstW := int(float64(srcW)*ratio + 0.5)
	dstH := int(float64(srcH)*ratio + 0.5)
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	dst := resizeNearest(src, dstW, dstH)

	var buf bytes.Buffer
	opts := &jpeg.Options{Quality: c.Quality}
	if opts.Quality == 0 {
		opts.Quality = jpeg.DefaultQuality
	}
	if err := jpeg.Encode(&buf, dst, opts); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return buf.Bytes(), nil
}

// resizeNearest samples src at dstW x dstH using nearest-neighbor
// lookups.
func resizeNearest(src image.Image, dstW, dstH int) *image.RGBA {
	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	for y := 0; y < dstH; y++ {
		sy := bounds.Min.Y + y*srcH/dstH
		for x := 0; x < dstW; x++ {
			sx := bounds.Min.X + x*srcW/dstW
			dst.Set(x, y, color.RGBAModel.Convert(src.At(sx, sy)))
		}
	}
	return dst
}
