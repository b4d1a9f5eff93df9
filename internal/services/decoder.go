package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	// raster formats accepted for batch items and recompression
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	xdraw "golang.org/x/image/draw"

	"bildpdf/internal/common"
)

// ImageDecoder decodes raw payloads into pixel dimensions and
// display-ready thumbnails.
type ImageDecoder struct{}

// NewImageDecoder creates a new image decoder
func NewImageDecoder() *ImageDecoder {
	return &ImageDecoder{}
}

// Dimensions reports the pixel size of the payload without a full decode.
func (d *ImageDecoder) Dimensions(data []byte) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, fmt.Errorf("image reports degenerate dimensions %dx%d", cfg.Width, cfg.Height)
	}
	return cfg.Width, cfg.Height, nil
}

// Subtype sniffs the media subtype of the payload ("jpeg", "png", ...).
func (d *ImageDecoder) Subtype(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	return format, nil
}

// Thumbnail decodes the payload, downscales it to fit the thumbnail box and
// returns it as a PNG data URL.
func (d *ImageDecoder) Thumbnail(data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > common.ThumbnailMaxEdge || h > common.ThumbnailMaxEdge {
		scale := float64(common.ThumbnailMaxEdge) / float64(w)
		if s := float64(common.ThumbnailMaxEdge) / float64(h); s < scale {
			scale = s
		}

		tw := int(float64(w) * scale)
		th := int(float64(h) * scale)
		if tw < 1 {
			tw = 1
		}
		if th < 1 {
			th = 1
		}

		dst := image.NewRGBA(image.Rect(0, 0, tw, th))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
