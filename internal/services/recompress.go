package services

import (
	"bytes"
	"image"
	"image/jpeg"

	"bildpdf/internal/common"
)

// Recompressor re-encodes raster images as JPEG at a target quality.
type Recompressor struct{}

// NewRecompressor creates a new recompressor
func NewRecompressor() *Recompressor {
	return &Recompressor{}
}

// Recompress decodes the payload and re-encodes it as JPEG at the given
// quality. Quality 0 selects the default; anything else is clamped to the
// valid 1-100 range.
func (r *Recompressor) Recompress(data []byte, quality int) ([]byte, error) {
	quality = clampQuality(quality)

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func clampQuality(quality int) int {
	if quality == 0 {
		return common.DefaultJPEGQuality
	}
	if quality < common.MinJPEGQuality {
		return common.MinJPEGQuality
	}
	if quality > common.MaxJPEGQuality {
		return common.MaxJPEGQuality
	}
	return quality
}
