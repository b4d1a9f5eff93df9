package services

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"bildpdf/internal/batch"

	"github.com/jung-kurt/gofpdf"
)

// Composer assembles placed images into a paginated PDF. One composer
// serves exactly one conversion run; it is not safe for concurrent use.
type Composer struct {
	pdf   *gofpdf.Fpdf
	count int
}

// NewComposer creates a composer for a single conversion run.
func NewComposer() *Composer {
	return &Composer{}
}

// Start opens a new document with the given page size in millimeters and
// adds the first page.
func (c *Composer) Start(pageW, pageH float64) {
	c.pdf = gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	c.pdf.SetAutoPageBreak(false, 0)
	c.pdf.AddPage()
}

// AddPage starts a new page.
func (c *Composer) AddPage() {
	c.pdf.AddPage()
}

// PlaceImage draws the payload at the given rectangle on the current page.
// JPEG, PNG and GIF payloads are embedded directly; any other decodable
// format is transcoded to PNG first.
func (c *Composer) PlaceImage(data []byte, subtype string, p batch.Placement) error {
	imageType, payload, err := normalizeImage(data, subtype)
	if err != nil {
		return err
	}

	c.count++
	name := fmt.Sprintf("img-%d", c.count)
	opts := gofpdf.ImageOptions{ImageType: imageType, ReadDpi: false}

	c.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(payload))
	if err := c.pdf.Error(); err != nil {
		return err
	}

	c.pdf.ImageOptions(name, p.X, p.Y, p.W, p.H, false, opts, 0, "")
	return c.pdf.Error()
}

// Finish serializes the document and returns its bytes.
func (c *Composer) Finish() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// normalizeImage maps a media subtype to the embedder's image type,
// transcoding formats the embedder does not support.
func normalizeImage(data []byte, subtype string) (string, []byte, error) {
	switch subtype {
	case "jpeg", "jpg":
		return "JPG", data, nil
	case "png":
		return "PNG", data, nil
	case "gif":
		return "GIF", data, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", nil, fmt.Errorf("cannot transcode %q image: %w", subtype, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", nil, err
	}
	return "PNG", buf.Bytes(), nil
}
