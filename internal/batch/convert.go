package batch

import (
	"context"

	"bildpdf/internal/common"
)

// Composer assembles placed images into pages of a single output document.
// A composer is stateful per conversion run and has no contract for
// concurrent use.
type Composer interface {
	Start(pageW, pageH float64)
	AddPage()
	PlaceImage(data []byte, subtype string, p Placement) error
	Finish() ([]byte, error)
}

// Decoder reports the pixel dimensions of a raw image payload.
type Decoder interface {
	Dimensions(data []byte) (width, height int, err error)
}

// PageSetup fixes the output page for one conversion run.
type PageSetup struct {
	WidthMm  float64
	HeightMm float64
	MarginMm float64
}

// DefaultPageSetup returns an A4 portrait page with the standard margin.
func DefaultPageSetup() PageSetup {
	return PageSetup{
		WidthMm:  common.DefaultPageWidthMm,
		HeightMm: common.DefaultPageHeightMm,
		MarginMm: common.DefaultMarginMm,
	}
}

// Convert assembles the batch into a single document, one image per page, in
// batch order. The loop is strictly sequential: the composer is stateful and
// item i+1 is not decoded until item i's placement has been issued.
//
// The run is all-or-nothing. An empty batch returns ErrEmptyBatch before any
// composer call; a single decode failure aborts with a DecodeError naming
// the offending item and no partial document is produced.
func (b *Batch) Convert(ctx context.Context, dec Decoder, comp Composer, page PageSetup) ([]byte, error) {
	if len(b.items) == 0 {
		return nil, common.ErrEmptyBatch
	}

	comp.Start(page.WidthMm, page.HeightMm)

	for i := range b.items {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		item := &b.items[i]
		if item.width == 0 || item.height == 0 {
			w, h, err := dec.Dimensions(item.Data)
			if err != nil {
				return nil, common.NewDecodeError(i, item.Name, err)
			}
			item.width, item.height = w, h
		}

		placement, err := ComputePlacement(page.WidthMm, page.HeightMm, page.MarginMm, item.width, item.height)
		if err != nil {
			return nil, common.NewConversionError("placement", err)
		}

		if i > 0 {
			comp.AddPage()
		}

		if err := comp.PlaceImage(item.Data, item.Subtype, placement); err != nil {
			return nil, common.NewConversionError("compose", err)
		}
	}

	data, err := comp.Finish()
	if err != nil {
		return nil, common.NewConversionError("finalize", err)
	}

	return data, nil
}
