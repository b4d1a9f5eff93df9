package batch

import (
	"context"
	"sync"

	"bildpdf/internal/common"
)

// PreviewDecoder produces a display-ready thumbnail for one image payload.
type PreviewDecoder interface {
	Thumbnail(data []byte) (string, error)
}

// Preview is one row of the pending-image list.
type Preview struct {
	Position  int    `json:"position"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Error     string `json:"error,omitempty"`
}

// RenderPreviews decodes a thumbnail for every pending image. Decodes run
// concurrently with a bounded number of workers, but results land in slots
// keyed by batch position, so out-of-order completion can never attach a
// thumbnail to the wrong row. Returns nil for an empty batch.
func (b *Batch) RenderPreviews(ctx context.Context, dec PreviewDecoder) []Preview {
	if len(b.items) == 0 {
		return nil
	}

	// Snapshot so a later mutation cannot shift positions mid-render.
	items := b.Items()
	slots := make([]Preview, len(items))

	workers := common.PreviewWorkerLimit
	if workers > len(items) {
		workers = len(items)
	}

	positions := make(chan int, len(items))
	for i := range items {
		positions <- i
	}
	close(positions)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range positions {
				slot := Preview{
					Position: i,
					Name:     items[i].Name,
				}

				select {
				case <-ctx.Done():
					slot.Error = ctx.Err().Error()
					slots[i] = slot
					continue
				default:
				}

				thumb, err := dec.Thumbnail(items[i].Data)
				if err != nil {
					slot.Error = err.Error()
				} else {
					slot.Thumbnail = thumb
				}
				slots[i] = slot
			}
		}()
	}
	wg.Wait()

	return slots
}
