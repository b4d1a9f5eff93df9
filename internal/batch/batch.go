// Package batch owns the ordered collection of images pending inclusion in a
// single output document, and drives the page-by-page conversion over an
// external composition service.
package batch

import (
	"bildpdf/internal/common"
)

// PendingImage represents one user-supplied image awaiting inclusion
// in the output document.
type PendingImage struct {
	ID      string
	Name    string
	Subtype string
	Data    []byte

	// pixel dimensions, decoded lazily during conversion
	width  int
	height int
}

// Batch is the ordered sequence of pending images. Insertion order is
// output page order. The batch is never mutated in place: removal rewrites
// the collection, so callers must not cache indices across mutations.
type Batch struct {
	items []PendingImage
}

// New creates an empty batch.
func New() *Batch {
	return &Batch{}
}

// Add appends all given images to the batch in the order received. The add
// is all-or-nothing: if it would push the batch past MaxBatchSize, nothing
// is added and ErrBatchFull is returned with the batch unchanged.
func (b *Batch) Add(items []PendingImage) (added, total int, err error) {
	if len(b.items)+len(items) > common.MaxBatchSize {
		return 0, len(b.items), common.ErrBatchFull
	}

	b.items = append(b.items, items...)
	return len(items), len(b.items), nil
}

// RemoveAt removes the image at the given position, shifting later images
// down by one. Indices are recomputed after every mutation.
func (b *Batch) RemoveAt(index int) error {
	if index < 0 || index >= len(b.items) {
		return common.ErrInvalidIndex
	}

	b.items = append(b.items[:index], b.items[index+1:]...)
	return nil
}

// Clear empties the batch.
func (b *Batch) Clear() {
	b.items = nil
}

// Len returns the current number of pending images.
func (b *Batch) Len() int {
	return len(b.items)
}

// Items returns a copy of the pending images in batch order.
func (b *Batch) Items() []PendingImage {
	items := make([]PendingImage, len(b.items))
	copy(items, b.items)
	return items
}
