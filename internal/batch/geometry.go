package batch

import "fmt"

// Placement is the computed rectangle (position + size, page units) for one
// image on one page.
type Placement struct {
	X float64
	Y float64
	W float64
	H float64
}

// ComputePlacement fits an imgW x imgH pixel image inside the content area of
// a pageW x pageH page with the given margin on all sides. The result
// preserves the image's aspect ratio, fills the content area edge-to-edge on
// the binding axis, and is centered on both axes independently.
//
// All inputs must be positive and the margin must leave a non-empty content
// area; anything else is a caller contract violation and returns an error.
func ComputePlacement(pageW, pageH, margin float64, imgW, imgH int) (Placement, error) {
	if imgW <= 0 || imgH <= 0 {
		return Placement{}, fmt.Errorf("degenerate image dimensions %dx%d", imgW, imgH)
	}

	contentW := pageW - 2*margin
	contentH := pageH - 2*margin
	if contentW <= 0 || contentH <= 0 {
		return Placement{}, fmt.Errorf("page %gx%g with margin %g leaves no content area", pageW, pageH, margin)
	}

	scale := contentW / float64(imgW)
	if s := contentH / float64(imgH); s < scale {
		scale = s
	}

	w := float64(imgW) * scale
	h := float64(imgH) * scale

	return Placement{
		X: (pageW - w) / 2,
		Y: (pageH - h) / 2,
		W: w,
		H: h,
	}, nil
}
