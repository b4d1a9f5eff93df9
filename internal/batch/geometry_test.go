package batch

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputePlacement_Landscape(t *testing.T) {
	// 800x600 on A4 with 10mm margin: content 190x277,
	// scale = min(190/800, 277/600) = 0.2375
	p, err := ComputePlacement(210, 297, 10, 800, 600)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !almostEqual(p.W, 190) {
		t.Errorf("Expected width 190, got %g", p.W)
	}
	if !almostEqual(p.H, 142.5) {
		t.Errorf("Expected height 142.5, got %g", p.H)
	}
	if !almostEqual(p.X, 10) {
		t.Errorf("Expected x offset 10, got %g", p.X)
	}
	if !almostEqual(p.Y, 77.25) {
		t.Errorf("Expected y offset 77.25, got %g", p.Y)
	}
}

func TestComputePlacement_Portrait(t *testing.T) {
	// Tall image binds on height: h == contentH, horizontally centered
	p, err := ComputePlacement(210, 297, 10, 600, 1200)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !almostEqual(p.H, 277) {
		t.Errorf("Expected height 277, got %g", p.H)
	}
	if !almostEqual(p.W, 138.5) {
		t.Errorf("Expected width 138.5, got %g", p.W)
	}
	if !almostEqual(p.X, (210-138.5)/2) {
		t.Errorf("Expected centered x offset, got %g", p.X)
	}
	if !almostEqual(p.Y, 10) {
		t.Errorf("Expected y offset 10, got %g", p.Y)
	}
}

func TestComputePlacement_PreservesAspectRatio(t *testing.T) {
	tests := []struct {
		name string
		imgW int
		imgH int
	}{
		{name: "wide", imgW: 1920, imgH: 1080},
		{name: "tall", imgW: 1080, imgH: 1920},
		{name: "square", imgW: 500, imgH: 500},
		{name: "tiny", imgW: 3, imgH: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ComputePlacement(210, 297, 10, tt.imgW, tt.imgH)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			want := float64(tt.imgW) / float64(tt.imgH)
			got := p.W / p.H
			if math.Abs(want-got) > 1e-9 {
				t.Errorf("Aspect ratio not preserved: want %g, got %g", want, got)
			}

			// fully inside the content area
			if p.X < 10-1e-9 || p.Y < 10-1e-9 {
				t.Errorf("Placement (%g, %g) crosses the margin", p.X, p.Y)
			}
			if p.X+p.W > 200+1e-9 || p.Y+p.H > 287+1e-9 {
				t.Errorf("Placement exceeds content area: x+w=%g, y+h=%g", p.X+p.W, p.Y+p.H)
			}

			// edge-to-edge on at least one axis
			if !almostEqual(p.W, 190) && !almostEqual(p.H, 277) {
				t.Errorf("Expected width 190 or height 277, got %gx%g", p.W, p.H)
			}
		})
	}
}

func TestComputePlacement_Idempotent(t *testing.T) {
	p1, err := ComputePlacement(210, 297, 10, 800, 600)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	p2, err := ComputePlacement(210, 297, 10, 800, 600)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if p1 != p2 {
		t.Errorf("Expected identical placements, got %+v and %+v", p1, p2)
	}
}

func TestComputePlacement_DegenerateInputs(t *testing.T) {
	tests := []struct {
		name   string
		pageW  float64
		pageH  float64
		margin float64
		imgW   int
		imgH   int
	}{
		{name: "zero image width", pageW: 210, pageH: 297, margin: 10, imgW: 0, imgH: 600},
		{name: "zero image height", pageW: 210, pageH: 297, margin: 10, imgW: 800, imgH: 0},
		{name: "negative image width", pageW: 210, pageH: 297, margin: 10, imgW: -1, imgH: 600},
		{name: "margin swallows page", pageW: 210, pageH: 297, margin: 105, imgW: 800, imgH: 600},
		{name: "zero page", pageW: 0, pageH: 0, margin: 0, imgW: 800, imgH: 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputePlacement(tt.pageW, tt.pageH, tt.margin, tt.imgW, tt.imgH)
			if err == nil {
				t.Error("Expected error for degenerate input, got nil")
			}
		})
	}
}
