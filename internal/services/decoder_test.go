package services

import (
	"bytes"
	"encoding/base64"
	"image"
	"strings"
	"testing"

	"bildpdf/internal/common"
)

func TestDimensions(t *testing.T) {
	d := NewImageDecoder()

	width, height, err := d.Dimensions(makePNG(t, 320, 200))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if width != 320 || height != 200 {
		t.Errorf("Expected 320x200, got %dx%d", width, height)
	}
}

func TestDimensions_CorruptPayload(t *testing.T) {
	d := NewImageDecoder()

	_, _, err := d.Dimensions([]byte("definitely not an image"))
	if err == nil {
		t.Error("Expected error for corrupt payload")
	}
}

func TestSubtype(t *testing.T) {
	d := NewImageDecoder()

	tests := []struct {
		name     string
		data     []byte
		expected string
	}{
		{name: "png", data: makePNG(t, 10, 10), expected: "png"},
		{name: "jpeg", data: makeJPEG(t, 10, 10), expected: "jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtype, err := d.Subtype(tt.data)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if subtype != tt.expected {
				t.Errorf("Expected subtype %q, got %q", tt.expected, subtype)
			}
		})
	}
}

func TestThumbnail(t *testing.T) {
	d := NewImageDecoder()

	thumb, err := d.Thumbnail(makeJPEG(t, 800, 600))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(thumb, prefix) {
		t.Fatalf("Expected a PNG data URL, got %q", thumb[:40])
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(thumb, prefix))
	if err != nil {
		t.Fatalf("Thumbnail payload is not valid base64: %v", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Thumbnail payload is not a decodable image: %v", err)
	}

	if cfg.Width > common.ThumbnailMaxEdge || cfg.Height > common.ThumbnailMaxEdge {
		t.Errorf("Expected thumbnail within %dpx, got %dx%d", common.ThumbnailMaxEdge, cfg.Width, cfg.Height)
	}

	// aspect ratio survives the downscale
	if cfg.Width != common.ThumbnailMaxEdge || cfg.Height != 120 {
		t.Errorf("Expected 160x120 thumbnail for a 800x600 source, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestThumbnail_SmallImageKeptAsIs(t *testing.T) {
	d := NewImageDecoder()

	thumb, err := d.Thumbnail(makePNG(t, 40, 30))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(strings.TrimPrefix(thumb, "data:image/png;base64,"))
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Thumbnail payload is not a decodable image: %v", err)
	}
	if cfg.Width != 40 || cfg.Height != 30 {
		t.Errorf("Expected small image kept at 40x30, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestThumbnail_CorruptPayload(t *testing.T) {
	d := NewImageDecoder()

	_, err := d.Thumbnail([]byte{0x00, 0x01})
	if err == nil {
		t.Error("Expected error for corrupt payload")
	}
}
