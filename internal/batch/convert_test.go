package batch

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"bildpdf/internal/common"
)

// fakeDecoder maps payload contents to fixed dimensions, failing for names
// listed in failOn.
type fakeDecoder struct {
	failOn map[string]bool
	calls  int
}

func (d *fakeDecoder) Dimensions(data []byte) (int, int, error) {
	d.calls++
	if d.failOn[string(data)] {
		return 0, 0, errors.New("unsupported payload")
	}
	return 800, 600, nil
}

// recordingComposer records the sequence of calls it receives.
type recordingComposer struct {
	calls      []string
	placements []Placement
	placeErr   error
	finishErr  error
}

func (c *recordingComposer) Start(pageW, pageH float64) {
	c.calls = append(c.calls, fmt.Sprintf("start %gx%g", pageW, pageH))
}

func (c *recordingComposer) AddPage() {
	c.calls = append(c.calls, "addPage")
}

func (c *recordingComposer) PlaceImage(data []byte, subtype string, p Placement) error {
	if c.placeErr != nil {
		return c.placeErr
	}
	c.calls = append(c.calls, "placeImage "+string(data))
	c.placements = append(c.placements, p)
	return nil
}

func (c *recordingComposer) Finish() ([]byte, error) {
	if c.finishErr != nil {
		return nil, c.finishErr
	}
	c.calls = append(c.calls, "finish")
	return []byte("%PDF"), nil
}

func countCalls(calls []string, prefix string) int {
	n := 0
	for _, call := range calls {
		if len(call) >= len(prefix) && call[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func testBatch(names ...string) *Batch {
	b := New()
	var items []PendingImage
	for _, name := range names {
		items = append(items, PendingImage{
			ID:      name,
			Name:    name,
			Subtype: "jpeg",
			Data:    []byte(name),
		})
	}
	b.Add(items)
	return b
}

func TestConvert_EmptyBatch(t *testing.T) {
	b := New()
	comp := &recordingComposer{}
	dec := &fakeDecoder{}

	_, err := b.Convert(context.Background(), dec, comp, DefaultPageSetup())
	if !errors.Is(err, common.ErrEmptyBatch) {
		t.Fatalf("Expected ErrEmptyBatch, got %v", err)
	}

	if len(comp.calls) != 0 {
		t.Errorf("Expected zero composer calls for empty batch, got %v", comp.calls)
	}
	if dec.calls != 0 {
		t.Errorf("Expected zero decode calls for empty batch, got %d", dec.calls)
	}
}

func TestConvert_ThreeItems(t *testing.T) {
	b := testBatch("a.jpg", "b.jpg", "c.jpg")
	comp := &recordingComposer{}
	dec := &fakeDecoder{}

	data, err := b.Convert(context.Background(), dec, comp, DefaultPageSetup())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(data) == 0 {
		t.Error("Expected document bytes, got none")
	}

	expected := []string{
		"start 210x297",
		"placeImage a.jpg",
		"addPage",
		"placeImage b.jpg",
		"addPage",
		"placeImage c.jpg",
		"finish",
	}
	if len(comp.calls) != len(expected) {
		t.Fatalf("Expected %d composer calls, got %d: %v", len(expected), len(comp.calls), comp.calls)
	}
	for i, call := range expected {
		if comp.calls[i] != call {
			t.Errorf("Expected call %d to be %q, got %q", i, call, comp.calls[i])
		}
	}
}

func TestConvert_CallCounts(t *testing.T) {
	b := testBatch("a.jpg", "b.jpg", "c.jpg")
	comp := &recordingComposer{}

	_, err := b.Convert(context.Background(), &fakeDecoder{}, comp, DefaultPageSetup())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if n := countCalls(comp.calls, "start"); n != 1 {
		t.Errorf("Expected 1 start call, got %d", n)
	}
	if n := countCalls(comp.calls, "addPage"); n != 2 {
		t.Errorf("Expected 2 addPage calls, got %d", n)
	}
	if n := countCalls(comp.calls, "placeImage"); n != 3 {
		t.Errorf("Expected 3 placeImage calls, got %d", n)
	}
	if n := countCalls(comp.calls, "finish"); n != 1 {
		t.Errorf("Expected 1 finish call, got %d", n)
	}
}

func TestConvert_DecodeFailureAborts(t *testing.T) {
	b := testBatch("a.jpg", "broken.jpg", "c.jpg")
	comp := &recordingComposer{}
	dec := &fakeDecoder{failOn: map[string]bool{"broken.jpg": true}}

	data, err := b.Convert(context.Background(), dec, comp, DefaultPageSetup())
	if err == nil {
		t.Fatal("Expected decode failure to abort the conversion")
	}
	if data != nil {
		t.Error("Expected no partial document on decode failure")
	}

	var decodeErr *common.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("Expected DecodeError, got %T: %v", err, err)
	}
	if decodeErr.Index != 1 {
		t.Errorf("Expected offending index 1, got %d", decodeErr.Index)
	}
	if decodeErr.Name != "broken.jpg" {
		t.Errorf("Expected offending name broken.jpg, got %q", decodeErr.Name)
	}

	// Item 1 was placed, item 2 failed before its page was added.
	if n := countCalls(comp.calls, "start"); n != 1 {
		t.Errorf("Expected 1 start call, got %d", n)
	}
	if n := countCalls(comp.calls, "placeImage"); n != 1 {
		t.Errorf("Expected 1 placeImage call, got %d", n)
	}
	if n := countCalls(comp.calls, "addPage"); n > 1 {
		t.Errorf("Expected at most 1 addPage call, got %d", n)
	}
	if n := countCalls(comp.calls, "finish"); n != 0 {
		t.Errorf("Expected no finish call after abort, got %d", n)
	}
}

func TestConvert_ComposeFailurePropagates(t *testing.T) {
	b := testBatch("a.jpg")
	comp := &recordingComposer{placeErr: errors.New("stream write failed")}

	_, err := b.Convert(context.Background(), &fakeDecoder{}, comp, DefaultPageSetup())
	if err == nil {
		t.Fatal("Expected compose failure to propagate")
	}

	var convErr *common.ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("Expected ConversionError, got %T: %v", err, err)
	}
	if convErr.Operation != "compose" {
		t.Errorf("Expected operation compose, got %q", convErr.Operation)
	}
}

func TestConvert_FinishFailurePropagates(t *testing.T) {
	b := testBatch("a.jpg")
	comp := &recordingComposer{finishErr: errors.New("write failed")}

	_, err := b.Convert(context.Background(), &fakeDecoder{}, comp, DefaultPageSetup())
	if err == nil {
		t.Fatal("Expected finish failure to propagate")
	}

	var convErr *common.ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("Expected ConversionError, got %T: %v", err, err)
	}
	if convErr.Operation != "finalize" {
		t.Errorf("Expected operation finalize, got %q", convErr.Operation)
	}
}

func TestConvert_CachesDimensions(t *testing.T) {
	b := testBatch("a.jpg", "b.jpg")
	dec := &fakeDecoder{}

	_, err := b.Convert(context.Background(), dec, &recordingComposer{}, DefaultPageSetup())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if dec.calls != 2 {
		t.Fatalf("Expected 2 decode calls, got %d", dec.calls)
	}

	// Second run reuses cached dimensions.
	_, err = b.Convert(context.Background(), dec, &recordingComposer{}, DefaultPageSetup())
	if err != nil {
		t.Fatalf("Expected no error on second run, got %v", err)
	}
	if dec.calls != 2 {
		t.Errorf("Expected dimensions to be cached, got %d decode calls", dec.calls)
	}
}

func TestConvert_Placements(t *testing.T) {
	b := testBatch("a.jpg")
	comp := &recordingComposer{}

	_, err := b.Convert(context.Background(), &fakeDecoder{}, comp, DefaultPageSetup())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(comp.placements) != 1 {
		t.Fatalf("Expected 1 placement, got %d", len(comp.placements))
	}

	// 800x600 on the default page
	p := comp.placements[0]
	if !almostEqual(p.X, 10) || !almostEqual(p.Y, 77.25) || !almostEqual(p.W, 190) || !almostEqual(p.H, 142.5) {
		t.Errorf("Unexpected placement %+v", p)
	}
}

func TestConvert_CancelledContext(t *testing.T) {
	b := testBatch("a.jpg", "b.jpg")
	comp := &recordingComposer{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Convert(ctx, &fakeDecoder{}, comp, DefaultPageSetup())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if n := countCalls(comp.calls, "finish"); n != 0 {
		t.Error("Expected no finish call after cancellation")
	}
}
