package render

import (
	"errors"
	"image"
	"image/color"
	"sync"
	"testing"

	"github.com/wojaklabs/wojak-studio/engine/compose"
)

// fakeLoader serves solid-color bitmaps and counts loads per path
type fakeLoader struct {
	mu     sync.Mutex
	loads  map[string]int
	broken map[string]bool
	fill   color.RGBA
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{
		loads:  make(map[string]int),
		broken: make(map[string]bool),
		fill:   color.RGBA{255, 0, 0, 255},
	}
}

func (l *fakeLoader) Load(path string) (image.Image, error) {
	l.mu.Lock()
	l.loads[path]++
	broken := l.broken[path]
	l.mu.Unlock()
	if broken {
		return nil, errors.New("corrupt bitmap")
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, l.fill)
		}
	}
	return img, nil
}

func (l *fakeLoader) count(path string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loads[path]
}

func TestFitRect(t *testing.T) {
	tests := []struct {
		name     string
		dst, src image.Rectangle
		want     image.Rectangle
	}{
		{"same aspect", image.Rect(0, 0, 100, 100), image.Rect(0, 0, 50, 50), image.Rect(0, 0, 100, 100)},
		{"wide letterboxed", image.Rect(0, 0, 100, 100), image.Rect(0, 0, 200, 100), image.Rect(0, 25, 100, 75)},
		{"tall pillarboxed", image.Rect(0, 0, 100, 100), image.Rect(0, 0, 100, 200), image.Rect(25, 0, 75, 100)},
		{"offset dst", image.Rect(10, 10, 110, 110), image.Rect(0, 0, 50, 50), image.Rect(10, 10, 110, 110)},
		{"empty src", image.Rect(0, 0, 100, 100), image.Rectangle{}, image.Rectangle{}},
	}
	for _, tt := range tests {
		if got := FitRect(tt.dst, tt.src); got != tt.want {
			t.Errorf("%s: FitRect = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCacheMemoizesSuccessAndFailure(t *testing.T) {
	loader := newFakeLoader()
	loader.broken["bad.png"] = true
	cache := NewCache(loader)

	a, err := cache.Load("ok.png")
	if err != nil {
		t.Fatal(err)
	}
	b, err := cache.Load("ok.png")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("second load returned a different image")
	}
	if n := loader.count("ok.png"); n != 1 {
		t.Errorf("ok.png decoded %d times, want 1", n)
	}

	for i := 0; i < 3; i++ {
		if _, err := cache.Load("bad.png"); err == nil {
			t.Fatal("broken bitmap loaded without error")
		}
	}
	if n := loader.count("bad.png"); n != 1 {
		t.Errorf("bad.png attempted %d times, want failure memoized after 1", n)
	}
}

func TestRenderSkipsFailedLoads(t *testing.T) {
	loader := newFakeLoader()
	loader.broken["mask.png"] = true
	painter := NewPainter(loader)

	dst := image.NewRGBA(image.Rect(0, 0, 16, 16))
	entries := []compose.PaintEntry{
		{Slot: compose.SlotBackground, Path: "bg.png", Z: 0},
		{Slot: compose.SlotMask, Path: "mask.png", Z: 1},
		{Slot: compose.SlotHead, Path: "head.png", Z: 2},
	}

	warnings := painter.Render(dst, entries)
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(warnings), warnings)
	}
	if warnings[0].Slot != compose.SlotMask || warnings[0].Path != "mask.png" {
		t.Errorf("warning = %+v, want the broken mask", warnings[0])
	}

	// The surviving entries still painted over the whole surface.
	if got := dst.RGBAAt(8, 8); got.A == 0 {
		t.Error("surface untouched after a partial failure")
	}
}

func TestRenderEmptyList(t *testing.T) {
	painter := NewPainter(newFakeLoader())
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	if warnings := painter.Render(dst, nil); len(warnings) != 0 {
		t.Errorf("warnings on empty list: %v", warnings)
	}
}

func TestSchedulerDeliversNewestFrame(t *testing.T) {
	loader := newFakeLoader()
	painter := NewPainter(loader)

	results := make(chan Result, 8)
	s := NewScheduler(painter, 8, 8, func(r Result) { results <- r })
	defer s.Close()

	s.Submit(Frame{Gen: 1, Entries: []compose.PaintEntry{{Slot: compose.SlotBase, Path: "base.png"}}})
	r := <-results
	if r.Gen != 1 {
		t.Fatalf("gen = %d, want 1", r.Gen)
	}
	if r.Image == nil || r.Image.Bounds().Dx() != 8 {
		t.Fatalf("bad result image: %v", r.Image)
	}

	// A burst coalesces: the last generation always arrives, and no
	// result ever goes backwards.
	for gen := uint64(2); gen <= 20; gen++ {
		s.Submit(Frame{Gen: gen, Entries: nil})
	}
	last := r.Gen
	for {
		r = <-results
		if r.Gen < last {
			t.Fatalf("generation went backwards: %d after %d", r.Gen, last)
		}
		last = r.Gen
		if r.Gen == 20 {
			break
		}
	}
}
