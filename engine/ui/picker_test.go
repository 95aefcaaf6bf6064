package ui

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/wojaklabs/wojak-studio/engine/random"
	"github.com/wojaklabs/wojak-studio/engine/studio"
	"github.com/wojaklabs/wojak-studio/engine/trait"
)

func newPicker() *Picker {
	eng := studio.New(trait.Default(), random.DefaultWeights(), rand.New(rand.NewSource(1)))
	return NewPicker(eng, 1200, 900)
}

func TestCycleLayerWraps(t *testing.T) {
	p := newPicker()
	start := p.ActiveLayer()

	for range pickerLayers {
		p.CycleLayer(1)
	}
	if p.ActiveLayer() != start {
		t.Errorf("full forward cycle landed on %s, want %s", p.ActiveLayer(), start)
	}

	p.CycleLayer(-1)
	if p.ActiveLayer() != pickerLayers[len(pickerLayers)-1] {
		t.Errorf("backward from first = %s, want last tab", p.ActiveLayer())
	}
}

func TestContains(t *testing.T) {
	p := newPicker()
	if p.Contains(0, 100) {
		t.Error("canvas area reported as sidebar")
	}
	if !p.Contains(p.ScreenW-1, 100) {
		t.Error("sidebar edge not contained")
	}
	if !p.Contains(p.left(), 0) {
		t.Error("sidebar left border not contained")
	}
}

func TestScrollClampsAtTop(t *testing.T) {
	p := newPicker()
	p.Scroll(5) // wheel up at the top
	if p.scroll != 0 {
		t.Errorf("scroll = %d, want clamped to 0", p.scroll)
	}
	p.Scroll(-3)
	if p.scroll <= 0 {
		t.Errorf("scroll = %d, want advanced", p.scroll)
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#FF0000", color.RGBA{255, 0, 0, 255}},
		{"#39FF14", color.RGBA{57, 255, 20, 255}},
		{"#1a1a1a", color.RGBA{26, 26, 26, 255}},
		{"FF0000", color.RGBA{128, 128, 128, 255}},  // missing hash
		{"#GGGGGG", color.RGBA{128, 128, 128, 255}}, // not hex
		{"", color.RGBA{128, 128, 128, 255}},
	}
	for _, tt := range tests {
		if got := hexColor(tt.in); got != tt.want {
			t.Errorf("hexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTabLabelsFit(t *testing.T) {
	for _, layer := range pickerLayers {
		if tabLabel(layer) == "" {
			t.Errorf("layer %s has an empty tab label", layer)
		}
		if tabWidth(layer) > 280-12 {
			t.Errorf("tab %s wider than the sidebar", layer)
		}
	}
}
