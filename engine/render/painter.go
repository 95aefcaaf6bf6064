// Package render rasterizes paint lists onto an image surface.
package render

import (
	"fmt"
	"image"
	"image/draw"
	"log"
	"sync"

	xdraw "golang.org/x/image/draw"

	"github.com/wojaklabs/wojak-studio/engine/compose"
)

// Warning reports one non-fatal paint problem (e.g. a bitmap that
// failed to load and was skipped)
type Warning struct {
	Slot compose.Slot
	Path string
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s (%s): %v", w.Slot, w.Path, w.Err)
}

// Painter draws paint lists with aspect-fit scaling
type Painter struct {
	cache *Cache
}

// NewPainter creates a painter over a bitmap loader
func NewPainter(loader Loader) *Painter {
	return &Painter{cache: NewCache(loader)}
}

// Render paints the entries onto dst in ascending z-order. Bitmap
// loads run concurrently up front; painting itself is serial so the
// occlusion order is exact. A failed load is logged and skipped, never
// aborting the remaining entries, and is returned as a warning so the
// UI can show a placeholder.
func (p *Painter) Render(dst draw.Image, entries []compose.PaintEntry) []Warning {
	var wg sync.WaitGroup
	for _, e := range entries {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			// Errors surface during the paint pass below.
			p.cache.Load(path)
		}(e.Path)
	}
	wg.Wait()

	var warnings []Warning
	bounds := dst.Bounds()
	for _, e := range entries {
		img, err := p.cache.Load(e.Path)
		if err != nil {
			log.Printf("render: skipping %s (%s): %v", e.Slot, e.Path, err)
			warnings = append(warnings, Warning{Slot: e.Slot, Path: e.Path, Err: err})
			continue
		}
		fit := FitRect(bounds, img.Bounds())
		xdraw.CatmullRom.Scale(dst, fit, img, img.Bounds(), xdraw.Over, nil)
	}
	return warnings
}

// FitRect computes the aspect-fit placement of src inside dst: the
// image is contained entirely within the surface, centered, aspect
// ratio preserved. Never cropped, never stretched.
func FitRect(dst, src image.Rectangle) image.Rectangle {
	dw, dh := dst.Dx(), dst.Dy()
	sw, sh := src.Dx(), src.Dy()
	if sw == 0 || sh == 0 {
		return image.Rectangle{}
	}

	w, h := dw, sh*dw/sw
	if h > dh {
		w, h = sw*dh/sh, dh
	}
	x := dst.Min.X + (dw-w)/2
	y := dst.Min.Y + (dh-h)/2
	return image.Rect(x, y, x+w, y+h)
}
