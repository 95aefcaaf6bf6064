// Command generate_traits renders a placeholder bitmap library for
// every asset in the built-in catalogue. The output paths come from the
// manifest itself, so the studio can run against the generated set
// without any path drift.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/wojaklabs/wojak-studio/engine/trait"
)

const size = 900

// Portrait anchor points every layer draws against
const (
	headCX = size / 2
	headCY = 390
	headRX = 190
	headRY = 230
)

func main() {
	m := trait.Default()
	count := 0
	for _, layer := range trait.Layers {
		for _, a := range m.Assets(layer) {
			img := image.NewRGBA(image.Rect(0, 0, size, size))
			drawTrait(img, layer, stem(a.Path))
			savePNG(filepath.FromSlash(a.Path), img)
			count++
		}
	}
	fmt.Printf("✅ Generated %d trait bitmaps under assets/traits/\n", count)
}

// stem extracts the file name without directory or extension
func stem(assetPath string) string {
	base := assetPath[strings.LastIndex(assetPath, "/")+1:]
	return strings.TrimSuffix(base, ".png")
}

func savePNG(path string, img image.Image) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		panic(err)
	}
	fmt.Println("  →", path)
}

func drawTrait(img *image.RGBA, layer trait.Layer, s string) {
	switch layer {
	case trait.LayerBackground:
		drawBackground(img, s)
	case trait.LayerBase:
		drawBase(img, s)
	case trait.LayerClothes:
		drawClothes(img, s)
	case trait.LayerClothesAddon:
		drawOveralls(img, s)
	case trait.LayerFacialHair:
		drawFacialHair(img, s)
	case trait.LayerMouthBase:
		drawMouth(img, s)
	case trait.LayerMouthItem:
		drawMouthItem(img, s)
	case trait.LayerMask:
		drawMask(img, s)
	case trait.LayerEyes:
		drawEyes(img, s)
	case trait.LayerHead:
		drawHead(img, s)
	}
}

// stemColor maps a file-stem color suffix to a paint color
func stemColor(s string, fallback color.RGBA) color.RGBA {
	table := map[string]color.RGBA{
		"white":      {240, 240, 240, 255},
		"black":      {35, 35, 35, 255},
		"red":        {200, 40, 40, 255},
		"green":      {40, 160, 60, 255},
		"neon_green": {57, 255, 20, 255},
		"blue":       {50, 90, 200, 255},
		"navy":       {30, 40, 90, 255},
		"gray":       {130, 130, 130, 255},
		"gold":       {218, 165, 32, 255},
		"orange":     {230, 130, 30, 255},
		"purple":     {140, 60, 180, 255},
		"brown":      {120, 80, 45, 255},
		"mint":       {190, 235, 210, 255},
	}
	// Longest suffix first so neon_green beats green.
	best := fallback
	bestLen := 0
	for name, c := range table {
		if strings.HasSuffix(s, name) && len(name) > bestLen {
			best = c
			bestLen = len(name)
		}
	}
	return best
}

// ============= BACKGROUND =============

func drawBackground(img *image.RGBA, s string) {
	switch s {
	case "sunset":
		top := color.RGBA{250, 150, 60, 255}
		bottom := color.RGBA{120, 40, 110, 255}
		for y := 0; y < size; y++ {
			c := lerpColor(top, bottom, float64(y)/size)
			for x := 0; x < size; x++ {
				img.SetRGBA(x, y, c)
			}
		}
		fillCircle(img, size/2, size/3, 80, color.RGBA{255, 230, 150, 255})
	case "matrix":
		fillRect(img, 0, 0, size, size, color.RGBA{5, 15, 5, 255})
		for col := 0; col < size; col += 24 {
			drop := (col * 37) % size
			for y := 0; y < size; y += 16 {
				fade := uint8(255 - min(255, abs(y-drop)/2))
				fillRect(img, col, y, 10, 12, color.RGBA{0, fade, 40, 255})
			}
		}
	case "city":
		sky := color.RGBA{60, 70, 110, 255}
		fillRect(img, 0, 0, size, size, sky)
		for i, x := 0, 0; x < size; i++ {
			w := 60 + (i*53)%90
			h := 250 + (i*97)%400
			fillRect(img, x, size-h, w, h, color.RGBA{30, 32, 48, 255})
			for wy := size - h + 20; wy < size-20; wy += 36 {
				for wx := x + 10; wx < x+w-14; wx += 24 {
					if (wx+wy)%5 != 0 {
						fillRect(img, wx, wy, 10, 14, color.RGBA{240, 220, 120, 255})
					}
				}
			}
			x += w + 8
		}
	default: // plain_*
		c := stemColor(s, color.RGBA{245, 245, 245, 255})
		fillRect(img, 0, 0, size, size, c)
	}
}

// ============= BASE =============

func drawBase(img *image.RGBA, s string) {
	skin := color.RGBA{235, 220, 200, 255}
	switch s {
	case "pink":
		skin = color.RGBA{240, 185, 185, 255}
	case "gray":
		skin = color.RGBA{180, 180, 185, 255}
	}

	// Neck and shoulders.
	fillRect(img, headCX-70, headCY+headRY-60, 140, 180, darken(skin, 0.92))
	fillEllipse(img, headCX, size-80, 330, 180, skin)
	// Head.
	fillEllipse(img, headCX, headCY, headRX, headRY, skin)
	strokeEllipse(img, headCX, headCY, headRX, headRY, darken(skin, 0.75))
	// Nose.
	drawLine(img, headCX+10, headCY+10, headCX+32, headCY+60, darken(skin, 0.7))
	drawLine(img, headCX+32, headCY+60, headCX+8, headCY+72, darken(skin, 0.7))
	// Default eyes, drawn faint so the Eyes layer reads on top.
	fillEllipse(img, headCX-70, headCY-30, 26, 12, color.RGBA{250, 250, 250, 255})
	fillEllipse(img, headCX+70, headCY-30, 26, 12, color.RGBA{250, 250, 250, 255})
	fillCircle(img, headCX-70, headCY-30, 6, color.RGBA{40, 40, 40, 255})
	fillCircle(img, headCX+70, headCY-30, 6, color.RGBA{40, 40, 40, 255})

	if s == "zoomer" {
		// Messy fringe over the forehead.
		hair := color.RGBA{90, 60, 35, 255}
		for i := -6; i <= 6; i++ {
			x := headCX + i*28
			fillTriangle(img, x-16, headCY-headRY+30, x+16, headCY-headRY+30, x, headCY-headRY+110, hair)
		}
		fillEllipse(img, headCX, headCY-headRY+34, headRX-18, 44, hair)
	}
}

// ============= CLOTHES =============

func drawClothes(img *image.RGBA, s string) {
	torsoY := size - 270
	switch {
	case strings.HasPrefix(s, "tee_"), strings.HasPrefix(s, "tank_"), s == "wifebeater":
		c := stemColor(s, color.RGBA{240, 240, 240, 255})
		fillEllipse(img, headCX, size-60, 320, 240, c)
		fillRect(img, headCX-320, size-120, 640, 120, c)
		if strings.HasPrefix(s, "tank_") || s == "wifebeater" {
			// Cut away the shoulders for straps.
			fillEllipse(img, headCX-200, torsoY+40, 90, 70, color.RGBA{0, 0, 0, 0})
			fillEllipse(img, headCX+200, torsoY+40, 90, 70, color.RGBA{0, 0, 0, 0})
		}
		strokeEllipse(img, headCX, size-60, 320, 240, darken(c, 0.7))
	case strings.HasPrefix(s, "hoodie_"):
		c := stemColor(s, color.RGBA{110, 110, 110, 255})
		fillEllipse(img, headCX, size-50, 350, 260, c)
		fillRect(img, headCX-350, size-130, 700, 130, c)
		// Hood bunched around the neck.
		fillEllipse(img, headCX, torsoY+20, 230, 90, darken(c, 0.85))
		fillEllipse(img, headCX, torsoY+30, 160, 60, darken(c, 0.7))
		// Drawstrings.
		drawLine(img, headCX-40, torsoY+60, headCX-44, torsoY+150, color.RGBA{230, 230, 230, 255})
		drawLine(img, headCX+40, torsoY+60, headCX+44, torsoY+150, color.RGBA{230, 230, 230, 255})
	case strings.HasPrefix(s, "suit_"):
		drawSuit(img, s)
	case strings.HasPrefix(s, "astronaut_"):
		c := stemColor(s, color.RGBA{240, 240, 240, 255})
		fillEllipse(img, headCX, size-40, 360, 270, c)
		fillRect(img, headCX-360, size-130, 720, 130, c)
		// Collar ring.
		fillEllipse(img, headCX, torsoY+30, 190, 70, color.RGBA{150, 150, 160, 255})
		fillEllipse(img, headCX, torsoY+30, 160, 52, darken(c, 0.8))
		// Chest panel.
		fillRect(img, headCX-70, torsoY+120, 140, 100, color.RGBA{90, 95, 110, 255})
		fillCircle(img, headCX-40, torsoY+150, 12, color.RGBA{220, 60, 60, 255})
		fillCircle(img, headCX, torsoY+150, 12, color.RGBA{60, 180, 90, 255})
		fillCircle(img, headCX+40, torsoY+150, 12, color.RGBA{70, 110, 220, 255})
	}
}

// drawSuit renders one cell of the suit matrix: jacket color, shirt
// accent, and tie or bow from the stem "suit_<jacket>_<accent>_<knot>"
func drawSuit(img *image.RGBA, s string) {
	parts := strings.Split(s, "_")
	if len(parts) != 4 {
		return
	}
	jacket := stemColor(parts[1], color.RGBA{35, 35, 35, 255})
	accent := stemColor(parts[2], color.RGBA{200, 40, 40, 255})
	torsoY := size - 270

	fillEllipse(img, headCX, size-40, 350, 260, jacket)
	fillRect(img, headCX-350, size-130, 700, 130, jacket)
	// Shirt triangle.
	fillTriangle(img, headCX-90, torsoY+40, headCX+90, torsoY+40, headCX, size-60, color.RGBA{245, 245, 245, 255})
	// Lapels.
	fillTriangle(img, headCX-110, torsoY+30, headCX-20, torsoY+40, headCX-60, size-120, darken(jacket, 0.8))
	fillTriangle(img, headCX+110, torsoY+30, headCX+20, torsoY+40, headCX+60, size-120, darken(jacket, 0.8))

	if parts[3] == "bow" {
		fillTriangle(img, headCX-46, torsoY+48, headCX-6, torsoY+66, headCX-46, torsoY+84, accent)
		fillTriangle(img, headCX+46, torsoY+48, headCX+6, torsoY+66, headCX+46, torsoY+84, accent)
		fillCircle(img, headCX, torsoY+66, 10, darken(accent, 0.85))
	} else {
		fillTriangle(img, headCX-18, torsoY+50, headCX+18, torsoY+50, headCX, torsoY+90, accent)
		fillTriangle(img, headCX-24, torsoY+80, headCX+24, torsoY+80, headCX, size-100, accent)
	}
}

// ============= CLOTHES ADDON =============

func drawOveralls(img *image.RGBA, s string) {
	c := stemColor(s, color.RGBA{50, 90, 200, 255})
	torsoY := size - 270
	// Bib.
	fillRect(img, headCX-120, torsoY+110, 240, 300, c)
	// Straps over the shoulders.
	fillRect(img, headCX-110, torsoY+20, 36, 120, c)
	fillRect(img, headCX+74, torsoY+20, 36, 120, c)
	fillCircle(img, headCX-92, torsoY+120, 12, color.RGBA{230, 220, 140, 255})
	fillCircle(img, headCX+92, torsoY+120, 12, color.RGBA{230, 220, 140, 255})
	// Chest pocket with a sprout.
	fillRect(img, headCX-50, torsoY+160, 100, 80, darken(c, 0.85))
	drawLine(img, headCX, torsoY+160, headCX, torsoY+120, color.RGBA{60, 140, 60, 255})
	fillEllipse(img, headCX-14, torsoY+118, 14, 8, color.RGBA{80, 180, 80, 255})
	fillEllipse(img, headCX+14, torsoY+118, 14, 8, color.RGBA{80, 180, 80, 255})
}

// ============= FACIAL HAIR =============

func drawFacialHair(img *image.RGBA, s string) {
	chinY := headCY + headRY - 70
	switch s {
	case "stubble":
		for i := 0; i < 400; i++ {
			x := headCX - 130 + (i*37)%260
			y := chinY - 60 + (i*53)%110
			if inEllipse(x, y, headCX, headCY, headRX, headRY) {
				img.SetRGBA(x, y, color.RGBA{70, 60, 50, 180})
			}
		}
	case "mustache":
		fillEllipse(img, headCX-40, headCY+80, 44, 16, color.RGBA{60, 45, 30, 255})
		fillEllipse(img, headCX+40, headCY+80, 44, 16, color.RGBA{60, 45, 30, 255})
	case "goatee":
		fillEllipse(img, headCX, chinY+20, 55, 60, color.RGBA{55, 42, 28, 255})
		fillEllipse(img, headCX, chinY, 34, 26, color.RGBA{0, 0, 0, 0})
	default: // beard_*
		c := stemColor(s, color.RGBA{80, 55, 35, 255})
		fillEllipse(img, headCX, chinY+30, 150, 120, c)
		fillEllipse(img, headCX, headCY+70, 90, 50, color.RGBA{0, 0, 0, 0})
		fillEllipse(img, headCX-40, headCY+80, 44, 14, c)
		fillEllipse(img, headCX+40, headCY+80, 44, 14, c)
	}
}

// ============= MOUTH =============

func drawMouth(img *image.RGBA, s string) {
	mouthY := headCY + 110
	ink := color.RGBA{50, 35, 30, 255}
	switch s {
	case "smirk":
		for t := 0.0; t <= 1.0; t += 0.01 {
			x := headCX - 60 + int(t*120)
			y := mouthY - int(math.Sin(t*math.Pi)*14) + int(t*10)
			thickPixel(img, x, y, ink)
		}
	case "frown":
		for t := 0.0; t <= 1.0; t += 0.01 {
			x := headCX - 55 + int(t*110)
			y := mouthY + int(math.Sin(t*math.Pi)*16)
			thickPixel(img, x, y, ink)
		}
	case "open":
		fillEllipse(img, headCX, mouthY, 40, 26, color.RGBA{70, 30, 30, 255})
		fillEllipse(img, headCX, mouthY-10, 32, 8, color.RGBA{240, 240, 240, 255})
	case "pucker":
		fillEllipse(img, headCX, mouthY, 18, 14, color.RGBA{190, 110, 110, 255})
		strokeEllipse(img, headCX, mouthY, 18, 14, ink)
	}
}

// ============= MOUTH ITEM =============

func drawMouthItem(img *image.RGBA, s string) {
	mx, myy := headCX+40, headCY+115
	switch s {
	case "cigarette":
		fillRect(img, mx, myy, 110, 12, color.RGBA{240, 240, 235, 255})
		fillRect(img, mx+96, myy, 14, 12, color.RGBA{230, 120, 60, 255})
		fillCircle(img, mx+112, myy+6, 5, color.RGBA{255, 90, 40, 255})
	case "cigar":
		fillRect(img, mx, myy-4, 130, 22, color.RGBA{110, 70, 40, 255})
		fillRect(img, mx+70, myy-4, 14, 22, color.RGBA{180, 140, 60, 255})
		fillCircle(img, mx+132, myy+7, 8, color.RGBA{255, 120, 40, 255})
	case "pipe":
		drawLine(img, mx, myy, mx+90, myy+40, color.RGBA{90, 55, 30, 255})
		fillRect(img, mx+80, myy+20, 34, 40, color.RGBA{90, 55, 30, 255})
		fillEllipse(img, mx+97, myy+20, 17, 8, color.RGBA{50, 30, 15, 255})
	case "toothpick":
		drawLine(img, mx, myy+4, mx+80, myy-16, color.RGBA{210, 180, 130, 255})
		drawLine(img, mx, myy+5, mx+80, myy-15, color.RGBA{180, 150, 100, 255})
	}
}

// ============= MASK =============

func drawMask(img *image.RGBA, s string) {
	switch {
	case s == "hannibal":
		c := color.RGBA{200, 190, 170, 255}
		fillEllipse(img, headCX, headCY+60, 150, 160, c)
		for y := headCY - 40; y < headCY+180; y += 34 {
			for x := headCX - 120; x < headCX+120; x += 34 {
				if inEllipse(x, y, headCX, headCY+60, 130, 140) {
					fillCircle(img, x, y, 6, color.RGBA{40, 40, 40, 255})
				}
			}
		}
		// Straps.
		drawLine(img, headCX-150, headCY, headCX-headRX-20, headCY-40, darken(c, 0.7))
		drawLine(img, headCX+150, headCY, headCX+headRX+20, headCY-40, darken(c, 0.7))
	case s == "centurion":
		c := color.RGBA{190, 160, 70, 255}
		fillEllipse(img, headCX, headCY+20, 170, 210, c)
		fillRect(img, headCX-14, headCY-40, 28, 180, darken(c, 0.8))
		fillEllipse(img, headCX-70, headCY-30, 34, 18, color.RGBA{20, 20, 20, 255})
		fillEllipse(img, headCX+70, headCY-30, 34, 18, color.RGBA{20, 20, 20, 255})
		fillRect(img, headCX-60, headCY+120, 120, 8, color.RGBA{20, 20, 20, 255})
	case strings.HasPrefix(s, "ski_"):
		c := stemColor(s, color.RGBA{35, 35, 35, 255})
		fillEllipse(img, headCX, headCY, headRX+8, headRY+8, c)
		fillEllipse(img, headCX-70, headCY-30, 36, 20, color.RGBA{0, 0, 0, 0})
		fillEllipse(img, headCX+70, headCY-30, 36, 20, color.RGBA{0, 0, 0, 0})
		fillEllipse(img, headCX, headCY+110, 50, 26, color.RGBA{0, 0, 0, 0})
		strokeEllipse(img, headCX, headCY, headRX+8, headRY+8, darken(c, 0.7))
	case strings.HasPrefix(s, "ninja_"):
		c := stemColor(s, color.RGBA{200, 40, 40, 255})
		// Lower-face wrap, eyes stay open.
		fillEllipse(img, headCX, headCY+100, headRX+4, 140, c)
		fillRect(img, headCX-headRX-4, headCY+20, 2*(headRX+4), 80, c)
		// Knot trailing off the side.
		fillTriangle(img, headCX+headRX-10, headCY+40, headCX+headRX+70, headCY+10, headCX+headRX+50, headCY+80, darken(c, 0.85))
	case s == "surgical":
		c := color.RGBA{140, 200, 220, 255}
		fillRect(img, headCX-130, headCY+40, 260, 140, c)
		fillEllipse(img, headCX, headCY+180, 130, 30, c)
		drawLine(img, headCX-130, headCY+50, headCX-headRX-20, headCY-10, color.RGBA{220, 220, 220, 255})
		drawLine(img, headCX+130, headCY+50, headCX+headRX+20, headCY-10, color.RGBA{220, 220, 220, 255})
		for i := 1; i < 4; i++ {
			drawLine(img, headCX-120, headCY+40+i*34, headCX+120, headCY+40+i*34, darken(c, 0.85))
		}
	case s == "zorro":
		c := color.RGBA{25, 25, 25, 255}
		fillRect(img, headCX-130, headCY-60, 260, 60, c)
		fillEllipse(img, headCX-70, headCY-30, 30, 14, color.RGBA{0, 0, 0, 0})
		fillEllipse(img, headCX+70, headCY-30, 30, 14, color.RGBA{0, 0, 0, 0})
		drawLine(img, headCX-130, headCY-40, headCX-headRX-24, headCY-50, c)
		drawLine(img, headCX+130, headCY-40, headCX+headRX+24, headCY-50, c)
	}
}

// ============= EYES =============

func drawEyes(img *image.RGBA, s string) {
	ly, ry := headCY-30, headCY-30
	lx, rx := headCX-70, headCX+70
	switch {
	case s == "tyson_tattoo":
		ink := color.RGBA{40, 60, 70, 255}
		cx, cy := lx-50, ly+10
		drawLine(img, cx, cy-40, cx-30, cy+10, ink)
		drawLine(img, cx-30, cy+10, cx+5, cy+30, ink)
		drawLine(img, cx+5, cy+30, cx-20, cy+70, ink)
		drawLine(img, cx-10, cy-30, cx-40, cy+30, ink)
		drawLine(img, cx-40, cy+30, cx-5, cy+60, ink)
	case strings.HasPrefix(s, "turtle_"):
		c := stemColor(s, color.RGBA{200, 40, 40, 255})
		fillRect(img, headCX-headRX-10, ly-26, 2*(headRX+10), 52, c)
		fillTriangle(img, headCX+headRX, ly, headCX+headRX+80, ly-40, headCX+headRX+60, ly+50, darken(c, 0.85))
		fillEllipse(img, lx, ly, 30, 15, color.RGBA{250, 250, 250, 255})
		fillEllipse(img, rx, ry, 30, 15, color.RGBA{250, 250, 250, 255})
		fillCircle(img, lx, ly, 7, color.RGBA{30, 30, 30, 255})
		fillCircle(img, rx, ry, 7, color.RGBA{30, 30, 30, 255})
	case strings.HasPrefix(s, "shades_"):
		c := stemColor(s, color.RGBA{25, 25, 25, 255})
		fillEllipse(img, lx, ly, 46, 30, c)
		fillEllipse(img, rx, ry, 46, 30, c)
		fillRect(img, lx+40, ly-4, rx-lx-80, 8, c)
		drawLine(img, lx-46, ly, headCX-headRX-20, ly-16, c)
		drawLine(img, rx+46, ry, headCX+headRX+20, ry-16, c)
	case s == "bloodshot":
		for _, ex := range []int{lx, rx} {
			fillEllipse(img, ex, ly, 28, 14, color.RGBA{250, 240, 240, 255})
			for i := 0; i < 8; i++ {
				ang := float64(i) * math.Pi / 4
				drawLine(img, ex, ly, ex+int(math.Cos(ang)*22), ly+int(math.Sin(ang)*10), color.RGBA{200, 60, 60, 255})
			}
			fillCircle(img, ex, ly, 6, color.RGBA{40, 40, 40, 255})
		}
	case s == "monocle":
		strokeEllipse(img, rx, ry, 36, 36, color.RGBA{190, 160, 70, 255})
		strokeEllipse(img, rx, ry, 34, 34, color.RGBA{190, 160, 70, 255})
		drawLine(img, rx+30, ry+20, rx+50, headCY+180, color.RGBA{190, 160, 70, 255})
	}
}

// ============= HEAD =============

func drawHead(img *image.RGBA, s string) {
	topY := headCY - headRY
	switch {
	case strings.HasPrefix(s, "beanie_"):
		c := stemColor(s, color.RGBA{130, 130, 130, 255})
		fillEllipse(img, headCX, topY+70, headRX+6, 110, c)
		fillRect(img, headCX-headRX-6, topY+70, 2*(headRX+6), 40, darken(c, 0.85))
		fillCircle(img, headCX, topY-30, 22, darken(c, 0.9))
	case strings.HasPrefix(s, "cap_"):
		c := stemColor(s, color.RGBA{200, 40, 40, 255})
		fillEllipse(img, headCX, topY+60, headRX, 100, c)
		// Brim.
		fillEllipse(img, headCX+headRX-30, topY+90, 130, 30, darken(c, 0.9))
		fillCircle(img, headCX, topY-20, 10, darken(c, 0.8))
	case strings.HasPrefix(s, "doorag_"):
		c := stemColor(s, color.RGBA{35, 35, 35, 255})
		fillEllipse(img, headCX, topY+80, headRX+4, 130, c)
		// Tail down the back.
		fillTriangle(img, headCX-headRX+10, topY+120, headCX-headRX-50, topY+320, headCX-headRX+60, topY+170, darken(c, 0.85))
	case strings.HasPrefix(s, "bandana_"):
		c := stemColor(s, color.RGBA{200, 40, 40, 255})
		fillRect(img, headCX-headRX-4, topY+60, 2*(headRX+4), 70, c)
		fillTriangle(img, headCX+headRX-10, topY+90, headCX+headRX+70, topY+60, headCX+headRX+50, topY+150, darken(c, 0.85))
		for y := topY + 70; y < topY+120; y += 16 {
			for x := headCX - headRX; x < headCX+headRX; x += 32 {
				fillCircle(img, x, y, 3, color.RGBA{250, 250, 250, 200})
			}
		}
	case s == "mohawk_neon_green":
		c := color.RGBA{57, 255, 20, 255}
		for i := -3; i <= 3; i++ {
			x := headCX + i*30
			fillTriangle(img, x-18, topY+50, x+18, topY+50, x, topY-120+abs(i)*25, c)
		}
	case s == "centurion_helmet":
		c := color.RGBA{190, 160, 70, 255}
		fillEllipse(img, headCX, topY+60, headRX+14, 120, c)
		fillRect(img, headCX-headRX-14, topY+100, 30, 160, c)
		fillRect(img, headCX+headRX-16, topY+100, 30, 160, c)
		// Crest.
		for x := headCX - 80; x <= headCX+80; x += 8 {
			drawLine(img, x, topY+20, x, topY-90, color.RGBA{190, 40, 40, 255})
		}
	case s == "headphones":
		band := color.RGBA{40, 40, 45, 255}
		for t := 0.0; t <= 1.0; t += 0.005 {
			ang := math.Pi + t*math.Pi
			x := headCX + int(math.Cos(ang)*float64(headRX+24))
			y := headCY - 20 + int(math.Sin(ang)*float64(headRY-40))
			thickPixel(img, x, y, band)
		}
		fillEllipse(img, headCX-headRX-18, headCY-20, 28, 44, band)
		fillEllipse(img, headCX+headRX+18, headCY-20, 28, 44, band)
		fillEllipse(img, headCX-headRX-18, headCY-20, 16, 30, color.RGBA{180, 60, 60, 255})
		fillEllipse(img, headCX+headRX+18, headCY-20, 16, 30, color.RGBA{180, 60, 60, 255})
	case s == "headphones_over_hood":
		// Same cans, band raised to clear a bunched hood.
		band := color.RGBA{40, 40, 45, 255}
		for t := 0.0; t <= 1.0; t += 0.005 {
			ang := math.Pi + t*math.Pi
			x := headCX + int(math.Cos(ang)*float64(headRX+40))
			y := headCY - 40 + int(math.Sin(ang)*float64(headRY-20))
			thickPixel(img, x, y, band)
		}
		fillEllipse(img, headCX-headRX-34, headCY-10, 30, 48, band)
		fillEllipse(img, headCX+headRX+34, headCY-10, 30, 48, band)
		fillEllipse(img, headCX-headRX-34, headCY-10, 18, 34, color.RGBA{180, 60, 60, 255})
		fillEllipse(img, headCX+headRX+34, headCY-10, 18, 34, color.RGBA{180, 60, 60, 255})
	}
}

// ============= RASTER HELPERS =============

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			setPixel(img, px, py, c)
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for py := cy - r; py <= cy+r; py++ {
		for px := cx - r; px <= cx+r; px++ {
			dx, dy := float64(px-cx), float64(py-cy)
			if math.Sqrt(dx*dx+dy*dy) <= float64(r) {
				setPixel(img, px, py, c)
			}
		}
	}
}

func fillEllipse(img *image.RGBA, cx, cy, rx, ry int, c color.RGBA) {
	for py := cy - ry; py <= cy+ry; py++ {
		for px := cx - rx; px <= cx+rx; px++ {
			if inEllipse(px, py, cx, cy, rx, ry) {
				if c.A == 0 {
					// Alpha zero acts as an eraser for cutouts.
					img.SetRGBA(px, py, color.RGBA{})
					continue
				}
				setPixel(img, px, py, c)
			}
		}
	}
}

func strokeEllipse(img *image.RGBA, cx, cy, rx, ry int, c color.RGBA) {
	for t := 0.0; t < 2*math.Pi; t += 0.002 {
		x := cx + int(math.Cos(t)*float64(rx))
		y := cy + int(math.Sin(t)*float64(ry))
		setPixel(img, x, y, c)
	}
}

func inEllipse(px, py, cx, cy, rx, ry int) bool {
	dx := float64(px-cx) / float64(rx)
	dy := float64(py-cy) / float64(ry)
	return dx*dx+dy*dy <= 1.0
}

func fillTriangle(img *image.RGBA, x0, y0, x1, y1, x2, y2 int, c color.RGBA) {
	minX := min(x0, min(x1, x2))
	maxX := max(x0, max(x1, x2))
	minY := min(y0, min(y1, y2))
	maxY := max(y0, max(y1, y2))
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			d1 := edgeSign(px, py, x0, y0, x1, y1)
			d2 := edgeSign(px, py, x1, y1, x2, y2)
			d3 := edgeSign(px, py, x2, y2, x0, y0)
			hasNeg := d1 < 0 || d2 < 0 || d3 < 0
			hasPos := d1 > 0 || d2 > 0 || d3 > 0
			if !(hasNeg && hasPos) {
				setPixel(img, px, py, c)
			}
		}
	}
}

func edgeSign(px, py, x0, y0, x1, y1 int) int {
	return (px-x1)*(y0-y1) - (x0-x1)*(py-y1)
}

func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := math.Abs(float64(x1 - x0))
	dy := math.Abs(float64(y1 - y0))
	steps := int(math.Max(dx, dy))
	if steps == 0 {
		setPixel(img, x0, y0, c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := float64(x0) + t*float64(x1-x0)
		y := float64(y0) + t*float64(y1-y0)
		thickPixel(img, int(x), int(y), c)
	}
}

func thickPixel(img *image.RGBA, x, y int, c color.RGBA) {
	setPixel(img, x, y, c)
	setPixel(img, x+1, y, c)
	setPixel(img, x, y+1, c)
	setPixel(img, x+1, y+1, c)
}

func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= img.Bounds().Dx() || y >= img.Bounds().Dy() {
		return
	}
	img.SetRGBA(x, y, c)
}

func darken(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	return color.RGBA{
		R: uint8(float64(a.R)*(1-t) + float64(b.R)*t),
		G: uint8(float64(a.G)*(1-t) + float64(b.G)*t),
		B: uint8(float64(a.B)*(1-t) + float64(b.B)*t),
		A: uint8(float64(a.A)*(1-t) + float64(b.A)*t),
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
