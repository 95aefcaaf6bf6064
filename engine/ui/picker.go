// Package ui draws the studio sidebar: layer tabs, trait rows, and
// the color-dot variant strip for grouped traits.
package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/wojaklabs/wojak-studio/engine/studio"
	"github.com/wojaklabs/wojak-studio/engine/trait"
)

const (
	rowHeight  = 26
	tabHeight  = 22
	dotRadius  = 6
	dotSpacing = 18
)

var (
	panelBG     = color.RGBA{20, 20, 40, 230}
	panelBorder = color.RGBA{0, 140, 200, 255}
	rowNorm     = color.RGBA{35, 35, 60, 255}
	rowActive   = color.RGBA{0, 100, 160, 255}
	rowDisabled = color.RGBA{25, 25, 32, 255}
	textDim     = color.RGBA{110, 120, 140, 255}
	tabNorm     = color.RGBA{30, 40, 60, 255}
	tabActive   = color.RGBA{0, 120, 180, 255}
)

// pickerLayers are the tabs shown to the user. ClothesAddon has no
// tab of its own: the overlay group surfaces inside the Clothes tab.
var pickerLayers = []trait.Layer{
	trait.LayerBackground,
	trait.LayerBase,
	trait.LayerClothes,
	trait.LayerFacialHair,
	trait.LayerMouthBase,
	trait.LayerMouthItem,
	trait.LayerMask,
	trait.LayerEyes,
	trait.LayerHead,
}

// Picker is the trait selection sidebar
type Picker struct {
	Engine       *studio.Engine
	ScreenW      int
	ScreenH      int
	SidebarWidth int

	activeTab int
	scroll    int

	// OnChange fires after any successful selection mutation
	OnChange func()
}

// NewPicker creates the sidebar for a screen size
func NewPicker(eng *studio.Engine, screenW, screenH int) *Picker {
	return &Picker{
		Engine:       eng,
		ScreenW:      screenW,
		ScreenH:      screenH,
		SidebarWidth: 280,
	}
}

// ActiveLayer returns the layer of the selected tab
func (p *Picker) ActiveLayer() trait.Layer {
	return pickerLayers[p.activeTab]
}

// CycleLayer moves the active tab by delta (keyboard navigation)
func (p *Picker) CycleLayer(delta int) {
	p.activeTab = (p.activeTab + delta + len(pickerLayers)) % len(pickerLayers)
	p.scroll = 0
}

// Scroll moves the option list by wheel delta
func (p *Picker) Scroll(dy float64) {
	p.scroll -= int(dy * float64(rowHeight))
	if p.scroll < 0 {
		p.scroll = 0
	}
}

func (p *Picker) left() int {
	return p.ScreenW - p.SidebarWidth
}

// Contains reports whether a point is over the sidebar
func (p *Picker) Contains(mx, _ int) bool {
	return mx >= p.left()
}

// Draw renders the sidebar
func (p *Picker) Draw(screen *ebiten.Image) {
	sx := float32(p.left())
	vector.DrawFilledRect(screen, sx, 0, float32(p.SidebarWidth), float32(p.ScreenH), panelBG, false)
	vector.StrokeLine(screen, sx, 0, sx, float32(p.ScreenH), 1, panelBorder, false)

	p.drawTabs(screen)
	p.drawOptions(screen)
	p.drawFooter(screen)
}

func (p *Picker) drawTabs(screen *ebiten.Image) {
	x := p.left() + 6
	y := 6
	for i, layer := range pickerLayers {
		w := tabWidth(layer)
		if x+w > p.ScreenW-6 {
			x = p.left() + 6
			y += tabHeight + 4
		}
		clr := tabNorm
		if i == p.activeTab {
			clr = tabActive
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), tabHeight, clr, false)
		ebitenutil.DebugPrintAt(screen, tabLabel(layer), x+4, y+4)
		x += w + 4
	}
}

func (p *Picker) drawOptions(screen *ebiten.Image) {
	layer := p.ActiveLayer()
	views := p.Engine.GroupedOptions(layer)
	sel := p.Engine.Selection()

	x := p.left() + 8
	w := p.SidebarWidth - 16
	y := p.optionsTop() - p.scroll

	// None row for optional layers.
	if trait.Optional(layer) {
		bare := sel.Get(layer) == trait.None
		if layer == trait.LayerClothes {
			bare = bare && sel.Get(trait.LayerClothesAddon) == trait.None
		}
		clr := rowNorm
		if bare {
			clr = rowActive
		}
		p.drawRow(screen, x, y, w, "None", clr)
		y += rowHeight + 2
	}

	for _, v := range views {
		clr := rowNorm
		switch {
		case v.Disabled:
			clr = rowDisabled
		case v.Active:
			clr = rowActive
		}
		p.drawRow(screen, x, y, w, v.Label, clr)
		if v.Group != nil {
			p.drawDots(screen, x, y, v)
		}
		y += rowHeight + 2
	}
}

func (p *Picker) drawRow(screen *ebiten.Image, x, y, w int, label string, clr color.RGBA) {
	if y+rowHeight < p.optionsTop() || y > p.ScreenH-40 {
		return
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), rowHeight, clr, false)
	ebitenutil.DebugPrintAt(screen, label, x+6, y+6)
}

// drawDots renders the color-dot strip of a grouped trait along the
// row's right edge
func (p *Picker) drawDots(screen *ebiten.Image, x, y int, v studio.OptionView) {
	if y+rowHeight < p.optionsTop() || y > p.ScreenH-40 {
		return
	}
	dx := x + p.SidebarWidth - 16 - dotSpacing*len(v.Group.Variants)
	cy := float32(y + rowHeight/2)
	for _, variant := range v.Group.Variants {
		clr := hexColor(variant.Hex)
		vector.DrawFilledCircle(screen, float32(dx)+dotRadius, cy, dotRadius, clr, false)
		if v.ActiveVariant != nil && v.ActiveVariant.Path == variant.Path {
			vector.StrokeCircle(screen, float32(dx)+dotRadius, cy, dotRadius+2, 1.5, color.RGBA{255, 255, 255, 255}, false)
		}
		if variant.Disabled {
			vector.StrokeLine(screen, float32(dx), cy-dotRadius, float32(dx)+2*dotRadius, cy+dotRadius, 1, color.RGBA{220, 60, 60, 255}, false)
		}
		dx += dotSpacing
	}
}

func (p *Picker) drawFooter(screen *ebiten.Image) {
	y := p.ScreenH - 34
	for layer, reason := range p.Engine.DisabledLayers() {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %s", layer, reason), p.left()+8, y)
		y -= 14
	}
}

// HandleClick processes a click at (mx, my). Returns true when the
// click was consumed by the sidebar.
func (p *Picker) HandleClick(mx, my int) bool {
	if !p.Contains(mx, my) {
		return false
	}

	// Tabs
	x := p.left() + 6
	y := 6
	for i, layer := range pickerLayers {
		w := tabWidth(layer)
		if x+w > p.ScreenW-6 {
			x = p.left() + 6
			y += tabHeight + 4
		}
		if mx >= x && mx < x+w && my >= y && my < y+tabHeight {
			p.activeTab = i
			p.scroll = 0
			return true
		}
		x += w + 4
	}

	// Option rows
	layer := p.ActiveLayer()
	views := p.Engine.GroupedOptions(layer)
	rx := p.left() + 8
	rw := p.SidebarWidth - 16
	ry := p.optionsTop() - p.scroll

	if trait.Optional(layer) {
		if pointIn(mx, my, rx, ry, rw, rowHeight) {
			p.selectNone(layer)
			return true
		}
		ry += rowHeight + 2
	}

	for _, v := range views {
		if pointIn(mx, my, rx, ry, rw, rowHeight) {
			if v.Disabled {
				return true
			}
			p.selectView(layer, v, mx, rx, ry)
			return true
		}
		ry += rowHeight + 2
	}
	return true
}

// selectView applies a row click: a dot hit picks that variant, any
// other spot picks the plain path or the group default
func (p *Picker) selectView(layer trait.Layer, v studio.OptionView, mx, rx, ry int) {
	target := layer
	path := v.Path
	if v.Group != nil {
		target = v.Group.TargetLayer
		dx := rx + p.SidebarWidth - 16 - dotSpacing*len(v.Group.Variants)
		for _, variant := range v.Group.Variants {
			if mx >= dx && mx < dx+dotSpacing && !variant.Disabled {
				path = variant.Path
				break
			}
			dx += dotSpacing
		}
	}
	if err := p.Engine.SelectTrait(target, path); err == nil && p.OnChange != nil {
		p.OnChange()
	}
}

// selectNone clears the layer (and the addon slot when leaving the
// Clothes tab bare)
func (p *Picker) selectNone(layer trait.Layer) {
	changed := p.Engine.SelectTrait(layer, trait.None) == nil
	if layer == trait.LayerClothes {
		changed = p.Engine.SelectTrait(trait.LayerClothesAddon, trait.None) == nil || changed
	}
	if changed && p.OnChange != nil {
		p.OnChange()
	}
}

func (p *Picker) optionsTop() int {
	// Two tab rows fit the nine layers at this sidebar width.
	return 6 + 2*(tabHeight+4) + 8
}

func pointIn(mx, my, x, y, w, h int) bool {
	return mx >= x && mx < x+w && my >= y && my < y+h
}

func tabWidth(layer trait.Layer) int {
	return 6*len(tabLabel(layer)) + 10
}

func tabLabel(layer trait.Layer) string {
	switch layer {
	case trait.LayerBackground:
		return "BG"
	case trait.LayerFacialHair:
		return "Facial"
	case trait.LayerMouthBase:
		return "Mouth"
	case trait.LayerMouthItem:
		return "Item"
	default:
		return string(layer)
	}
}

// hexColor parses "#RRGGBB" into an opaque color
func hexColor(hex string) color.RGBA {
	if len(hex) != 7 || hex[0] != '#' {
		return color.RGBA{128, 128, 128, 255}
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return color.RGBA{128, 128, 128, 255}
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
}
