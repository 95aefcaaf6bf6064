// Package compose expands a selection into the ordered paint list.
package compose

import (
	"fmt"

	"github.com/wojaklabs/wojak-studio/engine/trait"
)

// Slot names a physical or virtual position in the paint stack.
// Virtual slots are never selected directly; they are populated by
// extracting an asset from a real layer based on other selection
// state, so it can sit at a different occlusion depth.
type Slot string

const (
	SlotBackground   Slot = "Background"
	SlotBase         Slot = "Base"
	SlotClothes      Slot = "Clothes"
	SlotClothesAddon Slot = "ClothesAddon"
	SlotFacialHair   Slot = "FacialHair"
	SlotMouthBase    Slot = "MouthBase"
	SlotMouthItem    Slot = "MouthItem"
	SlotTysonTattoo  Slot = "TysonTattoo" // virtual: eyes tattoo under an occupied mask
	SlotTurtleBand   Slot = "TurtleBand"  // virtual: eyes band under an eye-covering mask
	SlotMask         Slot = "Mask"
	SlotEyes         Slot = "Eyes"
	SlotAstronaut    Slot = "Astronaut"    // virtual: costume worn over the face
	SlotHannibalMask Slot = "HannibalMask" // virtual: mask worn over everything but headwear
	SlotHead         Slot = "Head"
)

// zOrder is the canonical paint order, bottom to top. It is fixed and
// total; the paint list is always emitted in this order.
var zOrder = []Slot{
	SlotBackground,
	SlotBase,
	SlotClothes,
	SlotClothesAddon,
	SlotFacialHair,
	SlotMouthBase,
	SlotMouthItem,
	SlotTysonTattoo,
	SlotTurtleBand,
	SlotMask,
	SlotEyes,
	SlotAstronaut,
	SlotHannibalMask,
	SlotHead,
}

var zIndexOf = func() map[Slot]int {
	idx := make(map[Slot]int, len(zOrder))
	for i, s := range zOrder {
		idx[s] = i
	}
	return idx
}()

// PaintEntry is one draw operation in the final list
type PaintEntry struct {
	Slot Slot
	Path string
	Z    int
}

// BuildPaintList expands the selection into the ordered list of draw
// operations. Each selected asset lands in exactly one slot (its real
// slot or its virtual slot, never both), and a selected asset that
// fits no slot is surfaced as an error, never dropped.
func BuildPaintList(m *trait.Manifest, sel trait.Selection) ([]PaintEntry, error) {
	bySlot := make(map[Slot]string, len(trait.Layers))

	maskAsset := lookup(m, trait.LayerMask, sel)

	for _, layer := range trait.Layers {
		a := lookup(m, layer, sel)
		if a == nil {
			continue
		}
		slot, ok := routeSlot(a, maskAsset)
		if !ok {
			return nil, fmt.Errorf("compose: no slot for %s asset %s", layer, a.Path)
		}
		if prev, taken := bySlot[slot]; taken {
			return nil, fmt.Errorf("compose: slot %s claimed by both %s and %s", slot, prev, a.Path)
		}
		bySlot[slot] = a.Path
	}

	entries := make([]PaintEntry, 0, len(bySlot))
	for z, slot := range zOrder {
		if path, ok := bySlot[slot]; ok {
			entries = append(entries, PaintEntry{Slot: slot, Path: path, Z: z})
		}
	}
	return entries, nil
}

// routeSlot decides the slot a selected asset paints in
func routeSlot(a, mask *trait.Asset) (Slot, bool) {
	switch a.Layer {
	case trait.LayerClothes:
		if a.Has(trait.TagAstronaut) {
			return SlotAstronaut, true
		}
		return SlotClothes, true
	case trait.LayerMask:
		if a.Has(trait.TagHannibal) {
			return SlotHannibalMask, true
		}
		return SlotMask, true
	case trait.LayerEyes:
		if a.Has(trait.TagTysonTattoo) && mask != nil {
			return SlotTysonTattoo, true
		}
		if a.Has(trait.TagTurtleBand) && mask != nil && mask.Has(trait.TagEyeCoveringMask) {
			return SlotTurtleBand, true
		}
		return SlotEyes, true
	case trait.LayerBackground:
		return SlotBackground, true
	case trait.LayerBase:
		return SlotBase, true
	case trait.LayerClothesAddon:
		return SlotClothesAddon, true
	case trait.LayerFacialHair:
		return SlotFacialHair, true
	case trait.LayerMouthBase:
		return SlotMouthBase, true
	case trait.LayerMouthItem:
		return SlotMouthItem, true
	case trait.LayerHead:
		return SlotHead, true
	}
	return "", false
}

func lookup(m *trait.Manifest, layer trait.Layer, sel trait.Selection) *trait.Asset {
	path := sel.Get(layer)
	if path == trait.None {
		return nil
	}
	a, ok := m.LookupIn(layer, path)
	if !ok {
		return nil
	}
	return a
}

// ZIndex returns a slot's position in the canonical order
func ZIndex(s Slot) int {
	return zIndexOf[s]
}
