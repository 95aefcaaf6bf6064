package compose

import (
	"testing"

	"github.com/wojaklabs/wojak-studio/engine/trait"
)

func entryFor(entries []PaintEntry, slot Slot) (PaintEntry, bool) {
	for _, e := range entries {
		if e.Slot == slot {
			return e, true
		}
	}
	return PaintEntry{}, false
}

func mustBuild(t *testing.T, m *trait.Manifest, sel trait.Selection) []PaintEntry {
	t.Helper()
	entries, err := BuildPaintList(m, sel)
	if err != nil {
		t.Fatal(err)
	}
	return entries
}

func TestPaintListAscendingZ(t *testing.T) {
	m := trait.Default()
	sel := trait.NewSelection()
	sel.Set(trait.LayerBackground, trait.PathFor(trait.LayerBackground, "sunset"))
	sel.Set(trait.LayerBase, trait.PathFor(trait.LayerBase, "classic"))
	sel.Set(trait.LayerClothes, trait.PathTeeWhite)
	sel.Set(trait.LayerMouthBase, trait.PathMouthSmirk)
	sel.Set(trait.LayerEyes, trait.PathFor(trait.LayerEyes, "shades_black"))
	sel.Set(trait.LayerHead, trait.PathFor(trait.LayerHead, "cap_red"))

	entries := mustBuild(t, m, sel)
	if len(entries) != 6 {
		t.Fatalf("got %d entries, want 6", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Z <= entries[i-1].Z {
			t.Fatalf("entries not in ascending z: %+v", entries)
		}
	}
	if entries[0].Slot != SlotBackground || entries[len(entries)-1].Slot != SlotHead {
		t.Errorf("background must paint first and headwear last: %+v", entries)
	}
}

func TestTysonTattooRouting(t *testing.T) {
	m := trait.Default()
	tattoo := trait.PathFor(trait.LayerEyes, "tyson_tattoo")

	// No mask: the tattoo paints in the real eyes slot.
	sel := trait.NewSelection()
	sel.Set(trait.LayerEyes, tattoo)
	entries := mustBuild(t, m, sel)
	if e, ok := entryFor(entries, SlotEyes); !ok || e.Path != tattoo {
		t.Errorf("tattoo without mask should use %s, got %+v", SlotEyes, entries)
	}

	// Any occupied mask pushes the tattoo under it.
	sel.Set(trait.LayerMask, trait.PathFor(trait.LayerMask, "surgical"))
	entries = mustBuild(t, m, sel)
	e, ok := entryFor(entries, SlotTysonTattoo)
	if !ok || e.Path != tattoo {
		t.Fatalf("tattoo with mask should use %s, got %+v", SlotTysonTattoo, entries)
	}
	mask, _ := entryFor(entries, SlotMask)
	if e.Z >= mask.Z {
		t.Errorf("tattoo (z=%d) must paint under the mask (z=%d)", e.Z, mask.Z)
	}
	if _, both := entryFor(entries, SlotEyes); both {
		t.Error("tattoo claimed both the real and the virtual slot")
	}
}

func TestTurtleBandRouting(t *testing.T) {
	m := trait.Default()
	band := trait.PathFor(trait.LayerEyes, "turtle_red")

	sel := trait.NewSelection()
	sel.Set(trait.LayerEyes, band)

	// A covering mask that leaves the eyes open does not demote the band.
	sel.Set(trait.LayerMask, trait.PathFor(trait.LayerMask, "surgical"))
	entries := mustBuild(t, m, sel)
	if _, ok := entryFor(entries, SlotEyes); !ok {
		t.Errorf("band over a mouth-only mask should stay in %s: %+v", SlotEyes, entries)
	}

	// An eye-covering mask pushes the band under it.
	sel.Set(trait.LayerMask, trait.PathFor(trait.LayerMask, "ski_black"))
	entries = mustBuild(t, m, sel)
	e, ok := entryFor(entries, SlotTurtleBand)
	if !ok || e.Path != band {
		t.Fatalf("band under an eye-covering mask should use %s, got %+v", SlotTurtleBand, entries)
	}
	mask, _ := entryFor(entries, SlotMask)
	if e.Z >= mask.Z {
		t.Errorf("band (z=%d) must paint under the mask (z=%d)", e.Z, mask.Z)
	}
}

func TestCostumeVirtualSlots(t *testing.T) {
	m := trait.Default()
	sel := trait.NewSelection()
	sel.Set(trait.LayerClothes, trait.PathFor(trait.LayerClothes, "astronaut_white"))
	sel.Set(trait.LayerEyes, trait.PathFor(trait.LayerEyes, "shades_black"))
	sel.Set(trait.LayerHead, trait.PathFor(trait.LayerHead, "cap_red"))

	entries := mustBuild(t, m, sel)
	suit, ok := entryFor(entries, SlotAstronaut)
	if !ok {
		t.Fatalf("astronaut suit missing its virtual slot: %+v", entries)
	}
	eyes, _ := entryFor(entries, SlotEyes)
	head, _ := entryFor(entries, SlotHead)
	if suit.Z <= eyes.Z {
		t.Error("astronaut costume must paint over the face")
	}
	if suit.Z >= head.Z {
		t.Error("headwear must paint over the astronaut costume")
	}
	if _, both := entryFor(entries, SlotClothes); both {
		t.Error("astronaut suit also claimed the real clothes slot")
	}
}

func TestHannibalVirtualSlot(t *testing.T) {
	m := trait.Default()
	sel := trait.NewSelection()
	sel.Set(trait.LayerMask, trait.PathFor(trait.LayerMask, "hannibal"))
	sel.Set(trait.LayerEyes, trait.PathFor(trait.LayerEyes, "bloodshot"))
	sel.Set(trait.LayerHead, trait.PathFor(trait.LayerHead, "beanie_red"))

	entries := mustBuild(t, m, sel)
	mask, ok := entryFor(entries, SlotHannibalMask)
	if !ok {
		t.Fatalf("hannibal mask missing its virtual slot: %+v", entries)
	}
	eyes, _ := entryFor(entries, SlotEyes)
	head, _ := entryFor(entries, SlotHead)
	if mask.Z <= eyes.Z || mask.Z >= head.Z {
		t.Errorf("hannibal mask z=%d must sit between eyes z=%d and headwear z=%d", mask.Z, eyes.Z, head.Z)
	}
}

func TestRoutingTotal(t *testing.T) {
	// Every catalogue asset must route to a slot, with and without an
	// occupied mask.
	m := trait.Default()
	masks := []string{
		"",
		trait.PathFor(trait.LayerMask, "surgical"),
		trait.PathFor(trait.LayerMask, "ski_black"),
	}
	for _, maskPath := range masks {
		for _, layer := range trait.Layers {
			for _, a := range m.Assets(layer) {
				sel := trait.NewSelection()
				sel.Set(layer, a.Path)
				if maskPath != "" && layer != trait.LayerMask {
					sel.Set(trait.LayerMask, maskPath)
				}
				if _, err := BuildPaintList(m, sel); err != nil {
					t.Errorf("asset %s unroutable (mask=%q): %v", a.Path, maskPath, err)
				}
			}
		}
	}
}

func TestUnknownSelectionIgnored(t *testing.T) {
	m := trait.Default()
	sel := trait.NewSelection()
	sel.Set(trait.LayerEyes, "assets/traits/eyes/deleted.png")
	entries := mustBuild(t, m, sel)
	if len(entries) != 0 {
		t.Errorf("stale path produced entries: %+v", entries)
	}
}

func TestZIndexMatchesOrder(t *testing.T) {
	if ZIndex(SlotBackground) != 0 {
		t.Error("background must be the bottom of the stack")
	}
	if ZIndex(SlotHead) != len(zOrder)-1 {
		t.Error("headwear must be the top of the stack")
	}
	if !(ZIndex(SlotTysonTattoo) < ZIndex(SlotMask) && ZIndex(SlotTurtleBand) < ZIndex(SlotMask)) {
		t.Error("extracted eye slots must sit under the mask")
	}
	if !(ZIndex(SlotMask) < ZIndex(SlotEyes) && ZIndex(SlotEyes) < ZIndex(SlotAstronaut)) {
		t.Error("mask, eyes, costume order broken")
	}
}
