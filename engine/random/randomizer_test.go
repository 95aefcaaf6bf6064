package random

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/wojaklabs/wojak-studio/engine/rules"
	"github.com/wojaklabs/wojak-studio/engine/trait"
	"github.com/wojaklabs/wojak-studio/engine/variant"
)

func newFixture(seed int64) (*trait.Manifest, *Randomizer) {
	m := trait.Default()
	variant.Classify(m)
	res := rules.NewResolver(m)
	rng := rand.New(rand.NewSource(seed))
	return m, New(m, res, DefaultWeights(), rng)
}

func TestRandomizeDistribution(t *testing.T) {
	m, r := newFixture(1)
	const draws = 10000

	maskNone := 0
	smirk := 0
	suitDraws := 0
	addonPresent := 0
	for i := 0; i < draws; i++ {
		sel, err := r.Randomize()
		if err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
		if sel.Get(trait.LayerMask) == trait.None {
			maskNone++
		}
		if sel.Get(trait.LayerMouthBase) == trait.PathMouthSmirk {
			smirk++
		}
		if a, ok := m.LookupIn(trait.LayerClothes, sel.Get(trait.LayerClothes)); ok && a.Kind == trait.KindSuit {
			suitDraws++
		}
		if sel.Get(trait.LayerClothesAddon) != trait.None {
			addonPresent++
		}
	}

	// Masks stay rare: 85% none by weight.
	if f := float64(maskNone) / draws; f < 0.80 || f > 0.90 {
		t.Errorf("mask none frequency = %.3f, want ~0.85", f)
	}
	// The smirk is weighted 7 against three siblings at 1.
	if f := float64(smirk) / draws; f < 0.65 || f > 0.75 {
		t.Errorf("smirk frequency = %.3f, want ~0.70", f)
	}
	// The suit-family coin keeps the 12-cell matrix at half the draws.
	if f := float64(suitDraws) / draws; f < 0.45 || f > 0.55 {
		t.Errorf("suit family frequency = %.3f, want ~0.50", f)
	}
	// Overlay addons are never rolled; they require a deliberate pick.
	if addonPresent != 0 {
		t.Errorf("addon appeared in %d random draws, want 0", addonPresent)
	}
}

func TestRandomizeAlwaysAtFixedPoint(t *testing.T) {
	m := trait.Default()
	variant.Classify(m)
	res := rules.NewResolver(m)
	r := New(m, res, DefaultWeights(), rand.New(rand.NewSource(2)))

	for i := 0; i < 1000; i++ {
		sel, err := r.Randomize()
		if err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
		out, err := res.Resolve(sel)
		if err != nil {
			t.Fatalf("draw %d resolve: %v", i, err)
		}
		if len(out.ClearSelections) != 0 || len(out.ForceSelections) != 0 {
			t.Fatalf("draw %d not at a fixed point: %+v (selection %v)", i, out, sel)
		}
	}
}

func TestRandomizeFillsMandatoryLayers(t *testing.T) {
	_, r := newFixture(3)
	// Head is absent here: a drawn bandana mask evicts a drawn helmet,
	// so the rules can legitimately leave it empty.
	always := []trait.Layer{
		trait.LayerBackground,
		trait.LayerBase,
		trait.LayerClothes,
		trait.LayerFacialHair,
		trait.LayerMouthBase,
		trait.LayerEyes,
	}
	for i := 0; i < 500; i++ {
		sel, err := r.Randomize()
		if err != nil {
			t.Fatal(err)
		}
		for _, layer := range always {
			if sel.Get(layer) == trait.None {
				t.Fatalf("draw %d left %s empty", i, layer)
			}
		}
	}
}

func TestRandomizeDeterministicPerSeed(t *testing.T) {
	_, a := newFixture(7)
	_, b := newFixture(7)
	for i := 0; i < 50; i++ {
		sa, err := a.Randomize()
		if err != nil {
			t.Fatal(err)
		}
		sb, err := b.Randomize()
		if err != nil {
			t.Fatal(err)
		}
		if !sa.Equal(sb) {
			t.Fatalf("draw %d diverged between identical seeds: %v vs %v", i, sa, sb)
		}
	}
}

func TestRandomizeNeverDrawsHidden(t *testing.T) {
	m, r := newFixture(4)
	// The hidden companion alternate can only appear through the proxy
	// rule, never as a direct draw without its trigger.
	for i := 0; i < 2000; i++ {
		sel, err := r.Randomize()
		if err != nil {
			t.Fatal(err)
		}
		if sel.Get(trait.LayerHead) != trait.PathHeadphonesOverHood {
			continue
		}
		clothes, ok := m.LookupIn(trait.LayerClothes, sel.Get(trait.LayerClothes))
		if !ok || !clothes.Has(trait.TagHoodie) {
			t.Fatalf("draw %d wears the over-hood rendition without a hood: %v", i, sel)
		}
	}
}

func TestLoadWeightsOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.yaml")
	data := []byte("none:\n  Mask: 0.5\noption:\n  assets/traits/mouth_base/frown.png: 3\nsuit_flip: 0.9\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	w, err := LoadWeights(path)
	if err != nil {
		t.Fatal(err)
	}
	if w.None[trait.LayerMask] != 0.5 {
		t.Errorf("mask none = %v, want overridden 0.5", w.None[trait.LayerMask])
	}
	if w.None[trait.LayerClothesAddon] != 1.0 {
		t.Errorf("addon none = %v, want default 1.0 preserved", w.None[trait.LayerClothesAddon])
	}
	if w.Option[trait.PathMouthSmirk] != 7 {
		t.Errorf("smirk weight = %v, want default 7 preserved", w.Option[trait.PathMouthSmirk])
	}
	if w.Option["assets/traits/mouth_base/frown.png"] != 3 {
		t.Errorf("frown weight = %v, want 3", w.Option["assets/traits/mouth_base/frown.png"])
	}
	if w.SuitFlip != 0.9 {
		t.Errorf("suit flip = %v, want 0.9", w.SuitFlip)
	}

	// An explicit zero is honored, not mistaken for an absent key.
	zeroPath := filepath.Join(t.TempDir(), "zero.yaml")
	if err := os.WriteFile(zeroPath, []byte("suit_flip: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	w, err = LoadWeights(zeroPath)
	if err != nil {
		t.Fatal(err)
	}
	if w.SuitFlip != 0 {
		t.Errorf("suit flip = %v, want explicit 0", w.SuitFlip)
	}
	if w.None[trait.LayerMask] != 0.85 {
		t.Errorf("mask none = %v, want default 0.85 when the file omits it", w.None[trait.LayerMask])
	}

	if _, err := LoadWeights(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file must error")
	}
}
