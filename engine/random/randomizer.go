package random

import (
	"math/rand"

	"github.com/wojaklabs/wojak-studio/engine/rules"
	"github.com/wojaklabs/wojak-studio/engine/trait"
)

// Randomizer samples full selections from the weight table
type Randomizer struct {
	m   *trait.Manifest
	res *rules.Resolver
	w   Weights
	rng *rand.Rand
}

// New creates a randomizer. The caller supplies the rand source so
// tests can seed it deterministically.
func New(m *trait.Manifest, res *rules.Resolver, w Weights, rng *rand.Rand) *Randomizer {
	return &Randomizer{m: m, res: res, w: w, rng: rng}
}

// Randomize produces a self-consistent full selection: per-layer
// weighted sampling first, then a pass through the rule resolver to
// repair any invalid combination. The returned selection is always at
// a fixed point.
func (r *Randomizer) Randomize() (trait.Selection, error) {
	draft := trait.NewSelection()
	for _, layer := range trait.Layers {
		draft.Set(layer, r.sampleLayer(layer))
	}
	sel, _, err := r.res.Apply(draft)
	if err != nil {
		return nil, err
	}
	return sel, nil
}

// sampleLayer draws one layer's value from its weighted pool
func (r *Randomizer) sampleLayer(layer trait.Layer) string {
	if none := r.w.None[layer]; none > 0 && r.rng.Float64() < none {
		return trait.None
	}

	var suits, others []trait.Asset
	for _, a := range r.m.Assets(layer) {
		if a.Hidden {
			continue
		}
		if a.Kind == trait.KindSuit {
			suits = append(suits, a)
		} else {
			others = append(others, a)
		}
	}

	pool := append(others, suits...)
	if len(suits) > 0 && len(others) > 0 {
		// Fair coin between the suit family and everything else, so
		// the 12-cell matrix does not swamp the plain garments.
		if r.rng.Float64() < r.w.SuitFlip {
			pool = suits
		} else {
			pool = others
		}
	}
	if len(pool) == 0 {
		return trait.None
	}

	total := 0.0
	for _, a := range pool {
		total += r.w.optionWeight(a.Path)
	}
	roll := r.rng.Float64() * total
	for _, a := range pool {
		roll -= r.w.optionWeight(a.Path)
		if roll < 0 {
			return a.Path
		}
	}
	return pool[len(pool)-1].Path
}
