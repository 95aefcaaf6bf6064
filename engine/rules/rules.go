// Package rules enforces cross-trait compatibility over a selection.
//
// The catalogue is an explicit ordered rule list; each rule is
// independently evaluable and the resolver combines effects by union,
// looping until a pass produces no further clears or forces. Rule
// precedence is the list order below, so adding a rule cannot silently
// reorder existing behavior.
package rules

import (
	"errors"

	"github.com/wojaklabs/wojak-studio/engine/trait"
)

// maxPasses bounds the fixed-point loop. The catalogue is authored so
// no two rules force the same layer in opposite directions; hitting
// the bound indicates a catalogue authoring bug, and the mutation that
// triggered it is rejected.
const maxPasses = 8

// ErrUnstable reports a resolver that failed to reach a fixed point
var ErrUnstable = errors.New("rules: no fixed point within iteration budget")

// Outcome is the pure result of resolving one selection snapshot
type Outcome struct {
	// DisabledLayers maps a fully disabled layer to its affordance
	// reason text (e.g. "choose a base garment first")
	DisabledLayers map[trait.Layer]string
	// DisabledOptions lists individual asset paths the picker must
	// gray out, per layer
	DisabledOptions map[trait.Layer]map[string]bool
	// ClearSelections lists layers whose value was dropped to reach a
	// valid state, relative to the input selection
	ClearSelections []trait.Layer
	// ForceSelections lists values inserted to reach a valid state,
	// relative to the input selection
	ForceSelections map[trait.Layer]string
}

func newOutcome() Outcome {
	return Outcome{
		DisabledLayers:  make(map[trait.Layer]string),
		DisabledOptions: make(map[trait.Layer]map[string]bool),
		ForceSelections: make(map[trait.Layer]string),
	}
}

func (o *Outcome) disableOption(layer trait.Layer, path string) {
	set, ok := o.DisabledOptions[layer]
	if !ok {
		set = make(map[string]bool)
		o.DisabledOptions[layer] = set
	}
	set[path] = true
}

func (o *Outcome) disableLayer(layer trait.Layer, reason string) {
	o.DisabledLayers[layer] = reason
}

// effects collects the clears and forces one pass produced
type effects struct {
	clear map[trait.Layer]bool
	force map[trait.Layer]string
}

// Rule is one independently evaluable constraint
type Rule struct {
	Name  string
	Apply func(m *trait.Manifest, sel trait.Selection, out *Outcome, fx *effects)
}

// Catalogue is the ordered rule list. Order is precedence.
var Catalogue = []Rule{
	{Name: "addon-requires-base-garment", Apply: ruleAddonBase},
	{Name: "companion-asset-proxy", Apply: ruleCompanionProxy},
	{Name: "bandana-mask-blocks-helmet", Apply: ruleBandanaHelmet},
	{Name: "covering-mask-clears-mouth-item", Apply: ruleCoveringMaskMouth},
}

// Resolver evaluates the catalogue against a manifest
type Resolver struct {
	m     *trait.Manifest
	rules []Rule
}

// NewResolver creates a resolver over the standard catalogue
func NewResolver(m *trait.Manifest) *Resolver {
	return &Resolver{m: m, rules: Catalogue}
}

// Resolve computes the rule outcome for a selection snapshot. It is
// pure and total: unknown selection values are treated as absent, and
// the only error is the bounded-iteration cycle guard.
func (r *Resolver) Resolve(sel trait.Selection) (Outcome, error) {
	work := sel.Clone()
	work.Sanitize(r.m)

	for pass := 0; pass < maxPasses; pass++ {
		out := newOutcome()
		fx := &effects{clear: make(map[trait.Layer]bool), force: make(map[trait.Layer]string)}
		for _, rule := range r.rules {
			rule.Apply(r.m, work, &out, fx)
		}

		changed := false
		for layer := range fx.clear {
			if work.Get(layer) != trait.None {
				work.Set(layer, trait.None)
				changed = true
			}
		}
		for layer, path := range fx.force {
			if work.Get(layer) != path {
				work.Set(layer, path)
				changed = true
			}
		}
		if !changed {
			// Stable: report clears/forces relative to the original
			// input so applying the outcome lands on this fixed point.
			for _, layer := range trait.Layers {
				before, after := sel.Get(layer), work.Get(layer)
				if before == after {
					continue
				}
				if after == trait.None {
					out.ClearSelections = append(out.ClearSelections, layer)
				} else {
					out.ForceSelections[layer] = after
				}
			}
			return out, nil
		}
	}
	return Outcome{}, ErrUnstable
}

// Apply returns the normalized selection the outcome lands on
func (r *Resolver) Apply(sel trait.Selection) (trait.Selection, Outcome, error) {
	out, err := r.Resolve(sel)
	if err != nil {
		return nil, Outcome{}, err
	}
	next := sel.Clone()
	next.Sanitize(r.m)
	for _, layer := range out.ClearSelections {
		next.Set(layer, trait.None)
	}
	for layer, path := range out.ForceSelections {
		next.Set(layer, path)
	}
	return next, out, nil
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

// ruleAddonBase: an overlay addon is only worn over a compatible base
// garment. With an addon active, incompatible clothes options are
// disabled and an incompatible base is repaired to the canonical tee.
// With no compatible base selected, the addon options themselves are
// disabled so the picker never offers a dead-end choice.
func ruleAddonBase(m *trait.Manifest, sel trait.Selection, out *Outcome, fx *effects) {
	clothes := lookup(m, trait.LayerClothes, sel)
	compatible := clothes != nil && clothes.Has(trait.TagAddonBase)
	addonActive := sel.Get(trait.LayerClothesAddon) != trait.None

	if addonActive {
		for _, a := range m.Assets(trait.LayerClothes) {
			if !a.Has(trait.TagAddonBase) {
				out.disableOption(trait.LayerClothes, a.Path)
			}
		}
		if !compatible {
			fx.force[trait.LayerClothes] = trait.PathTeeWhite
		}
		return
	}
	if !compatible {
		for _, a := range m.Assets(trait.LayerClothesAddon) {
			out.disableOption(trait.LayerClothesAddon, a.Path)
		}
		out.disableLayer(trait.LayerClothesAddon, "choose a base garment first")
	}
}

// ruleCompanionProxy swaps companion-switched assets to the rendition
// matching the trigger layer's occupancy, in both directions
func ruleCompanionProxy(m *trait.Manifest, sel trait.Selection, _ *Outcome, fx *effects) {
	for _, layer := range trait.Layers {
		a := lookup(m, layer, sel)
		if a == nil || a.Proxy == nil {
			continue
		}
		trigger := lookup(m, a.Proxy.TriggerLayer, sel)
		triggered := trigger != nil && trigger.Has(a.Proxy.TriggerTag)
		if triggered != a.Proxy.IsAlternate {
			fx.force[layer] = a.Proxy.Alternate
		}
	}
}

// ruleBandanaHelmet: a helmet cannot be worn over a mask tied around
// the head. The mask wins: while a bandana-style mask is on, helmet
// head options are disabled and a selected helmet is cleared, so
// removing the mask re-enables them.
func ruleBandanaHelmet(m *trait.Manifest, sel trait.Selection, out *Outcome, fx *effects) {
	mask := lookup(m, trait.LayerMask, sel)
	if mask == nil || !mask.Has(trait.TagBandana) {
		return
	}
	for _, a := range m.Assets(trait.LayerHead) {
		if a.Has(trait.TagHelmet) {
			out.disableOption(trait.LayerHead, a.Path)
		}
	}
	if head := lookup(m, trait.LayerHead, sel); head != nil && head.Has(trait.TagHelmet) {
		fx.clear[trait.LayerHead] = true
	}
}

// ruleCoveringMaskMouth: a mask covering the mouth hides any mouth
// item, so the item is cleared and the layer disabled
func ruleCoveringMaskMouth(m *trait.Manifest, sel trait.Selection, out *Outcome, fx *effects) {
	mask := lookup(m, trait.LayerMask, sel)
	if mask == nil || !mask.Has(trait.TagCoveringMask) {
		return
	}
	for _, a := range m.Assets(trait.LayerMouthItem) {
		out.disableOption(trait.LayerMouthItem, a.Path)
	}
	out.disableLayer(trait.LayerMouthItem, "this mask covers the mouth")
	if sel.Get(trait.LayerMouthItem) != trait.None {
		fx.clear[trait.LayerMouthItem] = true
	}
}
