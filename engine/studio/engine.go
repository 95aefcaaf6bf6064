// Package studio is the engine facade the UI and tools talk to: it
// owns the current selection and runs every mutation through the rule
// resolver before it becomes visible.
package studio

import (
	"math/rand"
	"sync"

	"github.com/wojaklabs/wojak-studio/engine/compose"
	"github.com/wojaklabs/wojak-studio/engine/random"
	"github.com/wojaklabs/wojak-studio/engine/rules"
	"github.com/wojaklabs/wojak-studio/engine/trait"
	"github.com/wojaklabs/wojak-studio/engine/variant"
)

// Engine owns one composition session. There is a single logical
// owner of the selection at a time; the mutex only guards the
// reference swap between logical steps.
type Engine struct {
	manifest   *trait.Manifest
	resolver   *rules.Resolver
	randomizer *random.Randomizer
	Bus        *EventBus

	mu      sync.Mutex
	sel     trait.Selection
	outcome rules.Outcome
	gen     uint64
}

// New creates an engine over a manifest. Trait kinds are classified
// once here; the manifest is read-only afterwards.
func New(m *trait.Manifest, w random.Weights, rng *rand.Rand) *Engine {
	variant.Classify(m)
	resolver := rules.NewResolver(m)
	e := &Engine{
		manifest:   m,
		resolver:   resolver,
		randomizer: random.New(m, resolver, w, rng),
		Bus:        NewEventBus(),
		sel:        trait.NewSelection(),
	}

	// Starting portrait: base wojak on a plain background.
	e.sel.Set(trait.LayerBackground, trait.PathFor(trait.LayerBackground, "plain_white"))
	e.sel.Set(trait.LayerBase, trait.PathFor(trait.LayerBase, "classic"))
	e.sel.Set(trait.LayerMouthBase, trait.PathMouthSmirk)
	sel, out, err := resolver.Apply(e.sel)
	if err != nil {
		// The starting portrait is authored here; an unstable resolve
		// over it is a catalogue authoring bug, not a runtime condition.
		panic(err)
	}
	e.sel, e.outcome = sel, out
	return e
}

// Manifest exposes the read-only catalogue
func (e *Engine) Manifest() *trait.Manifest {
	return e.manifest
}

// SelectTrait is the sole mutation entry point. The new value runs
// through the rule resolver; if the resolver cannot reach a fixed
// point the mutation is rejected and the prior selection retained.
func (e *Engine) SelectTrait(layer trait.Layer, path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.sel.Clone()
	next.Set(layer, path)
	sel, out, err := e.resolver.Apply(next)
	if err != nil {
		e.Bus.Emit(Event{Type: EvtMutationRejected, Gen: e.gen, Payload: err})
		return err
	}
	e.commit(sel, out)
	return nil
}

// RandomizeAll replaces the whole selection with a weighted random
// draw, already normalized by the rule resolver
func (e *Engine) RandomizeAll() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	sel, err := e.randomizer.Randomize()
	if err != nil {
		e.Bus.Emit(Event{Type: EvtMutationRejected, Gen: e.gen, Payload: err})
		return err
	}
	out, err := e.resolver.Resolve(sel)
	if err != nil {
		return err
	}
	e.commit(sel, out)
	e.Bus.Emit(Event{Type: EvtRandomized, Gen: e.gen})
	return nil
}

func (e *Engine) commit(sel trait.Selection, out rules.Outcome) {
	e.sel = sel
	e.outcome = out
	e.gen++
	e.Bus.Emit(Event{Type: EvtSelectionChanged, Gen: e.gen})
}

// Selection returns a snapshot copy of the current selection
func (e *Engine) Selection() trait.Selection {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sel.Clone()
}

// Generation returns the mutation counter. Renders tagged with an
// older generation are stale and must be discarded.
func (e *Engine) Generation() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gen
}

// CurrentPaintList expands the current selection for the renderer
func (e *Engine) CurrentPaintList() ([]compose.PaintEntry, uint64, error) {
	e.mu.Lock()
	sel := e.sel.Clone()
	gen := e.gen
	e.mu.Unlock()

	entries, err := compose.BuildPaintList(e.manifest, sel)
	return entries, gen, err
}

// DisabledLayers returns the fully disabled layers with their
// affordance reason text
func (e *Engine) DisabledLayers() map[trait.Layer]string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[trait.Layer]string, len(e.outcome.DisabledLayers))
	for layer, reason := range e.outcome.DisabledLayers {
		out[layer] = reason
	}
	return out
}

// OptionView is one row of a layer picker: either a plain trait or a
// variant group with its color/accessory sub-choices
type OptionView struct {
	Label    string
	Path     string         // plain: the asset path; group: the default variant path
	Group    *variant.Group // nil for plain options
	Disabled bool
	Active   bool
	// ActiveVariant is the concrete member currently selected when
	// this group is active (drives the color-dot row)
	ActiveVariant *variant.Variant
}

// GroupedOptions projects a layer's assets into picker rows. The
// Clothes picker also surfaces the overlay addon group; selecting it
// writes the ClothesAddon slot (see Group.TargetLayer).
func (e *Engine) GroupedOptions(layer trait.Layer) []OptionView {
	e.mu.Lock()
	sel := e.sel.Clone()
	out := e.outcome
	e.mu.Unlock()

	assets := e.manifest.Assets(layer)
	disabled := make(map[string]bool)
	for p := range out.DisabledOptions[layer] {
		disabled[p] = true
	}
	if layer == trait.LayerClothes {
		assets = append(append([]trait.Asset(nil), assets...), e.manifest.Assets(trait.LayerClothesAddon)...)
		for p := range out.DisabledOptions[trait.LayerClothesAddon] {
			disabled[p] = true
		}
	}

	grouped := variant.BuildGroups(assets, disabled)

	views := make([]OptionView, 0, len(grouped.Groups)+len(grouped.Ungrouped))
	for i := range grouped.Groups {
		g := &grouped.Groups[i]
		view := OptionView{
			Label:    g.BaseName,
			Path:     g.DefaultVariantPath,
			Group:    g,
			Disabled: g.Disabled,
		}
		if ref, ok := grouped.PathToGroup[sel.Get(g.TargetLayer)]; ok && ref.BaseName == g.BaseName {
			view.Active = true
			v := ref.Variant
			view.ActiveVariant = &v
		}
		views = append(views, view)
	}
	for _, v := range grouped.Ungrouped {
		views = append(views, OptionView{
			Label:    v.Label,
			Path:     v.Path,
			Disabled: v.Disabled,
			Active:   sel.Get(layer) == v.Path,
		})
	}
	return views
}
