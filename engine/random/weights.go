// Package random produces full valid selections by weighted sampling.
package random

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wojaklabs/wojak-studio/engine/trait"
)

// Weights is the declarative per-layer sampling table. One generic
// sampler consumes it for every layer; there are no inline probability
// checks scattered per layer.
type Weights struct {
	// None is the probability of leaving a layer empty. Layers not
	// listed always receive a trait.
	None map[trait.Layer]float64 `yaml:"none"`

	// Option overrides a single asset path's relative weight within
	// its pool (unlisted paths weigh 1).
	Option map[string]float64 `yaml:"option"`

	// SuitFlip is the chance of sampling from the suit family when a
	// layer offers both suit-matrix and plain options. The flip keeps
	// the large suit matrix from statistically dominating.
	SuitFlip float64 `yaml:"suit_flip"`
}

// DefaultWeights returns the product's distribution: masks are rare,
// the smirk is the deliberately common mouth, overlay addons are
// never rolled (they require a deliberate base-garment pick), and the
// suit family gets a fair coin against everything else.
func DefaultWeights() Weights {
	return Weights{
		None: map[trait.Layer]float64{
			trait.LayerMask:         0.85,
			trait.LayerClothesAddon: 1.0,
		},
		Option: map[string]float64{
			// 7 against three siblings at weight 1 ≈ 70% of draws.
			trait.PathMouthSmirk: 7,
		},
		SuitFlip: 0.5,
	}
}

// LoadWeights reads a YAML override file on top of the defaults.
// Missing sections keep their default values.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights()
	data, err := os.ReadFile(path)
	if err != nil {
		return Weights{}, err
	}
	// SuitFlip is a pointer here so an explicit zero in the file is
	// distinguishable from the key being absent.
	var file struct {
		None     map[trait.Layer]float64 `yaml:"none"`
		Option   map[string]float64      `yaml:"option"`
		SuitFlip *float64                `yaml:"suit_flip"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Weights{}, fmt.Errorf("weights %s: %w", path, err)
	}
	for layer, v := range file.None {
		w.None[layer] = v
	}
	for opt, v := range file.Option {
		w.Option[opt] = v
	}
	if file.SuitFlip != nil {
		w.SuitFlip = *file.SuitFlip
	}
	return w, nil
}

// optionWeight returns an asset's relative weight within its pool
func (w Weights) optionWeight(path string) float64 {
	if v, ok := w.Option[path]; ok {
		return v
	}
	return 1
}
