// Command rarity_stats estimates the trait distribution the randomizer
// produces: it draws N full selections and writes per-layer counts as
// JSON, with selection frequencies per asset label.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/wojaklabs/wojak-studio/engine/random"
	"github.com/wojaklabs/wojak-studio/engine/rules"
	"github.com/wojaklabs/wojak-studio/engine/trait"
	"github.com/wojaklabs/wojak-studio/engine/variant"
)

type layerStats struct {
	Layer  trait.Layer        `json:"layer"`
	None   int                `json:"none"`
	Counts map[string]int     `json:"counts"`
	Freq   map[string]float64 `json:"freq"`
}

func main() {
	draws := flag.Int("n", 10000, "number of random draws")
	seed := flag.Int64("seed", 1, "random seed")
	weightsPath := flag.String("weights", "", "optional YAML weight override file")
	out := flag.String("out", "", "output file (stdout when empty)")
	flag.Parse()

	m := trait.Default()
	variant.Classify(m)
	resolver := rules.NewResolver(m)

	weights := random.DefaultWeights()
	if *weightsPath != "" {
		var err error
		weights, err = random.LoadWeights(*weightsPath)
		if err != nil {
			log.Fatalf("Failed to load weights: %v", err)
		}
	}

	rng := rand.New(rand.NewSource(*seed))
	rnd := random.New(m, resolver, weights, rng)

	// Count by label so the report reads like the picker, not like
	// file paths.
	labels := make(map[string]string)
	for _, layer := range trait.Layers {
		for _, a := range m.Assets(layer) {
			labels[a.Path] = a.Label
		}
	}

	stats := make(map[trait.Layer]*layerStats, len(trait.Layers))
	for _, layer := range trait.Layers {
		stats[layer] = &layerStats{Layer: layer, Counts: make(map[string]int)}
	}

	for i := 0; i < *draws; i++ {
		sel, err := rnd.Randomize()
		if err != nil {
			log.Fatalf("draw %d: %v", i, err)
		}
		for _, layer := range trait.Layers {
			path := sel.Get(layer)
			if path == trait.None {
				stats[layer].None++
				continue
			}
			stats[layer].Counts[labels[path]]++
		}
	}

	report := make([]*layerStats, 0, len(trait.Layers))
	for _, layer := range trait.Layers {
		st := stats[layer]
		st.Freq = make(map[string]float64, len(st.Counts))
		for label, n := range st.Counts {
			st.Freq[label] = float64(n) / float64(*draws)
		}
		report = append(report, st)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if *out == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s (%d draws)", *out, *draws)
}
