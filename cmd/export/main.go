// Command export composites a wojak portrait without opening a window.
// It renders either a saved selection file or a seeded random draw and
// writes the result as a PNG.
//
// Usage:
//
//	export -selection portrait.json -out wojak.png
//	export -seed 42 -out wojak.png
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"math/rand"
	"os"

	"github.com/wojaklabs/wojak-studio/engine/compose"
	"github.com/wojaklabs/wojak-studio/engine/config"
	"github.com/wojaklabs/wojak-studio/engine/random"
	"github.com/wojaklabs/wojak-studio/engine/render"
	"github.com/wojaklabs/wojak-studio/engine/rules"
	"github.com/wojaklabs/wojak-studio/engine/trait"
	"github.com/wojaklabs/wojak-studio/engine/variant"
)

func main() {
	selPath := flag.String("selection", "", "selection JSON file to render")
	seed := flag.Int64("seed", 0, "seed for a random draw (used when -selection is empty)")
	out := flag.String("out", "wojak.png", "output PNG path")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	manifest := trait.Default()
	if cfg.ManifestPath != "" {
		manifest, err = trait.LoadJSON(cfg.ManifestPath)
		if err != nil {
			log.Fatalf("Failed to load manifest: %v", err)
		}
	}
	variant.Classify(manifest)
	resolver := rules.NewResolver(manifest)

	sel, err := buildSelection(cfg, manifest, resolver, *selPath, *seed)
	if err != nil {
		log.Fatal(err)
	}

	entries, err := compose.BuildPaintList(manifest, sel)
	if err != nil {
		log.Fatalf("Failed to build paint list: %v", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, cfg.CanvasWidth, cfg.CanvasHeight))
	painter := render.NewPainter(render.DirLoader{Root: cfg.AssetsDir})
	for _, w := range painter.Render(img, entries) {
		log.Printf("warning: %s", w)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("Failed to encode %s: %v", *out, err)
	}
	log.Printf("Wrote %s (%d layers)", *out, len(entries))
}

// buildSelection loads the selection file, or draws a random one when
// no file is given. Both paths run through the rule resolver so the
// output always honors the trait rules.
func buildSelection(cfg config.Config, m *trait.Manifest, res *rules.Resolver, selPath string, seed int64) (trait.Selection, error) {
	if selPath == "" {
		weights := random.DefaultWeights()
		if cfg.WeightsPath != "" {
			var err error
			weights, err = random.LoadWeights(cfg.WeightsPath)
			if err != nil {
				return nil, fmt.Errorf("load weights: %w", err)
			}
		}
		rng := rand.New(rand.NewSource(seed))
		return random.New(m, res, weights, rng).Randomize()
	}

	data, err := os.ReadFile(selPath)
	if err != nil {
		return nil, err
	}
	var raw map[trait.Layer]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("selection %s: %w", selPath, err)
	}
	sel := trait.NewSelection()
	for layer, path := range raw {
		sel.Set(layer, path)
	}
	sel.Sanitize(m)
	sel, _, err = res.Apply(sel)
	if err != nil {
		return nil, fmt.Errorf("selection %s: %w", selPath, err)
	}
	return sel, nil
}
