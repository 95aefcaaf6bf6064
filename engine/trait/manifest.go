package trait

import (
	"encoding/json"
	"fmt"
	"os"
)

// Manifest is the static trait catalogue, loaded once at startup and
// read-only afterwards. Asset paths are the identity keys used by
// selections, grouping maps, and the renderer.
type Manifest struct {
	ByLayer map[Layer][]Asset

	byPath map[Layer]map[string]int
}

// New builds a manifest from an asset list, preserving per-layer order
func New(assets []Asset) (*Manifest, error) {
	m := &Manifest{
		ByLayer: make(map[Layer][]Asset),
		byPath:  make(map[Layer]map[string]int),
	}
	seen := make(map[string]Layer)
	for _, a := range assets {
		if a.Path == "" {
			return nil, fmt.Errorf("manifest: asset %q has no path", a.Label)
		}
		if prev, ok := seen[a.Path]; ok {
			return nil, fmt.Errorf("manifest: duplicate path %s (layers %s, %s)", a.Path, prev, a.Layer)
		}
		seen[a.Path] = a.Layer
		m.ByLayer[a.Layer] = append(m.ByLayer[a.Layer], a)
	}
	for layer, list := range m.ByLayer {
		idx := make(map[string]int, len(list))
		for i, a := range list {
			idx[a.Path] = i
		}
		m.byPath[layer] = idx
	}
	return m, nil
}

// Assets returns the layer's assets in manifest order
func (m *Manifest) Assets(layer Layer) []Asset {
	return m.ByLayer[layer]
}

// Lookup finds an asset by path across all layers
func (m *Manifest) Lookup(path string) (*Asset, bool) {
	for layer, idx := range m.byPath {
		if i, ok := idx[path]; ok {
			return &m.ByLayer[layer][i], true
		}
	}
	return nil, false
}

// LookupIn finds an asset by path within one layer
func (m *Manifest) LookupIn(layer Layer, path string) (*Asset, bool) {
	idx, ok := m.byPath[layer]
	if !ok {
		return nil, false
	}
	i, ok := idx[path]
	if !ok {
		return nil, false
	}
	return &m.ByLayer[layer][i], true
}

// Valid reports whether a selection value is legal for a layer.
// The empty value is always legal; unknown paths are not.
func (m *Manifest) Valid(layer Layer, path string) bool {
	if path == "" {
		return true
	}
	_, ok := m.LookupIn(layer, path)
	return ok
}

// Stamp applies fn to every asset in place. Used once at startup to
// attach parsed trait kinds; the manifest is read-only afterwards.
func (m *Manifest) Stamp(fn func(*Asset)) {
	for layer := range m.ByLayer {
		list := m.ByLayer[layer]
		for i := range list {
			fn(&list[i])
		}
	}
}

// manifestFile is the JSON serialization of a manifest
type manifestFile struct {
	Assets []assetFile `json:"assets"`
}

type assetFile struct {
	Layer  Layer  `json:"layer"`
	Label  string `json:"label"`
	Path   string `json:"path"`
	Tags   Tag    `json:"tags,omitempty"`
	Hidden bool   `json:"hidden,omitempty"`

	ProxyTriggerLayer Layer  `json:"proxy_trigger_layer,omitempty"`
	ProxyTriggerTag   Tag    `json:"proxy_trigger_tag,omitempty"`
	ProxyAlternate    string `json:"proxy_alternate,omitempty"`
	ProxyIsAlternate  bool   `json:"proxy_is_alternate,omitempty"`
}

// SaveJSON writes the manifest to a JSON file
func (m *Manifest) SaveJSON(path string) error {
	var mf manifestFile
	for _, layer := range Layers {
		for _, a := range m.ByLayer[layer] {
			af := assetFile{
				Layer:  a.Layer,
				Label:  a.Label,
				Path:   a.Path,
				Tags:   a.Tags,
				Hidden: a.Hidden,
			}
			if a.Proxy != nil {
				af.ProxyTriggerLayer = a.Proxy.TriggerLayer
				af.ProxyTriggerTag = a.Proxy.TriggerTag
				af.ProxyAlternate = a.Proxy.Alternate
				af.ProxyIsAlternate = a.Proxy.IsAlternate
			}
			mf.Assets = append(mf.Assets, af)
		}
	}
	data, err := json.MarshalIndent(mf, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadJSON loads a manifest from a JSON file
func LoadJSON(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var mf manifestFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	assets := make([]Asset, 0, len(mf.Assets))
	for _, af := range mf.Assets {
		a := Asset{
			Layer:  af.Layer,
			Label:  af.Label,
			Path:   af.Path,
			Tags:   af.Tags,
			Hidden: af.Hidden,
		}
		if af.ProxyAlternate != "" {
			a.Proxy = &Proxy{
				TriggerLayer: af.ProxyTriggerLayer,
				TriggerTag:   af.ProxyTriggerTag,
				Alternate:    af.ProxyAlternate,
				IsAlternate:  af.ProxyIsAlternate,
			}
		}
		assets = append(assets, a)
	}
	return New(assets)
}
