package trait

// None is the empty selection value for a layer
const None = ""

// Selection maps each layer to the chosen asset path, or "" for none.
// One Selection is the entire mutable state of a composition.
type Selection map[Layer]string

// NewSelection creates an empty selection
func NewSelection() Selection {
	return make(Selection, len(Layers))
}

// Get returns the layer's current value ("" when unset)
func (s Selection) Get(layer Layer) string {
	return s[layer]
}

// Set assigns a layer's value. The UI sentinel "None" normalizes to "".
func (s Selection) Set(layer Layer, path string) {
	if path == "None" {
		path = None
	}
	if path == None {
		delete(s, layer)
		return
	}
	s[layer] = path
}

// Clone copies the selection
func (s Selection) Clone() Selection {
	c := make(Selection, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

// Equal reports whether two selections pick the same assets
func (s Selection) Equal(o Selection) bool {
	for _, layer := range Layers {
		if s[layer] != o[layer] {
			return false
		}
	}
	return true
}

// Sanitize drops values that do not exist in the manifest for their
// layer. Stale paths from old UI state are treated as absent, never
// as an error.
func (s Selection) Sanitize(m *Manifest) {
	for layer, path := range s {
		if !m.Valid(layer, path) {
			delete(s, layer)
		}
	}
}
