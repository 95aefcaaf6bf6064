package variant

import "github.com/wojaklabs/wojak-studio/engine/trait"

// Classify stamps each manifest asset with its parsed trait kind.
// Called once at startup so selection-time code dispatches on the
// tagged union instead of re-parsing label strings.
func Classify(m *trait.Manifest) {
	m.Stamp(func(a *trait.Asset) {
		switch {
		case ParseSuitVariant(a.Label) != nil:
			a.Kind = trait.KindSuit
		case ParseAddonColorVariant(a.Path, a.Label) != nil:
			a.Kind = trait.KindAddon
		case ParseColorVariant(a.Label) != nil:
			a.Kind = trait.KindColor
		default:
			a.Kind = trait.KindPlain
		}
	})
}
