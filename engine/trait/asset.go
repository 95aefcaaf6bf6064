package trait

// Kind classifies how an asset's label was parsed at manifest load.
// Classification happens exactly once; nothing downstream re-parses
// label strings at selection time.
type Kind uint8

const (
	KindPlain Kind = iota // ungrouped single trait
	KindColor             // member of a color-variant group
	KindSuit              // member of the suit matrix
	KindAddon             // overlay addon worn over a base garment
)

// Tag marks a trait family the rules and compositor key off
type Tag uint16

const (
	TagAstronaut      Tag = 1 << iota // costume painted in the astronaut virtual slot
	TagHannibal                       // mask painted in the hannibal virtual slot
	TagCoveringMask                   // mask that covers the mouth region
	TagEyeCoveringMask                // mask that also covers the eye region
	TagTysonTattoo                    // eyes trait painted under any occupied mask
	TagTurtleBand                     // eyes trait painted under eye-covering masks
	TagAddonBase                      // garment an overlay addon can be worn over
	TagHoodie                         // garment that triggers the over-hood headphone swap
	TagBandana                        // mask tied around the head
	TagHelmet                         // headwear incompatible with bandana masks
)

// Proxy links the two renditions of a companion-switched asset.
// The resolver swaps Path for Alternate while the trigger layer holds
// a selection carrying TriggerTag, and back once it no longer does.
type Proxy struct {
	TriggerLayer Layer
	TriggerTag   Tag
	Alternate    string // the other rendition's path
	IsAlternate  bool   // true on the swapped-in rendition
}

// Asset is one selectable raster image in the catalogue
type Asset struct {
	Layer  Layer
	Label  string
	Path   string
	Kind   Kind
	Tags   Tag
	Proxy  *Proxy
	Hidden bool // companion alternates are swapped in, never picked
}

// Has reports whether the asset carries a family tag
func (a Asset) Has(t Tag) bool {
	return a.Tags&t != 0
}
