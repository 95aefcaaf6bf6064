package variant

import (
	"sort"
	"strings"

	"github.com/wojaklabs/wojak-studio/engine/trait"
)

// SuitGroupName names the synthetic group holding the suit matrix
const SuitGroupName = "Suit"

// AddonGroupName names the overlay addon group shown in the Clothes picker
const AddonGroupName = "Chia Farmer"

// canonicalSuit is the default cell of the suit matrix
var canonicalSuit = SuitVariant{SuitColor: "black", AccessoryType: "tie", AccessoryColor: "red"}

// alwaysGroup lists trait families that keep their color-selector
// affordance even with a single member (compared case-insensitively)
var alwaysGroup = map[string]bool{
	"mohawk": true,
}

// Variant is one concrete member of a group
type Variant struct {
	Path     string
	Label    string
	Color    string // "" on a colorless base entry
	Hex      string
	Suit     *SuitVariant // set on suit-matrix members
	Disabled bool
}

// Group bundles raw assets that differ along one dimension
type Group struct {
	BaseName           string
	TargetLayer        trait.Layer // layer a pick writes to (addon groups differ from the picker's layer)
	Variants           []Variant
	DefaultVariantPath string
	Disabled           bool // every member individually disabled
}

// GroupRef answers "which group should the picker show as selected"
// for a concrete asset path
type GroupRef struct {
	BaseName string
	Variant  Variant
}

// Result is the grouped view of one layer's assets
type Result struct {
	Groups      []Group
	Ungrouped   []Variant
	PathToGroup map[string]GroupRef
}

// bucket accumulates one group's members during BuildGroups
type bucket struct {
	baseName string
	target   trait.Layer
	variants []Variant
}

// BuildGroups derives the picker view for a layer. It is a pure
// function of the asset list and the disabled-path set (itself derived
// from the rule resolver), so it is recomputed whenever the selection
// changes. Hidden assets (companion alternates) never surface.
//
// Parser precedence when an asset matches several shapes:
// suit > addon > generic color > ungrouped.
func BuildGroups(assets []trait.Asset, disabled map[string]bool) Result {
	res := Result{PathToGroup: make(map[string]GroupRef)}

	var suitBucket, addonBucket *bucket
	buckets := make(map[string]*bucket) // color groups, keyed by base as authored
	var order []string                  // bucket keys in manifest order
	var plain []trait.Asset             // color-parse failures, pending second pass

	for _, a := range assets {
		if a.Hidden {
			continue
		}
		if sv := ParseSuitVariant(a.Label); sv != nil {
			if suitBucket == nil {
				suitBucket = &bucket{baseName: SuitGroupName, target: a.Layer}
			}
			hex, _ := LookupColor(sv.SuitColor)
			suitBucket.variants = append(suitBucket.variants, Variant{
				Path:     a.Path,
				Label:    a.Label,
				Color:    sv.SuitColor,
				Hex:      hex,
				Suit:     sv,
				Disabled: disabled[a.Path],
			})
			continue
		}
		if av := ParseAddonColorVariant(a.Path, a.Label); av != nil {
			if addonBucket == nil {
				addonBucket = &bucket{baseName: AddonGroupName, target: a.Layer}
			}
			addonBucket.variants = append(addonBucket.variants, Variant{
				Path:     a.Path,
				Label:    a.Label,
				Color:    av.Color,
				Hex:      av.Hex,
				Disabled: disabled[a.Path],
			})
			continue
		}
		if cv := ParseColorVariant(a.Label); cv != nil {
			b, ok := buckets[cv.Base]
			if !ok {
				b = &bucket{baseName: cv.Base, target: a.Layer}
				buckets[cv.Base] = b
				order = append(order, cv.Base)
			}
			b.variants = append(b.variants, Variant{
				Path:     a.Path,
				Label:    a.Label,
				Color:    cv.Color,
				Hex:      cv.Hex,
				Disabled: disabled[a.Path],
			})
			continue
		}
		plain = append(plain, a)
	}

	// Second pass: an ungrouped label that equals an existing group's
	// base name becomes that group's colorless base entry, prepended
	// so default picking prefers it.
	var ungrouped []Variant
	for _, a := range plain {
		if b, ok := buckets[matchBucketKey(buckets, a.Label)]; ok {
			b.variants = append([]Variant{{
				Path:     a.Path,
				Label:    a.Label,
				Disabled: disabled[a.Path],
			}}, b.variants...)
			continue
		}
		ungrouped = append(ungrouped, Variant{
			Path:     a.Path,
			Label:    a.Label,
			Disabled: disabled[a.Path],
		})
	}

	if suitBucket != nil {
		res.Groups = append(res.Groups, finishSuitGroup(suitBucket, res.PathToGroup))
	}
	if addonBucket != nil {
		res.Groups = append(res.Groups, finishGroup(addonBucket, res.PathToGroup))
	}
	for _, key := range order {
		b := buckets[key]
		// A one-member group is just a plain choice, unless the family
		// is flagged to keep its color affordance anyway.
		if len(b.variants) == 1 && !alwaysGroup[strings.ToLower(b.baseName)] {
			ungrouped = append(ungrouped, b.variants[0])
			continue
		}
		res.Groups = append(res.Groups, finishGroup(b, res.PathToGroup))
	}
	res.Ungrouped = ungrouped
	return res
}

// matchBucketKey finds a bucket whose base name equals the label,
// ignoring case and interior spacing
func matchBucketKey(buckets map[string]*bucket, label string) string {
	want := foldLabel(label)
	for key := range buckets {
		if foldLabel(key) == want {
			return key
		}
	}
	return ""
}

func foldLabel(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func finishGroup(b *bucket, pathToGroup map[string]GroupRef) Group {
	g := Group{
		BaseName:    b.baseName,
		TargetLayer: b.target,
		Variants:    b.variants,
		Disabled:    allDisabled(b.variants),
	}
	// Default priority: the colorless base entry when present, else
	// the first entry in manifest order.
	g.DefaultVariantPath = b.variants[0].Path
	for _, v := range b.variants {
		pathToGroup[v.Path] = GroupRef{BaseName: g.BaseName, Variant: v}
	}
	return g
}

// finishSuitGroup picks the suit default: the canonical combination if
// present, else the first cell under the fixed matrix ordering
// (black < orange, tie < bow, accessory color alphabetical)
func finishSuitGroup(b *bucket, pathToGroup map[string]GroupRef) Group {
	g := Group{
		BaseName:    b.baseName,
		TargetLayer: b.target,
		Variants:    b.variants,
		Disabled:    allDisabled(b.variants),
	}
	ranked := make([]Variant, len(b.variants))
	copy(ranked, b.variants)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, z := ranked[i].Suit, ranked[j].Suit
		if a.SuitColor != z.SuitColor {
			return suitColorRank(a.SuitColor) < suitColorRank(z.SuitColor)
		}
		if a.AccessoryType != z.AccessoryType {
			return accessoryRank(a.AccessoryType) < accessoryRank(z.AccessoryType)
		}
		return a.AccessoryColor < z.AccessoryColor
	})
	g.DefaultVariantPath = ranked[0].Path
	for _, v := range b.variants {
		if *v.Suit == canonicalSuit {
			g.DefaultVariantPath = v.Path
			break
		}
	}
	for _, v := range b.variants {
		pathToGroup[v.Path] = GroupRef{BaseName: g.BaseName, Variant: v}
	}
	return g
}

func suitColorRank(c string) int {
	if c == "black" {
		return 0
	}
	return 1
}

func accessoryRank(t string) int {
	if t == "tie" {
		return 0
	}
	return 1
}

func allDisabled(vs []Variant) bool {
	for _, v := range vs {
		if !v.Disabled {
			return false
		}
	}
	return len(vs) > 0
}
