// Package variant turns raw asset labels into grouped picker choices.
//
// Labels are free-text asset filenames, so parsing is conservative:
// two unrelated traits must never end up in one group, and the same
// label always yields the same parse. Anything the parsers do not
// recognize stays an ungrouped plain choice.
package variant

import "strings"

// ColorVariant is a label parsed as "base trait + color dimension"
type ColorVariant struct {
	Base  string
	Color string
	Hex   string
}

// SuitVariant is a label parsed as one cell of the suit matrix
type SuitVariant struct {
	SuitColor      string
	AccessoryType  string // "tie" or "bow"
	AccessoryColor string
}

// AddonVariant is an overlay addon parsed down to its color dimension
type AddonVariant struct {
	Color string
	Hex   string
}

// suitColors restricts the garment color dimension of the suit matrix
var suitColors = map[string]bool{"black": true, "orange": true}

// addonColors whitelists the overlay addon color dimension
var addonColors = map[string]bool{"blue": true, "brown": true, "orange": true, "red": true}

// ParseColorVariant recognizes four label shapes, tried in order:
// "Name (Color)", "Name, Color", "Name neon green" (multi-word color
// token matched atomically), and "Name Color" (last token). The first
// shape that matches and resolves its color token wins; otherwise the
// label is ungrouped and nil is returned.
func ParseColorVariant(label string) *ColorVariant {
	label = strings.TrimSpace(label)

	// "Name (Color)"
	if strings.HasSuffix(label, ")") {
		if open := strings.LastIndex(label, "("); open > 0 {
			color := strings.TrimSpace(label[open+1 : len(label)-1])
			base := strings.TrimSpace(label[:open])
			if hex, ok := LookupColor(color); ok && base != "" {
				return &ColorVariant{Base: base, Color: color, Hex: hex}
			}
		}
	}

	// "Name, Color"
	if comma := strings.LastIndex(label, ","); comma > 0 {
		color := strings.TrimSpace(label[comma+1:])
		base := strings.TrimSpace(label[:comma])
		if hex, ok := LookupColor(color); ok && base != "" {
			return &ColorVariant{Base: base, Color: color, Hex: hex}
		}
	}

	// "Name neon green": multi-word tokens before the generic tail
	lower := strings.ToLower(label)
	for _, color := range multiWordColors {
		suffix := " " + color
		if strings.HasSuffix(lower, suffix) {
			base := strings.TrimSpace(label[:len(label)-len(suffix)])
			if hex, ok := LookupColor(color); ok && base != "" {
				return &ColorVariant{Base: base, Color: color, Hex: hex}
			}
		}
	}

	// "Name Color": last whitespace-delimited token
	if space := strings.LastIndexByte(label, ' '); space > 0 {
		color := label[space+1:]
		base := strings.TrimSpace(label[:space])
		if hex, ok := LookupColor(color); ok && base != "" {
			return &ColorVariant{Base: base, Color: color, Hex: hex}
		}
	}

	return nil
}

// ParseSuitVariant matches "suit <black|orange> <color> <tie|bow>".
// Anything else, including unknown accessory colors, returns nil.
func ParseSuitVariant(label string) *SuitVariant {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(label)))
	if len(fields) != 4 || fields[0] != "suit" {
		return nil
	}
	if !suitColors[fields[1]] {
		return nil
	}
	if _, ok := LookupColor(fields[2]); !ok {
		return nil
	}
	if fields[3] != "tie" && fields[3] != "bow" {
		return nil
	}
	return &SuitVariant{
		SuitColor:      fields[1],
		AccessoryType:  fields[3],
		AccessoryColor: fields[2],
	}
}

// ParseAddonColorVariant matches the chia-farmer overlay family: both
// "chia" and "farmer" must appear in the path or label, and the label
// must end in one of the whitelisted addon colors.
func ParseAddonColorVariant(path, label string) *AddonVariant {
	haystack := strings.ToLower(path + " " + label)
	if !strings.Contains(haystack, "chia") || !strings.Contains(haystack, "farmer") {
		return nil
	}
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(label)))
	if len(fields) == 0 {
		return nil
	}
	color := fields[len(fields)-1]
	if !addonColors[color] {
		return nil
	}
	hex, _ := LookupColor(color)
	return &AddonVariant{Color: color, Hex: hex}
}
