package variant

import "strings"

// colorHex is the fixed color-name table variant labels resolve
// against. Lookup is case-insensitive; a label whose color token is
// not listed here stays ungrouped.
var colorHex = map[string]string{
	"white":      "#FFFFFF",
	"black":      "#1A1A1A",
	"gray":       "#8A8A8A",
	"grey":       "#8A8A8A",
	"red":        "#D84C3E",
	"blue":       "#3E6FD8",
	"green":      "#3E9B4F",
	"neon green": "#39FF14",
	"navy":       "#203A63",
	"gold":       "#D4AF37",
	"brown":      "#7B4F2A",
	"orange":     "#E8821E",
	"purple":     "#7D4FB0",
	"pink":       "#E87EA1",
	"mint":       "#9FE2BF",
	"yellow":     "#E8D44D",
}

// multiWordColors lists color tokens longer than one word, matched
// atomically before the single-token fallback
var multiWordColors = []string{"neon green"}

// LookupColor resolves a color name to its hex value
func LookupColor(name string) (string, bool) {
	hex, ok := colorHex[strings.ToLower(strings.TrimSpace(name))]
	return hex, ok
}
