package variant

import "testing"

func TestParseColorVariant(t *testing.T) {
	tests := []struct {
		label     string
		wantBase  string
		wantColor string
	}{
		{"Tee (White)", "Tee", "White"},
		{"Plain (Mint)", "Plain", "Mint"},
		{"Doo Rag, Black", "Doo Rag", "Black"},
		{"Mohawk neon green", "Mohawk", "neon green"},
		{"Bandana Red", "Bandana", "Red"},
		{"Beanie (Gray)", "Beanie", "Gray"},
		{"Wifebeater", "", ""},
		{"Smirk", "", ""},
		{"suit black red tie", "", ""},
		{"(Red)", "", ""},
		{"Shades (Chartreuse)", "", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		got := ParseColorVariant(tt.label)
		if tt.wantBase == "" {
			if got != nil {
				t.Errorf("ParseColorVariant(%q) = %+v, want nil", tt.label, got)
			}
			continue
		}
		if got == nil {
			t.Errorf("ParseColorVariant(%q) = nil, want base %q", tt.label, tt.wantBase)
			continue
		}
		if got.Base != tt.wantBase || got.Color != tt.wantColor {
			t.Errorf("ParseColorVariant(%q) = (%q, %q), want (%q, %q)",
				tt.label, got.Base, got.Color, tt.wantBase, tt.wantColor)
		}
		if got.Hex == "" {
			t.Errorf("ParseColorVariant(%q) resolved no hex", tt.label)
		}
	}
}

func TestParseColorVariantShapePrecedence(t *testing.T) {
	// The parenthesized shape must win over the trailing-token shape.
	got := ParseColorVariant("Red (White)")
	if got == nil || got.Base != "Red" || got.Color != "White" {
		t.Fatalf("ParseColorVariant(\"Red (White)\") = %+v, want base Red color White", got)
	}
}

func TestParseSuitVariant(t *testing.T) {
	tests := []struct {
		label string
		want  *SuitVariant
	}{
		{"suit black red tie", &SuitVariant{SuitColor: "black", AccessoryType: "tie", AccessoryColor: "red"}},
		{"suit orange gold bow", &SuitVariant{SuitColor: "orange", AccessoryType: "bow", AccessoryColor: "gold"}},
		{"Suit Black Blue Tie", &SuitVariant{SuitColor: "black", AccessoryType: "tie", AccessoryColor: "blue"}},
		{"suit purple red tie", nil},       // jacket color outside the matrix
		{"suit black chartreuse tie", nil}, // unknown accessory color
		{"suit black red cravat", nil},     // unknown knot
		{"suit black red", nil},            // too few fields
		{"blazer black red tie", nil},
	}
	for _, tt := range tests {
		got := ParseSuitVariant(tt.label)
		if tt.want == nil {
			if got != nil {
				t.Errorf("ParseSuitVariant(%q) = %+v, want nil", tt.label, got)
			}
			continue
		}
		if got == nil {
			t.Errorf("ParseSuitVariant(%q) = nil, want %+v", tt.label, tt.want)
			continue
		}
		if *got != *tt.want {
			t.Errorf("ParseSuitVariant(%q) = %+v, want %+v", tt.label, got, tt.want)
		}
	}
}

func TestParseAddonColorVariant(t *testing.T) {
	path := "assets/traits/clothes_addon/chia_farmer_blue.png"
	tests := []struct {
		path, label string
		wantColor   string
	}{
		{path, "Chia Farmer Overalls Blue", "blue"},
		{path, "Chia Farmer Overalls Red", "red"},
		{"assets/traits/clothes_addon/overalls_green.png", "Chia Farmer Overalls Green", ""}, // green not whitelisted
		{"assets/traits/clothes/tee_blue.png", "Tee Blue", ""},                               // not the chia family
		{path, "Chia Farmer Overalls", ""},                                                   // no trailing color
	}
	for _, tt := range tests {
		got := ParseAddonColorVariant(tt.path, tt.label)
		if tt.wantColor == "" {
			if got != nil {
				t.Errorf("ParseAddonColorVariant(%q, %q) = %+v, want nil", tt.path, tt.label, got)
			}
			continue
		}
		if got == nil || got.Color != tt.wantColor {
			t.Errorf("ParseAddonColorVariant(%q, %q) = %+v, want color %q", tt.path, tt.label, got, tt.wantColor)
		}
	}
}

func TestLookupColor(t *testing.T) {
	if hex, ok := LookupColor("Neon Green"); !ok || hex != "#39FF14" {
		t.Errorf("LookupColor(Neon Green) = %q, %v", hex, ok)
	}
	if hex, ok := LookupColor("grey"); !ok || hex != "#8A8A8A" {
		t.Errorf("LookupColor(grey) = %q, %v", hex, ok)
	}
	if _, ok := LookupColor("chartreuse"); ok {
		t.Error("LookupColor(chartreuse) should not resolve")
	}
}
