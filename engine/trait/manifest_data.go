package trait

import "path"

// assetRoot is the path prefix every catalogue entry lives under.
// Paths use forward slashes everywhere because they are identity keys;
// the bitmap loader maps them to OS paths.
const assetRoot = "assets/traits"

// entry is one row of the built-in catalogue tables
type entry struct {
	label  string
	file   string
	tags   Tag
	hidden bool
}

var backgroundEntries = []entry{
	{label: "Plain (White)", file: "plain_white"},
	{label: "Plain (Gray)", file: "plain_gray"},
	{label: "Plain (Mint)", file: "plain_mint"},
	{label: "Sunset", file: "sunset"},
	{label: "Matrix", file: "matrix"},
	{label: "City", file: "city"},
}

var baseEntries = []entry{
	{label: "Classic", file: "classic"},
	{label: "Pink", file: "pink"},
	{label: "Gray", file: "gray"},
	{label: "Zoomer", file: "zoomer"},
}

var clothesEntries = []entry{
	{label: "Tee (White)", file: "tee_white", tags: TagAddonBase},
	{label: "Tee (Black)", file: "tee_black", tags: TagAddonBase},
	{label: "Tee (Red)", file: "tee_red", tags: TagAddonBase},
	{label: "Tank (White)", file: "tank_white", tags: TagAddonBase},
	{label: "Tank (Green)", file: "tank_green", tags: TagAddonBase},
	{label: "Hoodie (Gray)", file: "hoodie_gray", tags: TagHoodie},
	{label: "Hoodie (Navy)", file: "hoodie_navy", tags: TagHoodie},
	{label: "Wifebeater", file: "wifebeater"},
	{label: "suit black red tie", file: "suit_black_red_tie"},
	{label: "suit black red bow", file: "suit_black_red_bow"},
	{label: "suit black blue tie", file: "suit_black_blue_tie"},
	{label: "suit black blue bow", file: "suit_black_blue_bow"},
	{label: "suit black gold tie", file: "suit_black_gold_tie"},
	{label: "suit black gold bow", file: "suit_black_gold_bow"},
	{label: "suit orange red tie", file: "suit_orange_red_tie"},
	{label: "suit orange red bow", file: "suit_orange_red_bow"},
	{label: "suit orange blue tie", file: "suit_orange_blue_tie"},
	{label: "suit orange blue bow", file: "suit_orange_blue_bow"},
	{label: "suit orange gold tie", file: "suit_orange_gold_tie"},
	{label: "suit orange gold bow", file: "suit_orange_gold_bow"},
	{label: "Astronaut Suit (White)", file: "astronaut_white", tags: TagAstronaut},
	{label: "Astronaut Suit (Orange)", file: "astronaut_orange", tags: TagAstronaut},
}

var clothesAddonEntries = []entry{
	{label: "Chia Farmer Overalls Blue", file: "chia_farmer_blue"},
	{label: "Chia Farmer Overalls Brown", file: "chia_farmer_brown"},
	{label: "Chia Farmer Overalls Orange", file: "chia_farmer_orange"},
	{label: "Chia Farmer Overalls Red", file: "chia_farmer_red"},
}

var facialHairEntries = []entry{
	{label: "Stubble", file: "stubble"},
	{label: "Mustache", file: "mustache"},
	{label: "Goatee", file: "goatee"},
	{label: "Beard (Brown)", file: "beard_brown"},
	{label: "Beard (Black)", file: "beard_black"},
}

var mouthBaseEntries = []entry{
	{label: "Smirk", file: "smirk"},
	{label: "Frown", file: "frown"},
	{label: "Open", file: "open"},
	{label: "Pucker", file: "pucker"},
}

var mouthItemEntries = []entry{
	{label: "Cigarette", file: "cigarette"},
	{label: "Pipe", file: "pipe"},
	{label: "Cigar", file: "cigar"},
	{label: "Toothpick", file: "toothpick"},
}

var maskEntries = []entry{
	{label: "Hannibal Mask", file: "hannibal", tags: TagHannibal | TagCoveringMask},
	{label: "Centurion Mask", file: "centurion", tags: TagCoveringMask | TagEyeCoveringMask},
	{label: "Ski Mask (Black)", file: "ski_black", tags: TagCoveringMask | TagEyeCoveringMask},
	{label: "Ski Mask (Green)", file: "ski_green", tags: TagCoveringMask | TagEyeCoveringMask},
	{label: "Ninja Bandana (Red)", file: "ninja_red", tags: TagCoveringMask | TagBandana},
	{label: "Ninja Bandana (Blue)", file: "ninja_blue", tags: TagCoveringMask | TagBandana},
	{label: "Ninja Bandana (Orange)", file: "ninja_orange", tags: TagCoveringMask | TagBandana},
	{label: "Ninja Bandana (Purple)", file: "ninja_purple", tags: TagCoveringMask | TagBandana},
	{label: "Surgical Mask", file: "surgical", tags: TagCoveringMask},
	{label: "Zorro Mask", file: "zorro"},
}

var eyesEntries = []entry{
	{label: "Tyson Tattoo", file: "tyson_tattoo", tags: TagTysonTattoo},
	{label: "Turtle Band (Red)", file: "turtle_red", tags: TagTurtleBand},
	{label: "Turtle Band (Blue)", file: "turtle_blue", tags: TagTurtleBand},
	{label: "Turtle Band (Purple)", file: "turtle_purple", tags: TagTurtleBand},
	{label: "Shades (Black)", file: "shades_black"},
	{label: "Shades (Gold)", file: "shades_gold"},
	{label: "Bloodshot", file: "bloodshot"},
	{label: "Monocle", file: "monocle"},
}

var headEntries = []entry{
	{label: "Beanie (Red)", file: "beanie_red"},
	{label: "Beanie (Gray)", file: "beanie_gray"},
	{label: "Beanie (Black)", file: "beanie_black"},
	{label: "Cap (Red)", file: "cap_red"},
	{label: "Cap (Blue)", file: "cap_blue"},
	{label: "Doo Rag, Black", file: "doorag_black"},
	{label: "Doo Rag, Red", file: "doorag_red"},
	{label: "Bandana Red", file: "bandana_red"},
	{label: "Bandana Green", file: "bandana_green"},
	{label: "Mohawk neon green", file: "mohawk_neon_green"},
	{label: "Centurion Helmet", file: "centurion_helmet", tags: TagHelmet},
	{label: "Headphones", file: "headphones"},
	{label: "Headphones (Over Hood)", file: "headphones_over_hood", hidden: true},
}

// layerDirs maps each layer to its asset subdirectory
var layerDirs = map[Layer]string{
	LayerBackground:   "background",
	LayerBase:         "base",
	LayerClothes:      "clothes",
	LayerClothesAddon: "clothes_addon",
	LayerFacialHair:   "facial_hair",
	LayerMouthBase:    "mouth_base",
	LayerMouthItem:    "mouth_item",
	LayerMask:         "mask",
	LayerEyes:         "eyes",
	LayerHead:         "head",
}

// PathFor builds the canonical asset path for a layer and file stem
func PathFor(layer Layer, file string) string {
	return path.Join(assetRoot, layerDirs[layer], file+".png")
}

// Canonical trait paths referenced by the rule catalogue and defaults
var (
	PathTeeWhite           = PathFor(LayerClothes, "tee_white")
	PathHeadphones         = PathFor(LayerHead, "headphones")
	PathHeadphonesOverHood = PathFor(LayerHead, "headphones_over_hood")
	PathSuitCanonical      = PathFor(LayerClothes, "suit_black_red_tie")
	PathMouthSmirk         = PathFor(LayerMouthBase, "smirk")
)

// Default builds the built-in catalogue
func Default() *Manifest {
	tables := []struct {
		layer   Layer
		entries []entry
	}{
		{LayerBackground, backgroundEntries},
		{LayerBase, baseEntries},
		{LayerClothes, clothesEntries},
		{LayerClothesAddon, clothesAddonEntries},
		{LayerFacialHair, facialHairEntries},
		{LayerMouthBase, mouthBaseEntries},
		{LayerMouthItem, mouthItemEntries},
		{LayerMask, maskEntries},
		{LayerEyes, eyesEntries},
		{LayerHead, headEntries},
	}

	var assets []Asset
	for _, t := range tables {
		for _, e := range t.entries {
			assets = append(assets, Asset{
				Layer:  t.layer,
				Label:  e.label,
				Path:   PathFor(t.layer, e.file),
				Tags:   e.tags,
				Hidden: e.hidden,
			})
		}
	}

	m, err := New(assets)
	if err != nil {
		// The built-in tables are authored in this file; a collision
		// here is a programming error, not a runtime condition.
		panic(err)
	}

	linkProxies(m)
	return m
}

// linkProxies wires the companion-switched asset pairs
func linkProxies(m *Manifest) {
	pairs := []struct {
		normal, alternate string
		trigger           Layer
		triggerTag        Tag
	}{
		{PathHeadphones, PathHeadphonesOverHood, LayerClothes, TagHoodie},
	}
	m.Stamp(func(a *Asset) {
		for _, p := range pairs {
			switch a.Path {
			case p.normal:
				a.Proxy = &Proxy{TriggerLayer: p.trigger, TriggerTag: p.triggerTag, Alternate: p.alternate}
			case p.alternate:
				a.Proxy = &Proxy{TriggerLayer: p.trigger, TriggerTag: p.triggerTag, Alternate: p.normal, IsAlternate: true}
			}
		}
	})
}
