package trait

// Layer names a selectable slot in the composition
type Layer string

const (
	LayerBackground   Layer = "Background"
	LayerBase         Layer = "Base"
	LayerClothes      Layer = "Clothes"
	LayerClothesAddon Layer = "ClothesAddon"
	LayerFacialHair   Layer = "FacialHair"
	LayerMouthBase    Layer = "MouthBase"
	LayerMouthItem    Layer = "MouthItem"
	LayerMask         Layer = "Mask"
	LayerEyes         Layer = "Eyes"
	LayerHead         Layer = "Head"
)

// Layers lists every selectable layer in manifest order
var Layers = []Layer{
	LayerBackground,
	LayerBase,
	LayerClothes,
	LayerClothesAddon,
	LayerFacialHair,
	LayerMouthBase,
	LayerMouthItem,
	LayerMask,
	LayerEyes,
	LayerHead,
}

// Optional reports whether a layer may legitimately hold no selection
func Optional(l Layer) bool {
	switch l {
	case LayerBackground, LayerBase, LayerMouthBase:
		return false
	}
	return true
}
