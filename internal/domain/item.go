package domain

// FrameType is the rarity/frame of an item as reported by the stash API
type FrameType int

const (
	FrameNormal     FrameType = 0
	FrameMagic      FrameType = 1
	FrameRare       FrameType = 2
	FrameUnique     FrameType = 3
	FrameGem        FrameType = 4
	FrameCurrency   FrameType = 5
	FrameDivination FrameType = 6
	FrameQuest      FrameType = 8
	FrameProphecy   FrameType = 9
	FrameRelic      FrameType = 10
)

// String returns the lower-case rarity name
func (f FrameType) String() string {
	switch f {
	case FrameNormal:
		return "normal"
	case FrameMagic:
		return "magic"
	case FrameRare:
		return "rare"
	case FrameUnique:
		return "unique"
	case FrameGem:
		return "gem"
	case FrameCurrency:
		return "currency"
	case FrameDivination:
		return "divination"
	case FrameQuest:
		return "quest"
	case FrameProphecy:
		return "prophecy"
	case FrameRelic:
		return "relic"
	default:
		return "unknown"
	}
}

// RawItemRecord is one item as supplied by the inventory source
type RawItemRecord struct {
	X            int       `json:"x"`
	Y            int       `json:"y"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	ItemLevel    int       `json:"itemLevel"`
	TypeLine     string    `json:"typeLine"`
	Name         string    `json:"name,omitempty"`
	FrameType    FrameType `json:"frameType"`
	ExplicitMods []string  `json:"explicitMods,omitempty"`
	ImplicitMods []string  `json:"implicitMods,omitempty"`
	Identified   bool      `json:"identified"`
}

// Category1 is the top-level slot class of an item
type Category1 string

const (
	CategoryWeapon    Category1 = "weapon"
	CategoryArmour    Category1 = "armour"
	CategoryAccessory Category1 = "accessory"
)

// Category2 is the slot subtype of an item
type Category2 string

const (
	SubtypeHelmet   Category2 = "helmet"
	SubtypeChest    Category2 = "chest"
	SubtypeGloves   Category2 = "gloves"
	SubtypeBoots    Category2 = "boots"
	SubtypeShield   Category2 = "shield"
	SubtypeQuiver   Category2 = "quiver"
	SubtypeBelt     Category2 = "belt"
	SubtypeAmulet   Category2 = "amulet"
	SubtypeRing     Category2 = "ring"
	SubtypeBow      Category2 = "bow"
	SubtypeClaw     Category2 = "claw"
	SubtypeDagger   Category2 = "dagger"
	SubtypeSceptre  Category2 = "sceptre"
	SubtypeStaff    Category2 = "staff"
	SubtypeWand     Category2 = "wand"
	SubtypeOneAxe   Category2 = "oneaxe"
	SubtypeTwoAxe   Category2 = "twoaxe"
	SubtypeOneMace  Category2 = "onemace"
	SubtypeTwoMace  Category2 = "twomace"
	SubtypeOneSword Category2 = "onesword"
	SubtypeTwoSword Category2 = "twosword"
)

var parentCategory = map[Category2]Category1{
	SubtypeHelmet: CategoryArmour, SubtypeChest: CategoryArmour, SubtypeGloves: CategoryArmour,
	SubtypeBoots: CategoryArmour, SubtypeShield: CategoryArmour, SubtypeQuiver: CategoryArmour,
	SubtypeBelt: CategoryAccessory, SubtypeAmulet: CategoryAccessory, SubtypeRing: CategoryAccessory,
	SubtypeBow: CategoryWeapon, SubtypeClaw: CategoryWeapon, SubtypeDagger: CategoryWeapon,
	SubtypeSceptre: CategoryWeapon, SubtypeStaff: CategoryWeapon, SubtypeWand: CategoryWeapon,
	SubtypeOneAxe: CategoryWeapon, SubtypeTwoAxe: CategoryWeapon, SubtypeOneMace: CategoryWeapon,
	SubtypeTwoMace: CategoryWeapon, SubtypeOneSword: CategoryWeapon, SubtypeTwoSword: CategoryWeapon,
}

// ParentCategory returns the top-level category a subtype belongs to
func ParentCategory(c Category2) (Category1, bool) {
	cat1, ok := parentCategory[c]
	return cat1, ok
}

// ValidCategory reports whether c is a known top-level category
func ValidCategory(c Category1) bool {
	return c == CategoryWeapon || c == CategoryArmour || c == CategoryAccessory
}

var oneHanded = map[Category2]bool{
	SubtypeShield: true, SubtypeClaw: true, SubtypeDagger: true, SubtypeSceptre: true,
	SubtypeWand: true, SubtypeOneAxe: true, SubtypeOneMace: true, SubtypeOneSword: true,
}

var twoHanded = map[Category2]bool{
	SubtypeBow: true, SubtypeStaff: true, SubtypeTwoAxe: true, SubtypeTwoMace: true, SubtypeTwoSword: true,
}

// IsOneHanded reports whether the subtype occupies one hand (shields included)
func IsOneHanded(c Category2) bool {
	return oneHanded[c]
}

// IsTwoHanded reports whether the subtype occupies both hands
func IsTwoHanded(c Category2) bool {
	return twoHanded[c]
}

// Position is an item's top-left cell in the stash grid
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Footprint is an item's size in stash cells
type Footprint struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Item is a classified item derived from a RawItemRecord
type Item struct {
	Position     Position           `json:"position"`
	Footprint    Footprint          `json:"footprint"`
	ItemLevel    int                `json:"itemLevel"`
	Category1    Category1          `json:"category1"`
	Category2    Category2          `json:"category2"`
	BaseName     string             `json:"baseName"`
	DisplayName  string             `json:"displayName,omitempty"`
	Rarity       FrameType          `json:"rarity"`
	Identified   bool               `json:"identified"`
	ExplicitMods []string           `json:"explicitMods,omitempty"`
	ImplicitMods []string           `json:"implicitMods,omitempty"`
	MatchedMods  map[string]float64 `json:"matchedMods,omitempty"`
}

// MatchCount returns the number of matched modifiers
func (i *Item) MatchCount() int {
	return len(i.MatchedMods)
}

// Clone returns a structurally independent copy of the item
func (i Item) Clone() Item {
	c := i
	if i.ExplicitMods != nil {
		c.ExplicitMods = append([]string(nil), i.ExplicitMods...)
	}
	if i.ImplicitMods != nil {
		c.ImplicitMods = append([]string(nil), i.ImplicitMods...)
	}
	if i.MatchedMods != nil {
		c.MatchedMods = make(map[string]float64, len(i.MatchedMods))
		for k, v := range i.MatchedMods {
			c.MatchedMods[k] = v
		}
	}
	return c
}
