package domain

// Item level bands of the vendor recipes
const (
	MinRecipeItemLevel = 60
	MaxChaosItemLevel  = 74
	MinRegalItemLevel  = 75
)

// Band is the item-level band an item falls into for the recipes
type Band int

const (
	BandNone Band = iota
	BandChaos
	BandRegal
)

// BandFor returns the recipe band of an item level
func BandFor(itemLevel int) Band {
	switch {
	case itemLevel >= MinRegalItemLevel:
		return BandRegal
	case itemLevel >= MinRecipeItemLevel:
		return BandChaos
	default:
		return BandNone
	}
}

// SlotKey is a logical equipment slot of a recipe set
type SlotKey string

const (
	SlotWeapon SlotKey = "weapon"
	SlotRing   SlotKey = "ring"
	SlotHelmet SlotKey = "helmet"
	SlotChest  SlotKey = "chest"
	SlotGloves SlotKey = "gloves"
	SlotBoots  SlotKey = "boots"
	SlotBelt   SlotKey = "belt"
	SlotAmulet SlotKey = "amulet"
)

// SlotKeys lists every recipe slot in canonical order
var SlotKeys = []SlotKey{SlotWeapon, SlotRing, SlotHelmet, SlotChest, SlotGloves, SlotBoots, SlotBelt, SlotAmulet}

// SlotKeyFor maps an item subtype to its recipe slot. Quivers have no slot.
func SlotKeyFor(c Category2) (SlotKey, bool) {
	if IsOneHanded(c) || IsTwoHanded(c) {
		return SlotWeapon, true
	}
	switch c {
	case SubtypeRing:
		return SlotRing, true
	case SubtypeHelmet:
		return SlotHelmet, true
	case SubtypeChest:
		return SlotChest, true
	case SubtypeGloves:
		return SlotGloves, true
	case SubtypeBoots:
		return SlotBoots, true
	case SubtypeBelt:
		return SlotBelt, true
	case SubtypeAmulet:
		return SlotAmulet, true
	}
	return "", false
}

// RecipeSet maps each slot to the items filling it
type RecipeSet map[SlotKey][]Item

// NewRecipeSet returns a set with every slot present and empty
func NewRecipeSet() RecipeSet {
	s := make(RecipeSet, len(SlotKeys))
	for _, k := range SlotKeys {
		s[k] = nil
	}
	return s
}

// Clone deep-copies the set so later mutation of the source never leaks into it
func (s RecipeSet) Clone() RecipeSet {
	c := make(RecipeSet, len(s))
	for k, items := range s {
		if items == nil {
			c[k] = nil
			continue
		}
		cloned := make([]Item, len(items))
		for i, it := range items {
			cloned[i] = it.Clone()
		}
		c[k] = cloned
	}
	return c
}

// Required returns how many items the slot needs given what it currently holds
func (s RecipeSet) Required(k SlotKey) int {
	switch k {
	case SlotRing:
		return 2
	case SlotWeapon:
		items := s[k]
		if len(items) > 0 && IsOneHanded(items[0].Category2) {
			return 2
		}
		return 1
	default:
		return 1
	}
}

// Complete reports whether every slot holds exactly the required number of items
func (s RecipeSet) Complete() bool {
	for _, k := range SlotKeys {
		if len(s[k]) != s.Required(k) {
			return false
		}
	}
	return true
}

// ItemCount returns the total number of items in the set
func (s RecipeSet) ItemCount() int {
	n := 0
	for _, items := range s {
		n += len(items)
	}
	return n
}

// ChaosCount returns how many items of the set are in the chaos band
func (s RecipeSet) ChaosCount() int {
	n := 0
	for _, items := range s {
		for _, it := range items {
			if BandFor(it.ItemLevel) == BandChaos {
				n++
			}
		}
	}
	return n
}

// SlotCounter holds per-band counts of eligible items for one slot, in set units
type SlotCounter struct {
	Regal float64 `json:"regal"`
	Chaos float64 `json:"chaos"`
}

// RecipeCounters holds the eligible item counts of every slot
type RecipeCounters map[SlotKey]SlotCounter

// SlotWant tells which bands of a slot are still worth picking up
type SlotWant struct {
	Slot  SlotKey `json:"slot"`
	Regal bool    `json:"regal"`
	Chaos bool    `json:"chaos"`
}
