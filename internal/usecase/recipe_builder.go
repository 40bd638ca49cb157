package usecase

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/poetis/backend/internal/domain"
)

// RecipeOptions holds the settings of one recipe build
type RecipeOptions struct {
	// MaxSetsGoal is applied by callers through TruncateSets, never inside BuildSets
	MaxSetsGoal     int
	AllowIdentified bool
	// FillGreedy allows more than one chaos-band item per set
	FillGreedy bool
}

// slotPool holds the items of one item-level band bucketed by slot.
// order is the slot consumption order, fewest items first.
type slotPool struct {
	buckets map[domain.SlotKey][]domain.Item
	order   []domain.SlotKey
}

func newSlotPool() *slotPool {
	return &slotPool{buckets: make(map[domain.SlotKey][]domain.Item, len(domain.SlotKeys))}
}

func (p *slotPool) push(slot domain.SlotKey, item domain.Item) {
	p.buckets[slot] = append(p.buckets[slot], item)
}

// sortSlots fixes the consumption order by ascending bucket size, canonical order on ties
func (p *slotPool) sortSlots() {
	p.order = append([]domain.SlotKey(nil), domain.SlotKeys...)
	sort.SliceStable(p.order, func(i, j int) bool {
		return len(p.buckets[p.order[i]]) < len(p.buckets[p.order[j]])
	})
}

// pop takes the last item of a bucket
func (p *slotPool) pop(slot domain.SlotKey) (domain.Item, bool) {
	items := p.buckets[slot]
	if len(items) == 0 {
		return domain.Item{}, false
	}
	item := items[len(items)-1]
	p.buckets[slot] = items[:len(items)-1]
	return item, true
}

// popOneHanded takes the last one-handed item of the weapon bucket
func (p *slotPool) popOneHanded() (domain.Item, bool) {
	items := p.buckets[domain.SlotWeapon]
	for i := len(items) - 1; i >= 0; i-- {
		if domain.IsOneHanded(items[i].Category2) {
			item := items[i]
			p.buckets[domain.SlotWeapon] = append(items[:i:i], items[i+1:]...)
			return item, true
		}
	}
	return domain.Item{}, false
}

// mostPopulated returns the slot with the most items left
func (p *slotPool) mostPopulated() (domain.SlotKey, bool) {
	var best domain.SlotKey
	size := 0
	for _, slot := range p.order {
		if n := len(p.buckets[slot]); n > size {
			best, size = slot, n
		}
	}
	return best, size > 0
}

// RecipeEligible reports whether an item may be used in a recipe set
func RecipeEligible(item domain.Item, allowIdentified bool) bool {
	if item.BaseName == "" || item.Rarity != domain.FrameRare {
		return false
	}
	if item.Identified && !allowIdentified {
		return false
	}
	if _, ok := domain.SlotKeyFor(item.Category2); !ok {
		return false
	}
	return domain.BandFor(item.ItemLevel) != domain.BandNone
}

// partitionRecipeItems splits eligible items into regal and chaos pools
func partitionRecipeItems(items []domain.Item, allowIdentified bool) (regal, chaos *slotPool) {
	regal, chaos = newSlotPool(), newSlotPool()
	for _, item := range items {
		if !RecipeEligible(item, allowIdentified) {
			continue
		}
		slot, _ := domain.SlotKeyFor(item.Category2)
		if domain.BandFor(item.ItemLevel) == domain.BandRegal {
			regal.push(slot, item)
		} else {
			chaos.push(slot, item)
		}
	}
	regal.sortSlots()
	chaos.sortSlots()
	return regal, chaos
}

// BuildSets greedily partitions items into complete recipe sets.
// It never fails: building stops at the first candidate that cannot be completed
// and the sets accepted so far are returned.
func BuildSets(items []domain.Item, opts RecipeOptions) []domain.RecipeSet {
	regal, chaos := partitionRecipeItems(items, opts.AllowIdentified)

	var sets []domain.RecipeSet
	for {
		set, err := nextRecipeSet(regal, chaos, opts.FillGreedy)
		if err != nil {
			log.Debug().Err(err).Int("sets", len(sets)).Msg("[RECIPE] build finished")
			return sets
		}
		sets = append(sets, set)
	}
}

// nextRecipeSet assembles one candidate, returning ErrIncompleteRecipeCandidate
// when no further set can be formed
func nextRecipeSet(regal, chaos *slotPool, fillGreedy bool) (domain.RecipeSet, error) {
	set := domain.NewRecipeSet()

	// Regal items first, for every slot
	for _, slot := range regal.order {
		item, ok := regal.pop(slot)
		if !ok {
			continue
		}
		set[slot] = append(set[slot], item)
		switch {
		case slot == domain.SlotRing:
			if second, ok := regal.pop(slot); ok {
				set[slot] = append(set[slot], second)
			}
		case slot == domain.SlotWeapon && domain.IsOneHanded(item.Category2):
			if second, ok := regal.popOneHanded(); ok {
				set[slot] = append(set[slot], second)
			}
		}
	}

	// Chaos items fill the gaps
	chaosAdded := 0
	for _, slot := range chaos.order {
		for len(set[slot]) < set.Required(slot) {
			var item domain.Item
			var ok bool
			if slot == domain.SlotWeapon && len(set[slot]) == 1 {
				item, ok = chaos.popOneHanded()
			} else {
				item, ok = chaos.pop(slot)
			}
			if !ok {
				return nil, incomplete("no chaos item left for " + string(slot))
			}
			set[slot] = append(set[slot], item)
			chaosAdded++
		}
	}

	// Every set needs at least one chaos item
	if chaosAdded == 0 {
		added, err := rescueWithChaos(set, regal, chaos)
		if err != nil {
			return nil, err
		}
		chaosAdded += added
	}

	if chaosAdded > 1 && !fillGreedy {
		return nil, incomplete("candidate needs more than one chaos item")
	}

	if !set.Complete() {
		return nil, incomplete("candidate has empty slots")
	}

	return set.Clone(), nil
}

// rescueWithChaos swaps the last item of the most populated chaos bucket into an
// all-regal candidate, handing the displaced regal item back to its bucket
func rescueWithChaos(set domain.RecipeSet, regal, chaos *slotPool) (int, error) {
	slot, ok := chaos.mostPopulated()
	if !ok {
		return 0, incomplete("no chaos items left")
	}
	item, _ := chaos.pop(slot)

	if slot != domain.SlotWeapon {
		current := set[slot]
		regal.push(slot, current[len(current)-1])
		current[len(current)-1] = item
		return 1, nil
	}

	current := set[domain.SlotWeapon]
	switch {
	case domain.IsTwoHanded(item.Category2):
		for _, displaced := range current {
			regal.push(domain.SlotWeapon, displaced)
		}
		set[domain.SlotWeapon] = []domain.Item{item}
		return 1, nil

	case len(current) == 2:
		regal.push(domain.SlotWeapon, current[1])
		current[1] = item
		return 1, nil

	default:
		// A one-handed chaos weapon replacing a two-handed regal one needs a partner
		regal.push(domain.SlotWeapon, current[0])
		if partner, ok := regal.popOneHanded(); ok {
			set[domain.SlotWeapon] = []domain.Item{item, partner}
			return 1, nil
		}
		if partner, ok := chaos.popOneHanded(); ok {
			set[domain.SlotWeapon] = []domain.Item{item, partner}
			return 2, nil
		}
		return 0, incomplete("no partner for one-handed chaos weapon")
	}
}

func incomplete(reason string) error {
	return fmt.Errorf("%w: %s", domain.ErrIncompleteRecipeCandidate, reason)
}

// TruncateSets caps the number of sets when a positive goal is configured
func TruncateSets(sets []domain.RecipeSet, maxSets int) []domain.RecipeSet {
	if maxSets > 0 && len(sets) > maxSets {
		return sets[:maxSets]
	}
	return sets
}
