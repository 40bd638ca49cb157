package usecase

import (
	"github.com/poetis/backend/internal/domain"
)

// CountRecipeItems counts eligible recipe items per slot and band, in set units:
// rings and one-handed weapons are half a set each
func CountRecipeItems(items []domain.Item, allowIdentified bool) domain.RecipeCounters {
	counters := make(domain.RecipeCounters, len(domain.SlotKeys))
	for _, slot := range domain.SlotKeys {
		counters[slot] = domain.SlotCounter{}
	}

	for _, item := range items {
		if !RecipeEligible(item, allowIdentified) {
			continue
		}
		slot, _ := domain.SlotKeyFor(item.Category2)
		weight := 1.0
		if slot == domain.SlotRing || domain.IsOneHanded(item.Category2) {
			weight = 0.5
		}

		c := counters[slot]
		if domain.BandFor(item.ItemLevel) == domain.BandRegal {
			c.Regal += weight
		} else {
			c.Chaos += weight
		}
		counters[slot] = c
	}
	return counters
}

// WantedSlots reports which slots and bands still need pickups to reach maxSets.
// One set's worth of regal items is left out so chaos items keep being collected.
func WantedSlots(counters domain.RecipeCounters, maxSets int) []domain.SlotWant {
	goal := float64(maxSets)
	var wants []domain.SlotWant
	for _, slot := range domain.SlotKeys {
		c := counters[slot]
		if c.Regal+c.Chaos >= goal {
			continue
		}
		want := domain.SlotWant{
			Slot:  slot,
			Regal: c.Regal < goal-1,
			Chaos: c.Chaos < goal,
		}
		if want.Regal || want.Chaos {
			wants = append(wants, want)
		}
	}
	return wants
}
