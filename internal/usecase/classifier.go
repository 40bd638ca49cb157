package usecase

import (
	"fmt"
	"strings"

	"github.com/poetis/backend/internal/domain"
)

// Classification is the catalog match of a type line
type Classification struct {
	Category1 domain.Category1
	Category2 domain.Category2
	BaseName  string
}

type catalogBase struct {
	category1 domain.Category1
	category2 domain.Category2
	name      string
	lower     string
}

// Classifier resolves free-text type lines against an ordered base catalog
type Classifier struct {
	bases []catalogBase
}

// NewClassifier flattens the catalog once, keeping its traversal order
func NewClassifier(catalog []CatalogEntry) *Classifier {
	var bases []catalogBase
	for _, entry := range catalog {
		for _, name := range entry.Bases {
			bases = append(bases, catalogBase{
				category1: entry.Category1,
				category2: entry.Category2,
				name:      name,
				lower:     strings.ToLower(name),
			})
		}
	}
	return &Classifier{bases: bases}
}

// Classify returns the first catalog base contained (case-insensitively) in typeLine
func (c *Classifier) Classify(typeLine string) (Classification, bool) {
	lower := strings.ToLower(typeLine)
	if strings.TrimSpace(lower) == "" {
		return Classification{}, false
	}
	for _, base := range c.bases {
		if strings.Contains(lower, base.lower) {
			return Classification{
				Category1: base.category1,
				Category2: base.category2,
				BaseName:  base.name,
			}, true
		}
	}
	return Classification{}, false
}

// FromRecord builds an Item from a raw record.
// Records that are not equipment return ErrNonEquipment, unknown bases ErrUnrecognizedItemBase.
func (c *Classifier) FromRecord(record domain.RawItemRecord) (domain.Item, error) {
	class, ok := c.Classify(record.TypeLine)
	if !ok {
		if isNonEquipment(record.TypeLine) {
			return domain.Item{}, domain.ErrNonEquipment
		}
		return domain.Item{}, fmt.Errorf("%w: %q", domain.ErrUnrecognizedItemBase, record.TypeLine)
	}

	explicits := make([]string, len(record.ExplicitMods))
	for i, mod := range record.ExplicitMods {
		explicits[i] = strings.ToLower(mod)
	}

	return domain.Item{
		Position:     domain.Position{X: record.X, Y: record.Y},
		Footprint:    domain.Footprint{Width: record.Width, Height: record.Height},
		ItemLevel:    record.ItemLevel,
		Category1:    class.Category1,
		Category2:    class.Category2,
		BaseName:     class.BaseName,
		DisplayName:  record.Name,
		Rarity:       record.FrameType,
		Identified:   record.Identified,
		ExplicitMods: explicits,
		ImplicitMods: append([]string(nil), record.ImplicitMods...),
	}, nil
}

// isNonEquipment reports type lines that are expected to miss the catalog
func isNonEquipment(typeLine string) bool {
	return strings.Contains(strings.ToLower(typeLine), "map")
}
