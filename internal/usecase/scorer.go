package usecase

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/poetis/backend/internal/domain"
	"github.com/poetis/backend/internal/modtext"
)

// MaxTier is the number of distinct highlight tiers
const MaxTier = 5

// ScorerConfig holds configuration for the item scorer
type ScorerConfig struct {
	// MinMatches is the match count an item needs to be ranked; zero ranks every item
	MinMatches int
}

// ItemScorer matches item modifiers against a filter configuration
type ItemScorer struct {
	minMatches int
}

// NewItemScorer creates a new scorer with the given configuration
func NewItemScorer(config ScorerConfig) *ItemScorer {
	minMatches := config.MinMatches
	if minMatches < 0 {
		minMatches = 0
	}
	return &ItemScorer{minMatches: minMatches}
}

// Score records on item every explicit modifier meeting its configured minimum.
// Items without a base or without any entry for their category score nothing.
func (s *ItemScorer) Score(item *domain.Item, cfg *domain.FilterConfig) map[string]float64 {
	matched := make(map[string]float64)
	defer func() { item.MatchedMods = matched }()

	if item.BaseName == "" || !cfg.Has(item.Category1) {
		return matched
	}

	for _, mod := range item.ExplicitMods {
		key, value, err := scoreModifier(item, cfg, mod)
		if err != nil {
			log.Trace().Err(err).Str("base", item.BaseName).Msg("[SCORE] modifier skipped")
			continue
		}
		matched[key] = value
	}
	return matched
}

// scoreModifier resolves one modifier; a non-nil error means it did not match
func scoreModifier(item *domain.Item, cfg *domain.FilterConfig, mod string) (string, float64, error) {
	key, value := modtext.Normalize(mod)

	threshold, ok := cfg.Threshold(item.Category1, item.Category2, key)
	if !ok || threshold <= 0 {
		return "", 0, fmt.Errorf("%w: %q not searched for", domain.ErrUnscorableModifier, key)
	}
	if value <= 0 {
		return "", 0, fmt.Errorf("%w: %q has no value", domain.ErrUnscorableModifier, key)
	}
	if value < threshold {
		return "", 0, fmt.Errorf("%w: %q %.2f below %.2f", domain.ErrUnscorableModifier, key, value, threshold)
	}
	return key, value, nil
}

// ScoreAll scores every item against the same snapshot
func (s *ItemScorer) ScoreAll(items []domain.Item, cfg *domain.FilterConfig) {
	for i := range items {
		s.Score(&items[i], cfg)
	}
}

// Rank orders scored items by descending match count, keeping insertion order on ties,
// and drops items below the minimum match count
func (s *ItemScorer) Rank(items []domain.Item) []domain.ScoredItem {
	ranked := make([]domain.Item, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchCount() > ranked[j].MatchCount()
	})

	result := make([]domain.ScoredItem, 0, len(ranked))
	for _, item := range ranked {
		if item.MatchCount() < s.minMatches {
			continue
		}
		result = append(result, domain.ScoredItem{
			Item:        item,
			Tier:        Tier(item.MatchCount()),
			Description: DescribeMatches(item),
		})
	}
	return result
}

// Tier maps a match count onto a highlight tier
func Tier(matchCount int) int {
	if matchCount > MaxTier {
		return MaxTier
	}
	return matchCount
}

// DescribeMatches renders matched modifiers back into readable text, sorted by key
func DescribeMatches(item domain.Item) []string {
	keys := make([]string, 0, len(item.MatchedMods))
	for k := range item.MatchedMods {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = modtext.Render(k, item.MatchedMods[k])
	}
	return out
}
