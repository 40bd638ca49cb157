package domain

import (
	"fmt"
	"strings"
	"time"
)

// ScanMode selects how a scanned container is evaluated
type ScanMode int

const (
	ScanModeRare ScanMode = iota + 1
	ScanModeRecipe
)

// String returns the wire name of the mode
func (m ScanMode) String() string {
	switch m {
	case ScanModeRare:
		return "rare"
	case ScanModeRecipe:
		return "recipe"
	default:
		return "unknown"
	}
}

// ParseScanMode parses a wire name into a ScanMode
func ParseScanMode(s string) (ScanMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rare", "rare_scanner":
		return ScanModeRare, nil
	case "recipe", "chaos_recipe":
		return ScanModeRecipe, nil
	}
	return 0, fmt.Errorf("%w: unknown scan mode %q", ErrInvalidRequest, s)
}

// ScanRequest represents one scan of a container
type ScanRequest struct {
	Mode            string `json:"mode" binding:"required"`
	Container       string `json:"container" binding:"required"`
	MinMatches      *int   `json:"minMatches,omitempty"`
	AllowIdentified *bool  `json:"allowIdentified,omitempty"`
	FillGreedy      *bool  `json:"fillGreedy,omitempty"`
	MaxSets         *int   `json:"maxSets,omitempty"`
	Refresh         bool   `json:"refresh,omitempty"`
}

// ScoredItem is a ranked rare-scan entry
type ScoredItem struct {
	Item
	Tier        int      `json:"tier"`
	Description []string `json:"description,omitempty"`
}

// ScanResult is the output of one scan
type ScanResult struct {
	ID           string         `json:"id"`
	Mode         string         `json:"mode"`
	Container    string         `json:"container"`
	Records      int            `json:"records"`
	Classified   int            `json:"classified"`
	Unrecognized int            `json:"unrecognized"`
	Items        []ScoredItem   `json:"items,omitempty"`
	Sets         []RecipeSet    `json:"sets,omitempty"`
	Counters     RecipeCounters `json:"counters,omitempty"`
	FromCache    bool           `json:"fromCache"`
	StartedAt    time.Time      `json:"startedAt"`
	Duration     time.Duration  `json:"duration"`
}

// ScanSummary is a persisted scan as listed by the history endpoint
type ScanSummary struct {
	ID        string    `json:"id" db:"id"`
	Mode      string    `json:"mode" db:"mode"`
	Container string    `json:"container" db:"container"`
	Items     int       `json:"items" db:"item_count"`
	Sets      int       `json:"sets" db:"set_count"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// RecipeStatus reports how far a container is from the recipe set goal
type RecipeStatus struct {
	Container string         `json:"container"`
	MaxSets   int            `json:"maxSets"`
	Counters  RecipeCounters `json:"counters"`
	Wanted    []SlotWant     `json:"wanted"`
	FromCache bool           `json:"fromCache"`
}
