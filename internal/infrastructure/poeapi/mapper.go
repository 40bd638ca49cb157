package poeapi

import "github.com/poetis/backend/internal/domain"

// stashItemsResponse is the body of a tabs=0 stash request
type stashItemsResponse struct {
	NumTabs int       `json:"numTabs"`
	Items   []StashItem `json:"items"`
}

// StashItem carries the fields of an API stash item the scanner reads
type StashItem struct {
	X            int      `json:"x"`
	Y            int      `json:"y"`
	W            int      `json:"w"`
	H            int      `json:"h"`
	ItemLevel    int      `json:"ilvl"`
	Name         string   `json:"name"`
	TypeLine     string   `json:"typeLine"`
	FrameType    int      `json:"frameType"`
	Identified   bool     `json:"identified"`
	ExplicitMods []string `json:"explicitMods"`
	ImplicitMods []string `json:"implicitMods"`
}

// MapToRecords converts API items to raw item records, preserving order
func MapToRecords(items []StashItem) []domain.RawItemRecord {
	records := make([]domain.RawItemRecord, 0, len(items))
	for _, it := range items {
		records = append(records, MapToRecord(it))
	}
	return records
}

// MapToRecord converts one API item
func MapToRecord(it StashItem) domain.RawItemRecord {
	return domain.RawItemRecord{
		X:            it.X,
		Y:            it.Y,
		Width:        it.W,
		Height:       it.H,
		ItemLevel:    it.ItemLevel,
		TypeLine:     it.TypeLine,
		Name:         it.Name,
		FrameType:    domain.FrameType(it.FrameType),
		ExplicitMods: append([]string(nil), it.ExplicitMods...),
		ImplicitMods: append([]string(nil), it.ImplicitMods...),
		Identified:   it.Identified,
	}
}
