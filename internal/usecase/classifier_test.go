package usecase

import (
	"errors"
	"strings"
	"testing"

	"github.com/poetis/backend/internal/domain"
)

func TestClassifier_Classify(t *testing.T) {
	classifier := NewClassifier(DefaultCatalog)

	tests := []struct {
		name     string
		typeLine string
		wantOK   bool
		wantCat1 domain.Category1
		wantCat2 domain.Category2
		wantBase string
	}{
		{
			name:     "prefixed base",
			typeLine: "Synthesised Siege Axe",
			wantOK:   true,
			wantCat1: domain.CategoryWeapon,
			wantCat2: domain.SubtypeOneAxe,
			wantBase: "Siege Axe",
		},
		{
			name:     "case insensitive",
			typeLine: "LEATHER BELT",
			wantOK:   true,
			wantCat1: domain.CategoryAccessory,
			wantCat2: domain.SubtypeBelt,
			wantBase: "Leather Belt",
		},
		{
			name:     "two handed axe contains one handed name",
			typeLine: "Prime Cleaver",
			wantOK:   true,
			wantCat1: domain.CategoryWeapon,
			wantCat2: domain.SubtypeTwoAxe,
			wantBase: "Prime Cleaver",
		},
		{
			name:     "armour before weapon substrings",
			typeLine: "Saint's Hauberk",
			wantOK:   true,
			wantCat1: domain.CategoryArmour,
			wantCat2: domain.SubtypeChest,
			wantBase: "Saint's Hauberk",
		},
		{
			name:     "sword not shadowed by dagger",
			typeLine: "Corsair Sword",
			wantOK:   true,
			wantCat1: domain.CategoryWeapon,
			wantCat2: domain.SubtypeOneSword,
			wantBase: "Corsair Sword",
		},
		{
			name:     "unknown base",
			typeLine: "Chaos Orb",
			wantOK:   false,
		},
		{
			name:     "blank type line",
			typeLine: "   ",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := classifier.Classify(tt.typeLine)
			if ok != tt.wantOK {
				t.Fatalf("Classify(%q) ok = %v, want %v", tt.typeLine, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Category1 != tt.wantCat1 || got.Category2 != tt.wantCat2 || got.BaseName != tt.wantBase {
				t.Errorf("Classify(%q) = (%s, %s, %s), want (%s, %s, %s)",
					tt.typeLine, got.Category1, got.Category2, got.BaseName,
					tt.wantCat1, tt.wantCat2, tt.wantBase)
			}
		})
	}
}

// Every catalog base must resolve to its own subtype, or it is shadowed by an earlier entry
func TestClassifier_CatalogSelfConsistent(t *testing.T) {
	classifier := NewClassifier(DefaultCatalog)

	for _, entry := range DefaultCatalog {
		parent, ok := domain.ParentCategory(entry.Category2)
		if !ok || parent != entry.Category1 {
			t.Errorf("catalog entry %s/%s has inconsistent parent %s", entry.Category1, entry.Category2, parent)
		}
		for _, base := range entry.Bases {
			got, ok := classifier.Classify(base)
			if !ok {
				t.Errorf("Classify(%q) found nothing", base)
				continue
			}
			if got.Category2 != entry.Category2 {
				t.Errorf("Classify(%q) = %s (%s), want %s", base, got.Category2, got.BaseName, entry.Category2)
			}
		}
	}
}

func TestClassifier_FromRecord(t *testing.T) {
	classifier := NewClassifier(DefaultCatalog)

	record := domain.RawItemRecord{
		X: 2, Y: 3, Width: 1, Height: 1, ItemLevel: 82,
		TypeLine:     "Two-Stone Ring",
		Name:         "Doom Loop",
		FrameType:    domain.FrameRare,
		ExplicitMods: []string{"+40 to Maximum Life", "+30% to Cold Resistance"},
		ImplicitMods: []string{"+12% to Fire and Cold Resistances"},
		Identified:   true,
	}

	item, err := classifier.FromRecord(record)
	if err != nil {
		t.Fatalf("FromRecord() error = %v", err)
	}

	if item.Category1 != domain.CategoryAccessory || item.Category2 != domain.SubtypeRing {
		t.Errorf("categories = %s/%s, want accessory/ring", item.Category1, item.Category2)
	}
	if item.BaseName != "Two-Stone Ring" {
		t.Errorf("BaseName = %q", item.BaseName)
	}
	if item.Position != (domain.Position{X: 2, Y: 3}) {
		t.Errorf("Position = %+v", item.Position)
	}
	if item.ItemLevel != 82 || item.Rarity != domain.FrameRare || !item.Identified {
		t.Errorf("unexpected item fields: %+v", item)
	}
	if item.ExplicitMods[0] != "+40 to maximum life" {
		t.Errorf("explicit mods should be lower-cased, got %q", item.ExplicitMods[0])
	}
	if record.ExplicitMods[0] != "+40 to Maximum Life" {
		t.Errorf("record must not be modified, got %q", record.ExplicitMods[0])
	}
}

func TestClassifier_FromRecord_Errors(t *testing.T) {
	classifier := NewClassifier(DefaultCatalog)

	tests := []struct {
		name     string
		typeLine string
		wantErr  error
	}{
		{"map is not equipment", "Strand Map", domain.ErrNonEquipment},
		{"unrecognized base", "Exalted Orb", domain.ErrUnrecognizedItemBase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := classifier.FromRecord(domain.RawItemRecord{TypeLine: tt.typeLine})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FromRecord(%q) error = %v, want %v", tt.typeLine, err, tt.wantErr)
			}
		})
	}
}

func TestDefaultCatalog_Coverage(t *testing.T) {
	seen := make(map[domain.Category2]bool)
	for _, entry := range DefaultCatalog {
		if len(entry.Bases) == 0 {
			t.Errorf("catalog entry %s has no bases", entry.Category2)
		}
		for _, base := range entry.Bases {
			if strings.TrimSpace(base) != base || base == "" {
				t.Errorf("catalog base %q has stray whitespace", base)
			}
		}
		seen[entry.Category2] = true
	}
	for _, slot := range domain.SlotKeys {
		found := false
		for cat2 := range seen {
			if s, ok := domain.SlotKeyFor(cat2); ok && s == slot {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no catalog subtype fills slot %s", slot)
		}
	}
}
