package domain

// CategoryFilter holds the desired modifiers of one top-level category.
// Common applies to every subtype; Subtypes override it per mod key.
type CategoryFilter struct {
	Common   map[string]float64               `json:"common,omitempty" yaml:"common,omitempty"`
	Subtypes map[Category2]map[string]float64 `json:"subtypes,omitempty" yaml:"subtypes,omitempty"`
}

// FilterConfig maps category1 to its desired modifiers and minimum values
type FilterConfig struct {
	Categories map[Category1]*CategoryFilter `json:"categories"`
}

// NewFilterConfig returns an empty configuration
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{Categories: make(map[Category1]*CategoryFilter)}
}

// Category returns the filter of a top-level category, creating it when missing
func (f *FilterConfig) Category(cat1 Category1) *CategoryFilter {
	cf, ok := f.Categories[cat1]
	if !ok {
		cf = &CategoryFilter{}
		f.Categories[cat1] = cf
	}
	return cf
}

// SetCommon sets a category-wide threshold
func (f *FilterConfig) SetCommon(cat1 Category1, key string, minimum float64) {
	cf := f.Category(cat1)
	if cf.Common == nil {
		cf.Common = make(map[string]float64)
	}
	cf.Common[key] = minimum
}

// SetSubtype sets a subtype-specific threshold
func (f *FilterConfig) SetSubtype(cat1 Category1, cat2 Category2, key string, minimum float64) {
	cf := f.Category(cat1)
	if cf.Subtypes == nil {
		cf.Subtypes = make(map[Category2]map[string]float64)
	}
	if cf.Subtypes[cat2] == nil {
		cf.Subtypes[cat2] = make(map[string]float64)
	}
	cf.Subtypes[cat2][key] = minimum
}

// Has reports whether the configuration has any entry for the category
func (f *FilterConfig) Has(cat1 Category1) bool {
	if f == nil {
		return false
	}
	_, ok := f.Categories[cat1]
	return ok
}

// Threshold resolves the minimum value of a mod key, most specific entry first
func (f *FilterConfig) Threshold(cat1 Category1, cat2 Category2, key string) (float64, bool) {
	if f == nil {
		return 0, false
	}
	cf, ok := f.Categories[cat1]
	if !ok || cf == nil {
		return 0, false
	}
	if sub, ok := cf.Subtypes[cat2]; ok {
		if v, ok := sub[key]; ok {
			return v, true
		}
	}
	v, ok := cf.Common[key]
	return v, ok
}

// ModCount returns the number of configured thresholds
func (f *FilterConfig) ModCount() int {
	if f == nil {
		return 0
	}
	n := 0
	for _, cf := range f.Categories {
		n += len(cf.Common)
		for _, sub := range cf.Subtypes {
			n += len(sub)
		}
	}
	return n
}

// Clone returns an independent copy, used to hand out immutable snapshots
func (f *FilterConfig) Clone() *FilterConfig {
	c := NewFilterConfig()
	if f == nil {
		return c
	}
	for cat1, cf := range f.Categories {
		nc := &CategoryFilter{}
		if cf.Common != nil {
			nc.Common = make(map[string]float64, len(cf.Common))
			for k, v := range cf.Common {
				nc.Common[k] = v
			}
		}
		if cf.Subtypes != nil {
			nc.Subtypes = make(map[Category2]map[string]float64, len(cf.Subtypes))
			for cat2, sub := range cf.Subtypes {
				ns := make(map[string]float64, len(sub))
				for k, v := range sub {
					ns[k] = v
				}
				nc.Subtypes[cat2] = ns
			}
		}
		c.Categories[cat1] = nc
	}
	return c
}
