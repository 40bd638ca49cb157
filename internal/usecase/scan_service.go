package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/poetis/backend/internal/domain"
)

// ScanServiceConfig holds defaults applied when a request leaves an option unset
type ScanServiceConfig struct {
	CacheTTL        time.Duration
	MinMatches      int
	AllowIdentified bool
	FillGreedy      bool
	MaxSets         int
}

// scanOptions are the resolved options of one scan
type scanOptions struct {
	minMatches      int
	allowIdentified bool
	fillGreedy      bool
	maxSets         int
}

// filterReloader is implemented by filter providers backed by a reloadable source
type filterReloader interface {
	Reload() error
}

// ScanService runs scan cycles over fetched inventories
type ScanService struct {
	inventory  domain.InventorySource
	cache      domain.InventoryCache
	filters    domain.FilterProvider
	history    domain.ScanRepository
	classifier *Classifier
	config     ScanServiceConfig
	group      singleflight.Group
}

// NewScanService creates a new scan service. cache and history may be nil.
func NewScanService(
	inventory domain.InventorySource,
	cache domain.InventoryCache,
	filters domain.FilterProvider,
	history domain.ScanRepository,
	config ScanServiceConfig,
) *ScanService {
	if config.CacheTTL < 0 {
		config.CacheTTL = 0
	}
	if config.MaxSets <= 0 {
		config.MaxSets = 4
	}

	return &ScanService{
		inventory:  inventory,
		cache:      cache,
		filters:    filters,
		history:    history,
		classifier: NewClassifier(DefaultCatalog),
		config:     config,
	}
}

// Scan evaluates a container in the requested mode.
// Flow: validate -> inventory (cache or source) -> classify -> score or build sets -> save.
// Identical scans already in flight share one result. The shared scan is detached from
// cancellation of the caller that started it; a cancelled caller stops waiting while the
// others still receive the result.
func (s *ScanService) Scan(ctx context.Context, request *domain.ScanRequest) (*domain.ScanResult, error) {
	if request == nil || request.Container == "" {
		return nil, fmt.Errorf("%w: container is required", domain.ErrInvalidRequest)
	}

	mode, err := domain.ParseScanMode(request.Mode)
	if err != nil {
		return nil, err
	}

	opts, err := s.resolveOptions(request)
	if err != nil {
		return nil, err
	}

	key := fingerprint(mode, request, opts)
	flightCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (interface{}, error) {
		return s.scan(flightCtx, mode, request.Container, request.Refresh, opts)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			log.Debug().Str("key", key).Msg("[SCAN] joined in-flight scan")
		}
		return res.Val.(*domain.ScanResult), nil
	}
}

func (s *ScanService) resolveOptions(request *domain.ScanRequest) (scanOptions, error) {
	opts := scanOptions{
		minMatches:      s.config.MinMatches,
		allowIdentified: s.config.AllowIdentified,
		fillGreedy:      s.config.FillGreedy,
		maxSets:         s.config.MaxSets,
	}
	if request.MinMatches != nil {
		if *request.MinMatches < 0 {
			return opts, fmt.Errorf("%w: minMatches must not be negative", domain.ErrInvalidRequest)
		}
		opts.minMatches = *request.MinMatches
	}
	if request.MaxSets != nil {
		if *request.MaxSets < 1 {
			return opts, fmt.Errorf("%w: maxSets must be at least 1", domain.ErrInvalidRequest)
		}
		opts.maxSets = *request.MaxSets
	}
	if request.AllowIdentified != nil {
		opts.allowIdentified = *request.AllowIdentified
	}
	if request.FillGreedy != nil {
		opts.fillGreedy = *request.FillGreedy
	}
	return opts, nil
}

func fingerprint(mode domain.ScanMode, request *domain.ScanRequest, opts scanOptions) string {
	return fmt.Sprintf("%s|%s|%t|%d|%t|%t|%d",
		mode, request.Container, request.Refresh,
		opts.minMatches, opts.allowIdentified, opts.fillGreedy, opts.maxSets)
}

func (s *ScanService) scan(
	ctx context.Context,
	mode domain.ScanMode,
	container string,
	refresh bool,
	opts scanOptions,
) (*domain.ScanResult, error) {
	started := time.Now()

	records, fromCache, err := s.loadInventory(ctx, container, refresh)
	if err != nil {
		return nil, err
	}

	result := &domain.ScanResult{
		ID:        uuid.NewString(),
		Mode:      mode.String(),
		Container: container,
		Records:   len(records),
		FromCache: fromCache,
		StartedAt: started,
	}

	switch mode {
	case domain.ScanModeRare:
		cfg, err := s.filterSnapshot()
		if err != nil {
			return nil, err
		}
		items := s.classify(records, result)
		scorer := NewItemScorer(ScorerConfig{MinMatches: opts.minMatches})
		scorer.ScoreAll(items, cfg)
		result.Items = scorer.Rank(items)

	case domain.ScanModeRecipe:
		items := s.classify(records, result)
		sets := BuildSets(items, RecipeOptions{
			MaxSetsGoal:     opts.maxSets,
			AllowIdentified: opts.allowIdentified,
			FillGreedy:      opts.fillGreedy,
		})
		result.Sets = TruncateSets(sets, opts.maxSets)
		result.Counters = CountRecipeItems(items, opts.allowIdentified)
	}

	result.Duration = time.Since(started)
	log.Info().
		Str("id", result.ID).
		Str("mode", result.Mode).
		Str("container", container).
		Int("records", result.Records).
		Int("classified", result.Classified).
		Int("unrecognized", result.Unrecognized).
		Int("items", len(result.Items)).
		Int("sets", len(result.Sets)).
		Bool("from_cache", fromCache).
		Dur("duration", result.Duration).
		Msg("[SCAN] scan completed")

	s.save(ctx, result)
	return result, nil
}

// loadInventory returns the container's records, from cache unless refresh is set
func (s *ScanService) loadInventory(ctx context.Context, container string, refresh bool) ([]domain.RawItemRecord, bool, error) {
	key := inventoryCacheKey(container)

	if s.cache != nil && !refresh {
		if records, err := s.cache.Get(ctx, key); err == nil {
			return records, true, nil
		}
	}

	records, err := s.inventory.FetchItems(ctx, container)
	if err != nil {
		if errors.Is(err, domain.ErrInventoryFetch) {
			return nil, false, err
		}
		return nil, false, fmt.Errorf("%w: %w", domain.ErrInventoryFetch, err)
	}

	if s.cache != nil && s.config.CacheTTL > 0 {
		if err := s.cache.Set(ctx, key, records, s.config.CacheTTL); err != nil {
			log.Warn().Err(err).Str("container", container).Msg("[SCAN] failed to cache inventory")
		}
	}
	return records, false, nil
}

func inventoryCacheKey(container string) string {
	return "inventory:" + container
}

func (s *ScanService) filterSnapshot() (*domain.FilterConfig, error) {
	if s.filters == nil {
		return nil, fmt.Errorf("%w: no filter source configured", domain.ErrInvalidFilterConfiguration)
	}
	cfg, err := s.filters.Snapshot()
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFilterConfiguration) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFilterConfiguration, err)
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: empty snapshot", domain.ErrInvalidFilterConfiguration)
	}
	return cfg, nil
}

// classify turns magic and rare records into items and tallies the outcome on result
func (s *ScanService) classify(records []domain.RawItemRecord, result *domain.ScanResult) []domain.Item {
	items := make([]domain.Item, 0, len(records))
	for _, record := range records {
		if !evaluable(record) {
			log.Trace().Stringer("rarity", record.FrameType).Str("type_line", record.TypeLine).Msg("[SCAN] record skipped")
			continue
		}
		item, err := s.classifier.FromRecord(record)
		if err != nil {
			if errors.Is(err, domain.ErrUnrecognizedItemBase) {
				result.Unrecognized++
				log.Debug().Stringer("rarity", record.FrameType).Str("type_line", record.TypeLine).Msg("[SCAN] unrecognized item base")
			}
			continue
		}
		items = append(items, item)
	}
	result.Classified = len(items)
	return items
}

// evaluable reports whether a record's rarity takes part in evaluation
func evaluable(record domain.RawItemRecord) bool {
	return record.FrameType == domain.FrameMagic || record.FrameType == domain.FrameRare
}

func (s *ScanService) save(ctx context.Context, result *domain.ScanResult) {
	if s.history == nil {
		return
	}
	if err := s.history.Save(ctx, result); err != nil {
		log.Warn().Err(err).Str("id", result.ID).Msg("[SCAN] failed to save scan history")
	}
}

// RecipeStatus counts a container's eligible recipe items and reports which slots still need pickups
func (s *ScanService) RecipeStatus(
	ctx context.Context,
	container string,
	maxSets int,
	allowIdentified *bool,
) (*domain.RecipeStatus, error) {
	if container == "" {
		return nil, fmt.Errorf("%w: container is required", domain.ErrInvalidRequest)
	}
	if maxSets < 0 {
		return nil, fmt.Errorf("%w: maxSets must not be negative", domain.ErrInvalidRequest)
	}
	if maxSets == 0 {
		maxSets = s.config.MaxSets
	}
	allow := s.config.AllowIdentified
	if allowIdentified != nil {
		allow = *allowIdentified
	}

	records, fromCache, err := s.loadInventory(ctx, container, false)
	if err != nil {
		return nil, err
	}

	items := s.classify(records, &domain.ScanResult{})
	counters := CountRecipeItems(items, allow)
	return &domain.RecipeStatus{
		Container: container,
		MaxSets:   maxSets,
		Counters:  counters,
		Wanted:    WantedSlots(counters, maxSets),
		FromCache: fromCache,
	}, nil
}

// History lists recent scans, newest first
func (s *ScanService) History(ctx context.Context, limit int) ([]domain.ScanSummary, error) {
	if s.history == nil {
		return nil, domain.ErrHistoryUnavailable
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", domain.ErrInvalidRequest)
	}
	return s.history.ListRecent(ctx, limit)
}

// Filters returns the current filter configuration
func (s *ScanService) Filters() (*domain.FilterConfig, error) {
	return s.filterSnapshot()
}

// ReloadFilters re-reads the filter source and returns the new configuration
func (s *ScanService) ReloadFilters() (*domain.FilterConfig, error) {
	reloader, ok := s.filters.(filterReloader)
	if !ok {
		return nil, fmt.Errorf("%w: filter source cannot be reloaded", domain.ErrInvalidRequest)
	}
	if err := reloader.Reload(); err != nil {
		return nil, err
	}
	return s.filterSnapshot()
}
