package domain

import (
	"context"
	"time"
)

// InventorySource supplies the raw item records of a named storage container
type InventorySource interface {
	FetchItems(ctx context.Context, container string) ([]RawItemRecord, error)
}

// InventoryCache holds recently fetched inventories keyed by container
type InventoryCache interface {
	Get(ctx context.Context, key string) ([]RawItemRecord, error)
	Set(ctx context.Context, key string, records []RawItemRecord, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// FilterProvider hands out the filter configuration snapshot for one scan
type FilterProvider interface {
	Snapshot() (*FilterConfig, error)
}

// ScanRepository defines the interface for scan history persistence
type ScanRepository interface {
	Save(ctx context.Context, result *ScanResult) error
	ListRecent(ctx context.Context, limit int) ([]ScanSummary, error)
}
