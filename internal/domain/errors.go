package domain

import "errors"

var (
	// ErrUnrecognizedItemBase is returned when an item's type line matches no catalog base
	ErrUnrecognizedItemBase = errors.New("unrecognized item base")

	// ErrNonEquipment is returned for records that are not equipment at all (maps etc.)
	ErrNonEquipment = errors.New("record is not equipment")

	// ErrUnscorableModifier is returned when a modifier has no threshold or no numeric value
	ErrUnscorableModifier = errors.New("modifier cannot be scored")

	// ErrIncompleteRecipeCandidate is returned when a candidate set cannot be completed
	ErrIncompleteRecipeCandidate = errors.New("recipe candidate incomplete")

	// ErrInvalidFilterConfiguration is returned when the filter document is missing or malformed
	ErrInvalidFilterConfiguration = errors.New("invalid filter configuration")

	// ErrInventoryFetch is returned when the inventory source fails for any reason
	ErrInventoryFetch = errors.New("inventory fetch failed")

	// ErrStashNotFound is returned when the requested stash tab does not exist
	ErrStashNotFound = errors.New("stash tab not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrHistoryUnavailable is returned when scan history persistence is disabled
	ErrHistoryUnavailable = errors.New("scan history unavailable")
)
