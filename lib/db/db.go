package db

// --------------------------------------------------------------------------
// Helper Types
// --------------------------------------------------------------------------

type Implementation string

const (
	ImplAlder Implementation = "alder"
)

// Feature represents engine features as bit flags
type Feature uint64

const (
	FeatureHash    Feature = 1 << iota // Support for hash record operations (HGetAll, HSet, HGet, HIncrBy)
	FeatureCounter                     // Support for atomic counters (Incr)
	FeatureZSet                        // Support for score-ordered sets (ZAdd, ZScore, ZCard, ZRem, ZRangeDesc)
	FeatureTTL                         // Support for expiring string keys (SetEx, GetS, Del)
)

func (f Feature) String() string {
	switch f {
	case FeatureHash:
		return "Hash"
	case FeatureCounter:
		return "Counter"
	case FeatureZSet:
		return "ZSet"
	case FeatureTTL:
		return "TTL"
	default:
		return "Unknown"
	}
}

// ScoredMember is a single entry of a score-ordered set.
type ScoredMember struct {
	Member string  `json:"member"`
	Score  float64 `json:"score"`
}

// DatabaseInfo describes an engine instance.
type DatabaseInfo struct {
	DbType            Implementation `json:"db_type"`
	SupportedFeatures []Feature      `json:"supported_features"`
	Metadata          interface{}    `json:"metadata"`
}

// --------------------------------------------------------------------------
// Engine Interface
// --------------------------------------------------------------------------

// OrderedKVDB is the contract for an ordered-index engine: hash records,
// atomic counters, score-ordered sets and expiring string keys.
//
// Thread-safety: every single method call must be atomic with respect to
// concurrent calls touching the same key. No atomicity is promised across
// calls. Implementations can vary in feature support, which can be queried
// via SupportsFeature.
type OrderedKVDB interface {

	// --------------------------------------------------------------------------
	// Hash Records
	// --------------------------------------------------------------------------

	// HGetAll returns a copy of all fields of the hash stored at key.
	// The boolean return value indicates whether the hash exists.
	HGetAll(key string) (fields map[string]string, loaded bool)

	// HGet returns a single field of the hash stored at key.
	// The boolean return value indicates whether the field exists.
	HGet(key, field string) (value string, loaded bool)

	// HSet inserts or updates the given fields of the hash stored at key.
	// Fields not named are left untouched; the hash is created if absent.
	HSet(key string, fields map[string]string)

	// HIncrBy atomically adds delta to an integer-valued hash field and
	// returns the new value. A missing hash or field counts as zero.
	HIncrBy(key, field string, delta int64) (newValue int64)

	// --------------------------------------------------------------------------
	// Counters
	// --------------------------------------------------------------------------

	// Incr atomically increments the counter stored at key by one and
	// returns the new value. A missing counter counts as zero.
	Incr(key string) (newValue int64)

	// --------------------------------------------------------------------------
	// Score-Ordered Sets
	// --------------------------------------------------------------------------

	// ZAdd inserts a member with the given score into the ordered set at key,
	// or updates the member's score if it is already present. The returned
	// boolean is true only for a genuine first-time insertion; a score update
	// of an existing member returns false.
	ZAdd(key, member string, score float64) (added bool)

	// ZScore returns the score of a member. The boolean return value
	// indicates membership.
	ZScore(key, member string) (score float64, loaded bool)

	// ZCard returns the cardinality of the ordered set at key.
	ZCard(key string) (count int64)

	// ZRem removes a member from the ordered set at key and reports
	// whether it was present. An emptied set is removed entirely.
	ZRem(key, member string) (removed bool)

	// ZRangeDesc returns a window of the ordered set at key in descending
	// score order. start is a zero-based offset into that order, count the
	// maximum number of entries returned (count < 0 means all remaining).
	// Ties are broken by member, ascending, so the order is deterministic.
	ZRangeDesc(key string, start, count int) (members []ScoredMember)

	// --------------------------------------------------------------------------
	// Expiring String Keys
	// --------------------------------------------------------------------------

	// SetEx stores a string value under key with a time to live in seconds.
	// A ttl of zero means the key never expires.
	SetEx(key, value string, ttlSeconds uint64)

	// GetS returns the string value stored at key. Expired keys are
	// reported as absent even before the GC collects them.
	GetS(key string) (value string, loaded bool)

	// Del removes the string key immediately.
	Del(key string)

	// --------------------------------------------------------------------------
	// Feature Support
	// --------------------------------------------------------------------------

	// SupportsFeature checks if the engine supports the specified feature.
	// Multiple features can be checked at once using bitwise OR (|).
	SupportsFeature(feature Feature) (ok bool)

	// GetInfo returns information about the engine.
	GetInfo() (info DatabaseInfo)

	// Close stops background work (e.g. the TTL garbage collector).
	Close() (err error)
}
