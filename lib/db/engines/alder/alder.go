package alder

import (
	"container/heap"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/edicola-dev/edicola/lib/db"
	"github.com/edicola-dev/edicola/lib/db/engines/alder/internal"
	"github.com/edicola-dev/edicola/lib/db/util"
)

// --------------------------------------------------------------------------
// Constants
// --------------------------------------------------------------------------

const (
	defaultGCInterval = 100 * time.Millisecond // Default interval between GC runs
)

// --------------------------------------------------------------------------
// Core Alder database structure
// --------------------------------------------------------------------------

// alderImpl implements the db.OrderedKVDB interface with sharded data
type alderImpl struct {
	numShards int               // Number of shards
	seed      uint64            // Seed for hash function
	shards    []*internal.Shard // Array of shards
	clock     func() time.Time  // Time source for ttl deadlines

	// garbage collection
	gcInterval  time.Duration
	gcIsRunning atomic.Bool
	gcStop      chan struct{}
}

// DBOptions configures the alderImpl behavior during initialization
type DBOptions struct {
	NumShards  int              // Number of shards (0 = auto)
	GCInterval time.Duration    // Time between GC runs (0 = use default)
	Clock      func() time.Time // Time source (nil = time.Now), settable for tests
}

// DefaultOptions returns the default alderImpl options
func DefaultOptions() *DBOptions {
	return &DBOptions{
		NumShards:  runtime.NumCPU(),  // Auto-determine based on CPU count
		GCInterval: defaultGCInterval, // Default GC interval
		Clock:      time.Now,
	}
}

// --------------------------------------------------------------------------
// Initialization and Setup
// --------------------------------------------------------------------------

// NewAlderDB creates a new AlderDB instance with the specified options (optional)
//
// Thread-safety: This function is not thread-safe and should only be called once
// during initialization.
func NewAlderDB(opts *DBOptions) db.OrderedKVDB {

	// Generate default options if not provided
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.NumShards <= 0 {
		opts.NumShards = runtime.NumCPU()
	}
	if opts.GCInterval <= 0 {
		opts.GCInterval = defaultGCInterval
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	// Create shards
	shards := make([]*internal.Shard, opts.NumShards)
	for i := 0; i < opts.NumShards; i++ {
		shards[i] = internal.NewShard()
	}

	newDB := &alderImpl{
		numShards:  opts.NumShards,
		seed:       util.GenerateSeed(), // Seed for this alderImpl instance
		shards:     shards,
		clock:      opts.Clock,
		gcInterval: opts.GCInterval,
		gcStop:     make(chan struct{}),
	}

	// start garbage collection
	newDB.startGC()

	return newDB
}

// shardFor returns the shard responsible for the given key
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (alder *alderImpl) shardFor(key string) *internal.Shard {
	return internal.GetShard(util.HashString(key, alder.seed), alder.shards)
}

// now returns the current time as unix nanoseconds
func (alder *alderImpl) now() uint64 {
	return uint64(alder.clock().UnixNano())
}

// --------------------------------------------------------------------------
// OrderedKVDB Interface Methods - Hash Records
// --------------------------------------------------------------------------

// HGetAll returns a copy of all fields of the hash stored at key.
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (alder *alderImpl) HGetAll(key string) (map[string]string, bool) {
	fields, loaded := alder.shardFor(key).Hashes.Load(key)
	if !loaded {
		return nil, false
	}

	// Copy so callers can't corrupt the stored record
	cp := make(map[string]string, len(fields))
	for f, v := range fields {
		cp[f] = v
	}
	return cp, true
}

// HGet returns a single field of the hash stored at key.
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (alder *alderImpl) HGet(key, field string) (string, bool) {
	fields, loaded := alder.shardFor(key).Hashes.Load(key)
	if !loaded {
		return "", false
	}
	value, ok := fields[field]
	return value, ok
}

// HSet inserts or updates the given fields of the hash stored at key.
// Stored records are treated as immutable: every update installs a fresh
// copy, so concurrent readers always see a consistent snapshot.
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (alder *alderImpl) HSet(key string, fields map[string]string) {
	if len(fields) == 0 {
		return
	}

	alder.shardFor(key).Hashes.Compute(key, func(old map[string]string, loaded bool) (map[string]string, bool) {
		merged := make(map[string]string, len(old)+len(fields))
		for f, v := range old {
			merged[f] = v
		}
		for f, v := range fields {
			merged[f] = v
		}
		return merged, false
	})
}

// HIncrBy atomically adds delta to an integer-valued hash field and returns
// the new value. A missing hash, a missing field or a field that does not
// parse as an integer counts as zero.
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (alder *alderImpl) HIncrBy(key, field string, delta int64) int64 {
	var newValue int64

	alder.shardFor(key).Hashes.Compute(key, func(old map[string]string, loaded bool) (map[string]string, bool) {
		current, _ := strconv.ParseInt(old[field], 10, 64)
		newValue = current + delta

		merged := make(map[string]string, len(old)+1)
		for f, v := range old {
			merged[f] = v
		}
		merged[field] = strconv.FormatInt(newValue, 10)
		return merged, false
	})

	return newValue
}

// --------------------------------------------------------------------------
// OrderedKVDB Interface Methods - Counters
// --------------------------------------------------------------------------

// Incr atomically increments the counter stored at key by one and returns
// the new value.
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (alder *alderImpl) Incr(key string) int64 {
	var newValue int64

	alder.shardFor(key).Counters.Compute(key, func(old int64, loaded bool) (int64, bool) {
		newValue = old + 1
		return newValue, false
	})

	return newValue
}

// --------------------------------------------------------------------------
// OrderedKVDB Interface Methods - Score-Ordered Sets
// --------------------------------------------------------------------------

// zset returns the ordered set stored at key, creating it if absent
func (alder *alderImpl) zset(key string) *internal.ZSet {
	z, _ := alder.shardFor(key).ZSets.LoadOrCompute(key, internal.NewZSet)
	return z
}

// ZAdd inserts a member with the given score or updates its score.
// The returned boolean is true only for a genuine first-time insertion.
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (alder *alderImpl) ZAdd(key, member string, score float64) bool {
	return alder.zset(key).Add(member, score)
}

// ZScore returns the score of a member and whether it is present.
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (alder *alderImpl) ZScore(key, member string) (float64, bool) {
	z, loaded := alder.shardFor(key).ZSets.Load(key)
	if !loaded {
		return 0, false
	}
	return z.Score(member)
}

// ZCard returns the cardinality of the ordered set at key.
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (alder *alderImpl) ZCard(key string) int64 {
	z, loaded := alder.shardFor(key).ZSets.Load(key)
	if !loaded {
		return 0
	}
	return z.Card()
}

// ZRem removes a member from the ordered set at key.
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (alder *alderImpl) ZRem(key, member string) bool {
	z, loaded := alder.shardFor(key).ZSets.Load(key)
	if !loaded {
		return false
	}
	return z.Remove(member)
}

// ZRangeDesc returns a window of the ordered set at key in descending score
// order, ties broken by member ascending.
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (alder *alderImpl) ZRangeDesc(key string, start, count int) []db.ScoredMember {
	z, loaded := alder.shardFor(key).ZSets.Load(key)
	if !loaded {
		return nil
	}
	return z.RangeDesc(start, count)
}

// --------------------------------------------------------------------------
// OrderedKVDB Interface Methods - Expiring String Keys
// --------------------------------------------------------------------------

// SetEx stores a string value under key with a time to live in seconds.
// A ttl of zero means the key never expires.
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (alder *alderImpl) SetEx(key, value string, ttlSeconds uint64) {
	shard := alder.shardFor(key)

	var expireAt uint64
	if ttlSeconds > 0 {
		expireAt = alder.now() + ttlSeconds*uint64(time.Second)
	}

	shard.Strings.Store(key, internal.StringEntry{Value: value, ExpireAt: expireAt})

	// keep the gc schedule in sync with the stored deadline
	shard.GCMu.Lock()
	if expireAt > 0 {
		shard.ExpireHeap.AddItem(key, expireAt)
	} else {
		shard.ExpireHeap.RemoveByKey(key)
	}
	shard.GCMu.Unlock()
}

// GetS returns the string value stored at key. Expired keys are reported as
// absent even before the GC collects them.
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (alder *alderImpl) GetS(key string) (string, bool) {
	entry, loaded := alder.shardFor(key).Strings.Load(key)
	if !loaded || entry.Expired(alder.now()) {
		return "", false
	}
	return entry.Value, true
}

// Del removes the string key immediately.
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (alder *alderImpl) Del(key string) {
	shard := alder.shardFor(key)
	shard.Strings.Delete(key)

	shard.GCMu.Lock()
	shard.ExpireHeap.RemoveByKey(key)
	shard.GCMu.Unlock()
}

// --------------------------------------------------------------------------
// Garbage Collection
// --------------------------------------------------------------------------

// startGC starts the garbage collector
// if the GC is already running, this function does nothing
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (alder *alderImpl) startGC() {
	if alder.gcIsRunning.CompareAndSwap(false, true) {
		go alder.garbageCollector()
	}
}

// stopGC stops the garbage collector.
// if the GC is not running, this function does nothing.
// the gc can't be started again after it has been stopped!
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (alder *alderImpl) stopGC() {
	if alder.gcIsRunning.CompareAndSwap(true, false) {
		close(alder.gcStop)
	}
}

// garbageCollector sweeps the per-shard expire heaps on the configured
// interval and physically removes entries whose deadline has passed.
// WARNING: this method should never be called directly! to control the GC,
// use startGC() and stopGC()
func (alder *alderImpl) garbageCollector() {
	ticker := time.NewTicker(alder.gcInterval)
	defer ticker.Stop()

	for {
		select {
		case <-alder.gcStop:
			return
		case <-ticker.C:
		}

		now := alder.now()

		for _, shard := range alder.shards {
			shard.GCMu.Lock()

			for {
				item, exists := shard.ExpireHeap.Peek()
				if !exists || item.Priority > now {
					break
				}
				heap.Pop(shard.ExpireHeap)

				// double-check against the stored entry: the key may have
				// been overwritten with a later deadline in the meantime
				shard.Strings.Compute(item.Key, func(e internal.StringEntry, loaded bool) (internal.StringEntry, bool) {
					if !loaded {
						return e, true
					}
					return e, e.Expired(now)
				})
			}

			shard.GCMu.Unlock()
		}
	}
}

// --------------------------------------------------------------------------
// OrderedKVDB Interface Implementation - Features and Metadata
// --------------------------------------------------------------------------

// GetInfo returns statistics about the database
func (alder *alderImpl) GetInfo() db.DatabaseInfo {

	// sample hash record sizes for the histogram, a few records per shard
	// are enough for the estimators
	histogram := util.NewSizeHistogram()
	samplesPerShard := 100

	// per-shard entry counts (per key family)
	var hashes, counters, zsets, strings, expireBacklog int
	shardSizes := make([]float64, len(alder.shards))
	for shardIndex, shard := range alder.shards {
		hashes += shard.Hashes.Size()
		counters += shard.Counters.Size()
		zsets += shard.ZSets.Size()
		strings += shard.Strings.Size()

		count := 0
		shard.Hashes.Range(func(_ string, fields map[string]string) bool {
			size := 0
			for field, value := range fields {
				size += len(field) + len(value)
			}
			histogram.AddSample(size)

			// only sample a few records per shard
			count++
			return count < samplesPerShard
		})

		shardSizes[shardIndex] = float64(shard.Hashes.Size() +
			shard.Counters.Size() + shard.ZSets.Size() + shard.Strings.Size())

		shard.GCMu.Lock()
		expireBacklog += shard.ExpireHeap.Len()
		shard.GCMu.Unlock()
	}

	// Metadata for this specific database implementation
	meta := &struct {
		ShardCount        int                    `json:"shard_count"`
		Hashes            int                    `json:"hashes"`
		Counters          int                    `json:"counters"`
		ZSets             int                    `json:"zsets"`
		Strings           int                    `json:"strings"`
		ExpireBacklog     int                    `json:"expire_backlog"`
		MedianRecordBytes int                    `json:"median_record_bytes"`
		AvgRecordBytes    int                    `json:"avg_record_bytes"`
		ShardBalance      util.DistributionStats `json:"shard_balance"`
	}{
		ShardCount:        alder.numShards,
		Hashes:            hashes,
		Counters:          counters,
		ZSets:             zsets,
		Strings:           strings,
		ExpireBacklog:     expireBacklog,
		MedianRecordBytes: histogram.MedianEstimate(),
		AvgRecordBytes:    histogram.AverageSize(),
		ShardBalance:      util.NewDistributionStats(shardSizes),
	}

	return db.DatabaseInfo{
		DbType: db.ImplAlder,
		SupportedFeatures: []db.Feature{
			db.FeatureHash, db.FeatureCounter, db.FeatureZSet, db.FeatureTTL,
		},
		Metadata: meta,
	}
}

// SupportsFeature checks if this implementation supports a specific OrderedKVDB feature
func (alder *alderImpl) SupportsFeature(feature db.Feature) bool {
	supportedFeatures := db.FeatureHash |
		db.FeatureCounter |
		db.FeatureZSet |
		db.FeatureTTL
	return supportedFeatures&feature == feature
}

// Close stops the garbage collector
func (alder *alderImpl) Close() error {
	alder.stopGC()
	return nil
}
