package internal

import (
	"sort"
	"sync"

	"github.com/edicola-dev/edicola/lib/db"
	"github.com/edicola-dev/edicola/lib/db/util"
	"github.com/puzpuzpuz/xsync/v3"
)

// --------------------------------------------------------------------------
// String Entry Type (expiring string value)
// --------------------------------------------------------------------------

// StringEntry stores a string value with its expiry deadline.
// ExpireAt is an absolute timestamp in unix nanoseconds, 0 means the
// entry never expires.
type StringEntry struct {
	Value    string
	ExpireAt uint64
}

// Expired reports whether the entry is logically expired at the given
// timestamp (unix nanoseconds)
func (e StringEntry) Expired(now uint64) bool {
	return e.ExpireAt != 0 && now >= e.ExpireAt
}

// --------------------------------------------------------------------------
// ZSet Type (score-ordered set)
// --------------------------------------------------------------------------

// ZSet is a score-ordered set of string members. It keeps a member index
// for O(1) score lookups alongside a slice sorted by (score descending,
// member ascending) for deterministic range reads.
//
// Thread-safety: all methods lock the internal mutex and can be called
// concurrently.
type ZSet struct {
	mu      sync.Mutex
	scores  map[string]float64
	ordered []db.ScoredMember
}

// NewZSet creates an empty score-ordered set
func NewZSet() *ZSet {
	return &ZSet{scores: make(map[string]float64)}
}

// rank returns the slice position a member with the given score sorts to,
// following the (score descending, member ascending) order.
// Must be called with the mutex held.
func (z *ZSet) rank(member string, score float64) int {
	return sort.Search(len(z.ordered), func(i int) bool {
		e := z.ordered[i]
		if e.Score != score {
			return e.Score < score
		}
		return e.Member >= member
	})
}

// Add inserts the member with the given score or updates its score.
// Returns true only for a genuine first-time insertion.
func (z *ZSet) Add(member string, score float64) bool {
	z.mu.Lock()
	defer z.mu.Unlock()

	old, found := z.scores[member]
	if found {
		if old == score {
			return false
		}
		// reposition the existing entry
		i := z.rank(member, old)
		z.ordered = append(z.ordered[:i], z.ordered[i+1:]...)
	}

	i := z.rank(member, score)
	z.ordered = append(z.ordered, db.ScoredMember{})
	copy(z.ordered[i+1:], z.ordered[i:])
	z.ordered[i] = db.ScoredMember{Member: member, Score: score}
	z.scores[member] = score

	return !found
}

// Score returns the score of a member and whether it is present
func (z *ZSet) Score(member string) (float64, bool) {
	z.mu.Lock()
	defer z.mu.Unlock()

	score, found := z.scores[member]
	return score, found
}

// Card returns the number of members
func (z *ZSet) Card() int64 {
	z.mu.Lock()
	defer z.mu.Unlock()

	return int64(len(z.scores))
}

// Remove deletes a member and reports whether it was present
func (z *ZSet) Remove(member string) bool {
	z.mu.Lock()
	defer z.mu.Unlock()

	score, found := z.scores[member]
	if !found {
		return false
	}

	i := z.rank(member, score)
	z.ordered = append(z.ordered[:i], z.ordered[i+1:]...)
	delete(z.scores, member)

	return true
}

// RangeDesc returns a copy of the window [start, start+count) of the set in
// descending score order. count < 0 means all remaining entries.
func (z *ZSet) RangeDesc(start, count int) []db.ScoredMember {
	z.mu.Lock()
	defer z.mu.Unlock()

	if start < 0 {
		start = 0
	}
	if start >= len(z.ordered) {
		return nil
	}

	end := len(z.ordered)
	if count >= 0 && start+count < end {
		end = start + count
	}

	window := make([]db.ScoredMember, end-start)
	copy(window, z.ordered[start:end])
	return window
}

// --------------------------------------------------------------------------
// Shard Type (partition of the database)
// --------------------------------------------------------------------------

// Shard represents a partition of the database, one map per key family.
// The expire heap is shared between writers and the GC goroutine and is
// guarded by GCMu.
type Shard struct {
	Hashes   *xsync.MapOf[string, map[string]string] // Hash records (copy-on-write values)
	Counters *xsync.MapOf[string, int64]             // Atomic counters
	ZSets    *xsync.MapOf[string, *ZSet]             // Score-ordered sets
	Strings  *xsync.MapOf[string, StringEntry]       // Expiring string keys

	GCMu       sync.Mutex
	ExpireHeap *util.MapHeap
}

// NewShard creates a new empty shard
func NewShard() *Shard {
	return &Shard{
		Hashes:     xsync.NewMapOf[string, map[string]string](),
		Counters:   xsync.NewMapOf[string, int64](),
		ZSets:      xsync.NewMapOf[string, *ZSet](),
		Strings:    xsync.NewMapOf[string, StringEntry](),
		ExpireHeap: util.NewMapHeap(),
	}
}

// GetShard returns the appropriate shard for a given key
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func GetShard[T any](key util.UintKey, shards []*T) *T {
	// Shift right by 7 bits to use higher-quality bits for distribution
	shiftedKey := uint64(key) >> 7
	shardPos := shiftedKey % uint64(len(shards))
	return shards[shardPos]
}
