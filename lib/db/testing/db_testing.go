package testing

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/edicola-dev/edicola/lib/db"
)

// DBFactory is a function that creates a new instance of an OrderedKVDB implementation
type DBFactory func() db.OrderedKVDB

// RunOrderedKVDBTests runs a comprehensive test suite for an OrderedKVDB implementation.
func RunOrderedKVDBTests(t *testing.T, name string, factory DBFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("HashRecords", func(t *testing.T) {
			testHashRecords(t, factory())
		})

		t.Run("HIncrBy", func(t *testing.T) {
			testHIncrBy(t, factory())
		})

		t.Run("Counters", func(t *testing.T) {
			testCounters(t, factory())
		})

		t.Run("ZSetAdd", func(t *testing.T) {
			testZSetAdd(t, factory())
		})

		t.Run("ZSetRangeDesc", func(t *testing.T) {
			testZSetRangeDesc(t, factory())
		})

		t.Run("ZSetRemove", func(t *testing.T) {
			testZSetRemove(t, factory())
		})

		t.Run("StringKeys", func(t *testing.T) {
			testStringKeys(t, factory())
		})

		t.Run("ManyKeys", func(t *testing.T) {
			testManyKeys(t, factory())
		})

		t.Run("ConcurrentCounters", func(t *testing.T) {
			testConcurrentCounters(t, factory())
		})

		t.Run("ConcurrentZAdd", func(t *testing.T) {
			testConcurrentZAdd(t, factory())
		})

		t.Run("Info", func(t *testing.T) {
			testInfo(t, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

// Checks if the database supports the specified feature
// Skip the test if it is not supported
func requireFeature(t testing.TB, database db.OrderedKVDB, feature db.Feature) {
	if !database.SupportsFeature(feature) {
		t.Skip()
	}
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testHashRecords(t *testing.T, database db.OrderedKVDB) {
	defer database.Close()

	requireFeature(t, database, db.FeatureHash)

	testKey := "record:1"

	_, exists := database.HGetAll(testKey)
	if exists {
		t.Errorf("Expected nonexistent hash to return loaded=false")
	}

	database.HSet(testKey, map[string]string{"title": "first", "author": "1"})

	fields, exists := database.HGetAll(testKey)
	if !exists {
		t.Fatalf("Expected hash %s to exist after HSet", testKey)
	}
	if fields["title"] != "first" || fields["author"] != "1" {
		t.Errorf("Unexpected fields after HSet: %v", fields)
	}

	// partial update must leave other fields untouched
	database.HSet(testKey, map[string]string{"title": "second"})

	fields, _ = database.HGetAll(testKey)
	if fields["title"] != "second" {
		t.Errorf("Expected title to be updated, got %q", fields["title"])
	}
	if fields["author"] != "1" {
		t.Errorf("Expected author to be untouched, got %q", fields["author"])
	}

	value, exists := database.HGet(testKey, "title")
	if !exists || value != "second" {
		t.Errorf("HGet(title) = (%q,%v), want (second,true)", value, exists)
	}

	_, exists = database.HGet(testKey, "missing-field")
	if exists {
		t.Errorf("Expected missing field to return loaded=false")
	}

	// HGetAll must return a copy, not a reference to the stored record
	fields, _ = database.HGetAll(testKey)
	fields["title"] = "corrupted"

	value, _ = database.HGet(testKey, "title")
	if value != "second" {
		t.Errorf("HGetAll should return a copy, stored title is now %q", value)
	}
}

func testHIncrBy(t *testing.T, database db.OrderedKVDB) {
	defer database.Close()

	requireFeature(t, database, db.FeatureHash)

	testKey := "record:2"

	// a missing hash counts as zero
	if got := database.HIncrBy(testKey, "up", 1); got != 1 {
		t.Errorf("HIncrBy on missing hash = %d, want 1", got)
	}

	if got := database.HIncrBy(testKey, "up", 2); got != 3 {
		t.Errorf("HIncrBy = %d, want 3", got)
	}

	if got := database.HIncrBy(testKey, "up", -4); got != -1 {
		t.Errorf("HIncrBy with negative delta = %d, want -1", got)
	}

	// the field is stored as its decimal representation
	value, exists := database.HGet(testKey, "up")
	if !exists || value != "-1" {
		t.Errorf("HGet(up) = (%q,%v), want (-1,true)", value, exists)
	}

	// other fields of the same hash are untouched
	database.HSet(testKey, map[string]string{"title": "keep"})
	database.HIncrBy(testKey, "down", 1)

	value, _ = database.HGet(testKey, "title")
	if value != "keep" {
		t.Errorf("HIncrBy should not touch other fields, title is now %q", value)
	}
}

func testCounters(t *testing.T, database db.OrderedKVDB) {
	defer database.Close()

	requireFeature(t, database, db.FeatureCounter)

	testKey := "items.count"

	if got := database.Incr(testKey); got != 1 {
		t.Errorf("First Incr = %d, want 1", got)
	}

	for i := int64(2); i <= 10; i++ {
		if got := database.Incr(testKey); got != i {
			t.Errorf("Incr = %d, want %d", got, i)
		}
	}

	// independent counters do not interfere
	if got := database.Incr("other.count"); got != 1 {
		t.Errorf("Incr on independent counter = %d, want 1", got)
	}
}

func testZSetAdd(t *testing.T, database db.OrderedKVDB) {
	defer database.Close()

	requireFeature(t, database, db.FeatureZSet)

	testKey := "items.top"

	if !database.ZAdd(testKey, "1", 10) {
		t.Errorf("First ZAdd of a member should report added=true")
	}

	// score update of an existing member is not an addition
	if database.ZAdd(testKey, "1", 20) {
		t.Errorf("ZAdd score update should report added=false")
	}

	score, exists := database.ZScore(testKey, "1")
	if !exists || score != 20 {
		t.Errorf("ZScore = (%v,%v), want (20,true)", score, exists)
	}

	_, exists = database.ZScore(testKey, "99")
	if exists {
		t.Errorf("ZScore of missing member should report loaded=false")
	}

	_, exists = database.ZScore("missing-set", "1")
	if exists {
		t.Errorf("ZScore on missing set should report loaded=false")
	}

	database.ZAdd(testKey, "2", 5)
	database.ZAdd(testKey, "3", 15)

	if got := database.ZCard(testKey); got != 3 {
		t.Errorf("ZCard = %d, want 3", got)
	}

	if got := database.ZCard("missing-set"); got != 0 {
		t.Errorf("ZCard on missing set = %d, want 0", got)
	}
}

func testZSetRangeDesc(t *testing.T, database db.OrderedKVDB) {
	defer database.Close()

	requireFeature(t, database, db.FeatureZSet)

	testKey := "items.top"

	database.ZAdd(testKey, "a", 1)
	database.ZAdd(testKey, "b", 3)
	database.ZAdd(testKey, "c", 2)
	database.ZAdd(testKey, "d", 3) // same score as b, tie broken by member

	expectOrder := func(got []db.ScoredMember, want ...string) {
		t.Helper()
		if len(got) != len(want) {
			t.Fatalf("Expected %d members, got %v", len(want), got)
		}
		for i, member := range want {
			if got[i].Member != member {
				t.Errorf("Position %d: expected %s, got %s", i, member, got[i].Member)
			}
		}
	}

	// full range, descending by score, ties ascending by member
	expectOrder(database.ZRangeDesc(testKey, 0, -1), "b", "d", "c", "a")

	// paging windows
	expectOrder(database.ZRangeDesc(testKey, 0, 2), "b", "d")
	expectOrder(database.ZRangeDesc(testKey, 2, 2), "c", "a")
	expectOrder(database.ZRangeDesc(testKey, 3, 10), "a")

	// out-of-range windows are empty
	if got := database.ZRangeDesc(testKey, 10, 5); len(got) != 0 {
		t.Errorf("Expected empty window, got %v", got)
	}
	if got := database.ZRangeDesc("missing-set", 0, 10); len(got) != 0 {
		t.Errorf("Expected empty window on missing set, got %v", got)
	}

	// a score update repositions the member
	database.ZAdd(testKey, "a", 100)
	expectOrder(database.ZRangeDesc(testKey, 0, -1), "a", "b", "d", "c")
}

func testZSetRemove(t *testing.T, database db.OrderedKVDB) {
	defer database.Close()

	requireFeature(t, database, db.FeatureZSet)

	testKey := "items.top"

	database.ZAdd(testKey, "1", 10)
	database.ZAdd(testKey, "2", 20)

	if !database.ZRem(testKey, "1") {
		t.Errorf("ZRem of existing member should report removed=true")
	}

	if database.ZRem(testKey, "1") {
		t.Errorf("Second ZRem of same member should report removed=false")
	}

	if database.ZRem("missing-set", "1") {
		t.Errorf("ZRem on missing set should report removed=false")
	}

	if got := database.ZCard(testKey); got != 1 {
		t.Errorf("ZCard after removal = %d, want 1", got)
	}

	_, exists := database.ZScore(testKey, "1")
	if exists {
		t.Errorf("Removed member should not have a score")
	}

	members := database.ZRangeDesc(testKey, 0, -1)
	if len(members) != 1 || members[0].Member != "2" {
		t.Errorf("Expected only member 2 to remain, got %v", members)
	}
}

func testStringKeys(t *testing.T, database db.OrderedKVDB) {
	defer database.Close()

	requireFeature(t, database, db.FeatureTTL)

	testKey := "url:https://example.org"

	_, exists := database.GetS(testKey)
	if exists {
		t.Errorf("Expected missing string key to return loaded=false")
	}

	// ttl of zero means no expiry
	database.SetEx(testKey, "42", 0)

	value, exists := database.GetS(testKey)
	if !exists || value != "42" {
		t.Errorf("GetS = (%q,%v), want (42,true)", value, exists)
	}

	// overwrite keeps the key readable
	database.SetEx(testKey, "43", 3600)

	value, exists = database.GetS(testKey)
	if !exists || value != "43" {
		t.Errorf("GetS after overwrite = (%q,%v), want (43,true)", value, exists)
	}

	database.Del(testKey)

	_, exists = database.GetS(testKey)
	if exists {
		t.Errorf("Expected deleted string key to return loaded=false")
	}

	// deleting a missing key is a no-op
	database.Del("missing-key")
}

func testManyKeys(t *testing.T, database db.OrderedKVDB) {
	defer database.Close()

	requireFeature(t, database, db.FeatureHash|db.FeatureZSet)

	numKeys := 1000

	for i := 0; i < numKeys; i++ {
		key := fmt.Sprintf("record:%d", i)
		database.HSet(key, map[string]string{"id": fmt.Sprintf("%d", i)})
		database.ZAdd("records.by.id", fmt.Sprintf("%d", i), float64(i))
	}

	for i := 0; i < numKeys; i++ {
		key := fmt.Sprintf("record:%d", i)
		value, exists := database.HGet(key, "id")
		if !exists || value != fmt.Sprintf("%d", i) {
			t.Errorf("HGet(%s) = (%q,%v), want (%d,true)", key, value, exists, i)
		}
	}

	if got := database.ZCard("records.by.id"); got != int64(numKeys) {
		t.Errorf("ZCard = %d, want %d", got, numKeys)
	}

	// highest scores come first
	top := database.ZRangeDesc("records.by.id", 0, 3)
	want := []string{"999", "998", "997"}
	for i, member := range want {
		if top[i].Member != member {
			t.Errorf("Position %d: expected %s, got %s", i, member, top[i].Member)
		}
	}
}

func testConcurrentCounters(t *testing.T, database db.OrderedKVDB) {
	defer database.Close()

	requireFeature(t, database, db.FeatureCounter|db.FeatureHash)

	var (
		goroutines = 8
		perWorker  = 1000
		wg         sync.WaitGroup
	)

	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				database.Incr("concurrent.count")
				database.HIncrBy("record:hot", "up", 1)
			}
		}()
	}
	wg.Wait()

	want := int64(goroutines * perWorker)

	if got := database.Incr("concurrent.count"); got != want+1 {
		t.Errorf("Counter after concurrent increments = %d, want %d", got, want+1)
	}

	value, _ := database.HGet("record:hot", "up")
	if value != fmt.Sprintf("%d", want) {
		t.Errorf("Hash field after concurrent increments = %q, want %d", value, want)
	}
}

func testConcurrentZAdd(t *testing.T, database db.OrderedKVDB) {
	defer database.Close()

	requireFeature(t, database, db.FeatureZSet)

	var (
		goroutines = 16
		added      atomic.Int64
		wg         sync.WaitGroup
	)

	// all goroutines insert the same member: exactly one genuine addition
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(score float64) {
			defer wg.Done()
			if database.ZAdd("votes.up:1", "101", score) {
				added.Add(1)
			}
		}(float64(g))
	}
	wg.Wait()

	if got := added.Load(); got != 1 {
		t.Errorf("Expected exactly 1 genuine addition, got %d", got)
	}

	if got := database.ZCard("votes.up:1"); got != 1 {
		t.Errorf("ZCard = %d, want 1", got)
	}
}

func testInfo(t *testing.T, database db.OrderedKVDB) {
	defer database.Close()

	database.HSet("record:1", map[string]string{"id": "1"})
	database.Incr("items.count")
	database.ZAdd("items.top", "1", 1)
	database.SetEx("url:a", "1", 3600)

	info := database.GetInfo()

	if info.DbType == "" {
		t.Errorf("Expected DbType to be set")
	}

	if len(info.SupportedFeatures) == 0 {
		t.Errorf("Expected at least one supported feature")
	}

	for _, feature := range info.SupportedFeatures {
		if !database.SupportsFeature(feature) {
			t.Errorf("Advertised feature %s not reported by SupportsFeature", feature)
		}
	}
}
