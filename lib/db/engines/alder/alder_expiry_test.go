package alder

import (
	"sync/atomic"
	"testing"
	"time"
)

// fakeClock is a settable time source for expiry tests
type fakeClock struct {
	now atomic.Int64
}

func newFakeClock() *fakeClock {
	c := &fakeClock{}
	c.now.Store(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).UnixNano())
	return c
}

func (c *fakeClock) Now() time.Time {
	return time.Unix(0, c.now.Load())
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now.Add(int64(d))
}

func newTestDB(clock *fakeClock) *alderImpl {
	return NewAlderDB(&DBOptions{
		NumShards:  2,
		GCInterval: 10 * time.Millisecond,
		Clock:      clock.Now,
	}).(*alderImpl)
}

// TestLazyExpiry verifies that GetS hides a key the moment its ttl elapses,
// independent of the background collector
func TestLazyExpiry(t *testing.T) {
	clock := newFakeClock()
	database := newTestDB(clock)
	defer database.Close()

	database.SetEx("url:a", "1", 100)

	if _, ok := database.GetS("url:a"); !ok {
		t.Fatal("Key should be readable before the ttl elapses")
	}

	clock.Advance(99 * time.Second)
	if _, ok := database.GetS("url:a"); !ok {
		t.Error("Key should still be readable one second before the deadline")
	}

	clock.Advance(2 * time.Second)
	if _, ok := database.GetS("url:a"); ok {
		t.Error("Key should be reported absent once the ttl has elapsed")
	}
}

// TestOverwriteExtendsDeadline verifies that overwriting a key resets its ttl
func TestOverwriteExtendsDeadline(t *testing.T) {
	clock := newFakeClock()
	database := newTestDB(clock)
	defer database.Close()

	database.SetEx("url:a", "1", 100)

	clock.Advance(90 * time.Second)
	database.SetEx("url:a", "2", 100)

	// past the first deadline, before the second
	clock.Advance(20 * time.Second)

	value, ok := database.GetS("url:a")
	if !ok || value != "2" {
		t.Errorf("GetS = (%q,%v), want (2,true)", value, ok)
	}
}

// TestOverwriteClearsDeadline verifies that overwriting with ttl=0 makes the
// key permanent
func TestOverwriteClearsDeadline(t *testing.T) {
	clock := newFakeClock()
	database := newTestDB(clock)
	defer database.Close()

	database.SetEx("url:a", "1", 100)
	database.SetEx("url:a", "1", 0)

	clock.Advance(1000 * time.Second)

	if _, ok := database.GetS("url:a"); !ok {
		t.Error("Key overwritten with ttl=0 should never expire")
	}
}

// TestGCCollectsExpiredKeys verifies that the background collector physically
// removes expired entries
func TestGCCollectsExpiredKeys(t *testing.T) {
	clock := newFakeClock()
	database := newTestDB(clock)
	defer database.Close()

	for _, key := range []string{"url:a", "url:b", "url:c"} {
		database.SetEx(key, "1", 10)
	}
	database.SetEx("url:keep", "1", 1000)

	clock.Advance(11 * time.Second)

	// wait for the collector to sweep
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if stringCount(database) == 1 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if got := stringCount(database); got != 1 {
		t.Errorf("Expected 1 remaining string entry after GC, got %d", got)
	}

	if _, ok := database.GetS("url:keep"); !ok {
		t.Error("Unexpired key should survive the GC sweep")
	}
}

// stringCount returns the number of physically stored string entries
func stringCount(database *alderImpl) int {
	count := 0
	for _, shard := range database.shards {
		count += shard.Strings.Size()
	}
	return count
}
