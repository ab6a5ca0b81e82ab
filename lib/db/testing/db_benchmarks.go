package testing

import (
	"fmt"
	"testing"

	"github.com/edicola-dev/edicola/lib/db"
)

// RunOrderedKVDBBenchmarks runs all benchmarks for an ordered-index engine implementation
func RunOrderedKVDBBenchmarks(b *testing.B, name string, factory DBFactory) {

	b.Run("HSet", func(b *testing.B) {
		benchmarkHSet(b, factory())
	})

	b.Run("HGetAll", func(b *testing.B) {
		benchmarkHGetAll(b, factory())
	})

	b.Run("HIncrBy", func(b *testing.B) {
		benchmarkHIncrBy(b, factory())
	})

	b.Run("Incr", func(b *testing.B) {
		benchmarkIncr(b, factory())
	})

	b.Run("ZAdd", func(b *testing.B) {
		benchmarkZAdd(b, factory())
	})

	b.Run("ZScore", func(b *testing.B) {
		benchmarkZScore(b, factory())
	})

	b.Run("ZRangeDesc", func(b *testing.B) {
		benchmarkZRangeDesc(b, factory())
	})

	b.Run("SetEx&GetS", func(b *testing.B) {
		benchmarkSetExGetS(b, factory())
	})

	b.Run("MixedUsage", func(b *testing.B) {
		benchmarkMixedUsage(b, factory())
	})
}

// --------------------------------------------------------------------------
// Benchmark functions
// --------------------------------------------------------------------------

// Benchmark for HSet operation
func benchmarkHSet(b *testing.B, database db.OrderedKVDB) {

	b.Cleanup(func() {
		database.Close()
	})

	requireFeature(b, database, db.FeatureHash)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			key := fmt.Sprintf("record:%d", counter)
			database.HSet(key, map[string]string{"title": "benchmark", "up": "1"})
			counter++
		}
	})
}

// Benchmark for HGetAll operation over a fixed key set
func benchmarkHGetAll(b *testing.B, database db.OrderedKVDB) {

	b.Cleanup(func() {
		database.Close()
	})

	requireFeature(b, database, db.FeatureHash)

	// Prepare data
	numKeys := 10000
	for i := 0; i < numKeys; i++ {
		database.HSet(fmt.Sprintf("record:%d", i), map[string]string{
			"title": fmt.Sprintf("title-%d", i),
			"up":    "1",
			"down":  "0",
		})
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			database.HGetAll(fmt.Sprintf("record:%d", counter%numKeys))
			counter++
		}
	})
}

// Benchmark for HIncrBy contention on a single hot record
func benchmarkHIncrBy(b *testing.B, database db.OrderedKVDB) {

	b.Cleanup(func() {
		database.Close()
	})

	requireFeature(b, database, db.FeatureHash)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			database.HIncrBy("record:hot", "up", 1)
		}
	})
}

// Benchmark for Incr contention on a single counter
func benchmarkIncr(b *testing.B, database db.OrderedKVDB) {

	b.Cleanup(func() {
		database.Close()
	})

	requireFeature(b, database, db.FeatureCounter)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			database.Incr("items.count")
		}
	})
}

// Benchmark for ZAdd operation
func benchmarkZAdd(b *testing.B, database db.OrderedKVDB) {

	b.Cleanup(func() {
		database.Close()
	})

	requireFeature(b, database, db.FeatureZSet)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			// spread members over many sets to keep the per-set slices small
			key := fmt.Sprintf("items.top:%d", counter%128)
			database.ZAdd(key, fmt.Sprintf("%d", counter), float64(counter))
			counter++
		}
	})
}

// Benchmark for ZScore operation over a fixed set
func benchmarkZScore(b *testing.B, database db.OrderedKVDB) {

	b.Cleanup(func() {
		database.Close()
	})

	requireFeature(b, database, db.FeatureZSet)

	// Prepare data
	numMembers := 10000
	for i := 0; i < numMembers; i++ {
		database.ZAdd("items.top", fmt.Sprintf("%d", i), float64(i))
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			database.ZScore("items.top", fmt.Sprintf("%d", counter%numMembers))
			counter++
		}
	})
}

// Benchmark for ZRangeDesc paging windows over a fixed set
func benchmarkZRangeDesc(b *testing.B, database db.OrderedKVDB) {

	b.Cleanup(func() {
		database.Close()
	})

	requireFeature(b, database, db.FeatureZSet)

	// Prepare data
	numMembers := 10000
	for i := 0; i < numMembers; i++ {
		database.ZAdd("items.top", fmt.Sprintf("%d", i), float64(i))
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			database.ZRangeDesc("items.top", (counter%100)*30, 30)
			counter++
		}
	})
}

// Benchmark for SetEx and GetS operations
func benchmarkSetExGetS(b *testing.B, database db.OrderedKVDB) {

	b.Cleanup(func() {
		database.Close()
	})

	requireFeature(b, database, db.FeatureTTL)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			key := fmt.Sprintf("url:%d", counter%1024)
			database.SetEx(key, "1", 3600)
			database.GetS(key)
			counter++
		}
	})
}

// Benchmark simulating a realistic mixed workload: mostly reads with some
// record updates, counter increments and ordered-set insertions
func benchmarkMixedUsage(b *testing.B, database db.OrderedKVDB) {

	b.Cleanup(func() {
		database.Close()
	})

	requireFeature(b, database, db.FeatureHash|db.FeatureCounter|db.FeatureZSet)

	// Prepare data
	numKeys := 1000
	for i := 0; i < numKeys; i++ {
		database.HSet(fmt.Sprintf("record:%d", i), map[string]string{"up": "1", "down": "0"})
		database.ZAdd("items.top", fmt.Sprintf("%d", i), float64(i))
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			id := counter % numKeys
			switch counter % 10 {
			case 0:
				database.HIncrBy(fmt.Sprintf("record:%d", id), "up", 1)
			case 1:
				database.ZAdd("items.top", fmt.Sprintf("%d", id), float64(counter))
			case 2:
				database.Incr("items.count")
			default:
				database.HGetAll(fmt.Sprintf("record:%d", id))
				database.ZRangeDesc("items.top", 0, 30)
			}
			counter++
		}
	})
}
