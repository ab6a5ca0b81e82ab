package alder

import (
	"testing"

	"github.com/edicola-dev/edicola/lib/db"
	dbtesting "github.com/edicola-dev/edicola/lib/db/testing"
)

func Test(t *testing.T) {
	dbtesting.RunOrderedKVDBTests(t, "AlderDB", func() db.OrderedKVDB {
		return NewAlderDB(nil)
	})
}

func Benchmark(t *testing.B) {
	dbtesting.RunOrderedKVDBBenchmarks(t, "AlderDB", func() db.OrderedKVDB {
		return NewAlderDB(nil)
	})
}
