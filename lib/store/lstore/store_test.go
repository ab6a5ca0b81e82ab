package lstore

import (
	"testing"

	"github.com/edicola-dev/edicola/lib/db"
	"github.com/edicola-dev/edicola/lib/db/engines/alder"
	"github.com/edicola-dev/edicola/lib/store"
)

func newTestStore() store.IStore {
	return NewLocalStore(func() db.OrderedKVDB {
		return alder.NewAlderDB(nil)
	})
}

func TestHashRoundTrip(t *testing.T) {
	st := newTestStore()
	defer st.Close()

	if err := st.HSet("record:1", map[string]string{"title": "hello", "up": "1"}); err != nil {
		t.Fatalf("HSet failed: %v", err)
	}

	fields, loaded, err := st.HGetAll("record:1")
	if err != nil || !loaded {
		t.Fatalf("HGetAll = (%v,%v,%v)", fields, loaded, err)
	}
	if fields["title"] != "hello" {
		t.Errorf("Expected title hello, got %q", fields["title"])
	}

	newValue, err := st.HIncrBy("record:1", "up", 2)
	if err != nil || newValue != 3 {
		t.Errorf("HIncrBy = (%d,%v), want (3,nil)", newValue, err)
	}
}

func TestCountersAndZSets(t *testing.T) {
	st := newTestStore()
	defer st.Close()

	id, err := st.Incr("items.count")
	if err != nil || id != 1 {
		t.Fatalf("Incr = (%d,%v), want (1,nil)", id, err)
	}

	added, err := st.ZAdd("items.top", "1", 10)
	if err != nil || !added {
		t.Fatalf("ZAdd = (%v,%v), want (true,nil)", added, err)
	}

	added, err = st.ZAdd("items.top", "1", 20)
	if err != nil || added {
		t.Errorf("ZAdd score update = (%v,%v), want (false,nil)", added, err)
	}

	score, loaded, err := st.ZScore("items.top", "1")
	if err != nil || !loaded || score != 20 {
		t.Errorf("ZScore = (%v,%v,%v), want (20,true,nil)", score, loaded, err)
	}

	count, err := st.ZCard("items.top")
	if err != nil || count != 1 {
		t.Errorf("ZCard = (%d,%v), want (1,nil)", count, err)
	}

	removed, err := st.ZRem("items.top", "1")
	if err != nil || !removed {
		t.Errorf("ZRem = (%v,%v), want (true,nil)", removed, err)
	}
}

func TestStringKeys(t *testing.T) {
	st := newTestStore()
	defer st.Close()

	if err := st.SetEx("url:a", "42", 0); err != nil {
		t.Fatalf("SetEx failed: %v", err)
	}

	value, loaded, err := st.GetS("url:a")
	if err != nil || !loaded || value != "42" {
		t.Errorf("GetS = (%q,%v,%v), want (42,true,nil)", value, loaded, err)
	}

	if err := st.Del("url:a"); err != nil {
		t.Fatalf("Del failed: %v", err)
	}

	_, loaded, _ = st.GetS("url:a")
	if loaded {
		t.Error("Deleted key should not be readable")
	}
}

func TestBatchedLookups(t *testing.T) {
	st := newTestStore()
	defer st.Close()

	st.HSet("record:1", map[string]string{"title": "one", "author": "7"})
	st.HSet("record:3", map[string]string{"title": "three", "author": "8"})
	st.ZAdd("votes.up:1", "99", 1000)

	// HGetAllMulti keeps input order and yields nil for missing hashes
	records, err := st.HGetAllMulti([]string{"record:1", "record:2", "record:3"})
	if err != nil {
		t.Fatalf("HGetAllMulti failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(records))
	}
	if records[0]["title"] != "one" || records[2]["title"] != "three" {
		t.Errorf("Unexpected records: %v", records)
	}
	if records[1] != nil {
		t.Errorf("Missing hash should yield nil, got %v", records[1])
	}

	// HGetMulti returns one field per key
	values, loaded, err := st.HGetMulti([]string{"record:1", "record:2", "record:3"}, "author")
	if err != nil {
		t.Fatalf("HGetMulti failed: %v", err)
	}
	if !loaded[0] || loaded[1] || !loaded[2] {
		t.Errorf("Unexpected loaded flags: %v", loaded)
	}
	if values[0] != "7" || values[2] != "8" {
		t.Errorf("Unexpected values: %v", values)
	}

	// ZScoreMulti checks one member across several sets
	scores, loaded, err := st.ZScoreMulti([]string{"votes.up:1", "votes.down:1"}, "99")
	if err != nil {
		t.Fatalf("ZScoreMulti failed: %v", err)
	}
	if !loaded[0] || loaded[1] {
		t.Errorf("Unexpected loaded flags: %v", loaded)
	}
	if scores[0] != 1000 {
		t.Errorf("Expected score 1000, got %v", scores[0])
	}
}
