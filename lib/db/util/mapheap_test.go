package util

import (
	"container/heap"
	"sort"
	"testing"
)

// TestNewMapHeap tests the creation of a new MapHeap
func TestNewMapHeap(t *testing.T) {
	mh := NewMapHeap()

	if mh == nil {
		t.Fatal("NewMapHeap() returned nil")
	}

	if mh.Len() != 0 {
		t.Errorf("New heap should be empty, but has length %d", mh.Len())
	}

	if len(mh.itemsMap) != 0 {
		t.Errorf("New heap's map should be empty, but has %d items", len(mh.itemsMap))
	}
}

// TestAddItem tests adding items to the heap
func TestAddItem(t *testing.T) {
	mh := NewMapHeap()
	heap.Init(mh)

	// Add a few items
	mh.AddItem("url:a", 100)
	mh.AddItem("url:b", 200)
	mh.AddItem("url:c", 50)

	if mh.Len() != 3 {
		t.Errorf("Heap should have 3 items, but has %d", mh.Len())
	}

	// Check if items exist
	for _, key := range []string{"url:a", "url:b", "url:c"} {
		if !mh.Contains(key) {
			t.Errorf("Heap should contain key %q", key)
		}
	}

	// Check the order (min heap, so the lowest deadline should be first)
	item, exists := mh.Peek()
	if !exists {
		t.Fatal("Peek() should return an item")
	}

	if item.Key != "url:c" || item.Priority != 50 {
		t.Errorf("Expected min item to be (url:c,50), got (%s,%d)", item.Key, item.Priority)
	}
}

// TestUpdateItem tests updating existing items
func TestUpdateItem(t *testing.T) {
	mh := NewMapHeap()
	heap.Init(mh)

	// Add items
	mh.AddItem("url:a", 100)
	mh.AddItem("url:b", 200)

	// Update an item
	mh.AddItem("url:a", 300) // push deadline of url:a back

	// Check if update worked
	item, exists := mh.GetByKey("url:a")
	if !exists {
		t.Fatal("Item with key url:a should exist")
	}

	if item.Priority != 300 {
		t.Errorf("Item with key url:a should have priority 300, got %d", item.Priority)
	}

	// Check if heap property is maintained
	min, _ := mh.Peek()
	if min.Key != "url:b" {
		t.Errorf("Min item should now be key url:b, got %s", min.Key)
	}

	// Update to lower value
	mh.AddItem("url:b", 50)

	min, _ = mh.Peek()
	if min.Key != "url:b" || min.Priority != 50 {
		t.Errorf("Min item should now be (url:b,50), got (%s,%d)", min.Key, min.Priority)
	}
}

// TestRemoveByKey tests removing items by key
func TestRemoveByKey(t *testing.T) {
	mh := NewMapHeap()
	heap.Init(mh)

	mh.AddItem("url:a", 100)
	mh.AddItem("url:b", 200)
	mh.AddItem("url:c", 300)

	// Remove item with key url:b
	value, exists := mh.RemoveByKey("url:b")

	if !exists {
		t.Fatal("RemoveByKey should return true for existing key")
	}

	if value != 200 {
		t.Errorf("RemoveByKey should return priority 200, got %d", value)
	}

	if mh.Len() != 2 {
		t.Errorf("Heap should have 2 items after removal, has %d", mh.Len())
	}

	if mh.Contains("url:b") {
		t.Error("Heap should not contain key url:b after removal")
	}

	// Try to remove non-existent key
	_, exists = mh.RemoveByKey("url:z")
	if exists {
		t.Error("RemoveByKey should return false for non-existent key")
	}
}

// TestPopOrder tests if items are popped in correct order
func TestPopOrder(t *testing.T) {
	mh := NewMapHeap()
	heap.Init(mh)

	// Add items in random order
	entries := []struct {
		key      string
		priority uint64
	}{
		{"e", 50},
		{"c", 30},
		{"a", 10},
		{"d", 40},
		{"b", 20},
	}

	for _, e := range entries {
		mh.AddItem(e.key, e.priority)
	}

	// Sort the entries for comparison
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].priority < entries[j].priority
	})

	// Pop all items and verify order
	for i, expected := range entries {
		if mh.Len() == 0 {
			t.Fatalf("Heap empty after %d items, expected %d items", i, len(entries))
		}

		item := heap.Pop(mh).(*Item)
		if item.Key != expected.key || item.Priority != expected.priority {
			t.Errorf("Pop %d: expected (%s,%d), got (%s,%d)",
				i, expected.key, expected.priority, item.Key, item.Priority)
		}
	}

	if mh.Len() != 0 {
		t.Errorf("Heap should be empty after popping all items, has %d items", mh.Len())
	}
}

// TestPeekEmptyHeap tests behavior when peeking an empty heap
func TestPeekEmptyHeap(t *testing.T) {
	mh := NewMapHeap()
	heap.Init(mh)

	_, exists := mh.Peek()
	if exists {
		t.Error("Peek on empty heap should return exists=false")
	}
}

// TestGetByKey tests retrieving items by key
func TestGetByKey(t *testing.T) {
	mh := NewMapHeap()
	heap.Init(mh)

	mh.AddItem("url:a", 100)
	mh.AddItem("url:b", 200)

	// Get existing item
	item, exists := mh.GetByKey("url:a")
	if !exists {
		t.Fatal("GetByKey should find existing key")
	}

	if item.Key != "url:a" || item.Priority != 100 {
		t.Errorf("GetByKey returned incorrect item: expected (url:a,100), got (%s,%d)",
			item.Key, item.Priority)
	}

	// Get non-existent item
	_, exists = mh.GetByKey("url:z")
	if exists {
		t.Error("GetByKey should return exists=false for non-existent key")
	}
}
