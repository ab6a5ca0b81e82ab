// Package util
//
// This file provides a specialized priority queue for garbage collection
// purposes. It combines a binary heap with a hash map to provide both
// efficient priority-based operations and key-based access: the heap yields
// the entry with the nearest deadline, the map allows direct removal when an
// entry is overwritten or deleted before it expires.
//
// Time complexity:
//   - O(log n) for priority operations (Push, Pop, Update)
//   - O(1) for key-based lookups and existence checks
//   - O(log n) for key-based removal
//
// Concurrency: this implementation is not thread-safe by default. For
// concurrent use, external synchronization must be applied.
//
// Example usage:
//
//	// Create a new queue
//	gcQueue := NewMapHeap()
//
//	// Schedule entries with their expiry deadlines
//	gcQueue.AddItem("session:1", deadline1)
//	gcQueue.AddItem("session:2", deadline2)
//
//	// Inspect the entry expiring next
//	next, exists := gcQueue.Peek()
//
//	// Remove a specific entry (e.g. when it is deleted early)
//	gcQueue.RemoveByKey("session:1")
//
//	// Collect everything due at or before now
//	for {
//	    next, ok := gcQueue.Peek()
//	    if !ok || next.Priority > now {
//	        break
//	    }
//	    heap.Pop(gcQueue)
//	    // drop the entry from storage
//	}
package util

import (
	"container/heap"
	"strconv"
)

// Item represents a scheduled entry in the garbage collection queue,
// identified by its storage key and ordered by its priority (deadline)
type Item struct {
	Key      string // Storage key of the entry
	Priority uint64 // Deadline used for ordering in the heap
	index    int    // Index in the heap, maintained by heap package
}

func (i *Item) String() string {
	return "{Key: " + i.Key + ", Priority: " + strconv.FormatUint(i.Priority, 10) + "}"
}

// MapHeap implements a priority queue for garbage collection
// with both heap operations and key-based access
type MapHeap struct {
	items    []*Item          // The actual heap slice
	itemsMap map[string]*Item // Map for O(1) access by key
}

// NewMapHeap creates a new garbage collection queue
func NewMapHeap() *MapHeap {
	return &MapHeap{
		items:    make([]*Item, 0),
		itemsMap: make(map[string]*Item),
	}
}

// Len returns the number of items in the queue (part of heap.Interface)
func (gcq *MapHeap) Len() int { return len(gcq.items) }

// Less compares items by priority (part of heap.Interface)
// For GC we want the nearest deadline first (min-heap)
func (gcq *MapHeap) Less(i, j int) bool {
	return gcq.items[i].Priority < gcq.items[j].Priority
}

// Swap exchanges items at positions i and j (part of heap.Interface)
func (gcq *MapHeap) Swap(i, j int) {
	gcq.items[i], gcq.items[j] = gcq.items[j], gcq.items[i]
	gcq.items[i].index = i
	gcq.items[j].index = j
}

// Push adds an item to the heap (part of heap.Interface)
func (gcq *MapHeap) Push(x interface{}) {
	n := len(gcq.items)
	item := x.(*Item)
	item.index = n
	gcq.items = append(gcq.items, item)
	gcq.itemsMap[item.Key] = item
}

// Pop removes and returns the minimum item (part of heap.Interface)
func (gcq *MapHeap) Pop() interface{} {
	old := gcq.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // Avoid memory leak
	item.index = -1 // For safety
	gcq.items = old[:n-1]
	delete(gcq.itemsMap, item.Key)
	return item
}

// AddItem adds a new item to the queue or updates the deadline of an existing one
func (gcq *MapHeap) AddItem(key string, priority uint64) {
	// Check if item already exists
	if item, exists := gcq.itemsMap[key]; exists {
		// Update priority and fix heap
		item.Priority = priority
		heap.Fix(gcq, item.index)
		return
	}

	// Create and add new item
	item := &Item{
		Key:      key,
		Priority: priority,
	}
	heap.Push(gcq, item)
}

// RemoveByKey removes an item by its key
func (gcq *MapHeap) RemoveByKey(key string) (uint64, bool) {
	item, exists := gcq.itemsMap[key]
	if !exists {
		return 0, false
	}

	// Remove from heap
	heap.Remove(gcq, item.index)
	return item.Priority, true
}

// Peek returns the minimum priority item without removing it
func (gcq *MapHeap) Peek() (*Item, bool) {
	if len(gcq.items) == 0 {
		return nil, false
	}
	return gcq.items[0], true
}

// Contains checks if a key exists in the queue
func (gcq *MapHeap) Contains(key string) bool {
	_, exists := gcq.itemsMap[key]
	return exists
}

// GetByKey retrieves an item by its key without removing it
func (gcq *MapHeap) GetByKey(key string) (*Item, bool) {
	item, exists := gcq.itemsMap[key]
	return item, exists
}
