package news

import (
	"fmt"
	"strconv"
)

// listing reads a window of an ordered index in descending score order and
// returns the ids plus the index's total cardinality for pagination
func (s *Service) listing(index string, start, count int) ([]int64, int64, error) {
	members, err := s.store.ZRangeDesc(index, start, count)
	if err != nil {
		return nil, 0, fmt.Errorf("reading index %s: %w", index, err)
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m.Member, 10, 64)
		if err != nil {
			return nil, 0, fmt.Errorf("index %s holds malformed member %q: %w", index, m.Member, err)
		}
		ids = append(ids, id)
	}

	total, err := s.store.ZCard(index)
	if err != nil {
		return nil, 0, fmt.Errorf("counting index %s: %w", index, err)
	}

	metricListingReads.Inc()
	return ids, total, nil
}

// TopListing returns a rank-ordered window of submission ids, globally or
// scoped to a category (categoryID 0 means global), plus the index's total
// cardinality
func (s *Service) TopListing(categoryID int64, start, count int) ([]int64, int64, error) {
	index := keyTopIndex
	if categoryID != 0 {
		index = keyTopByCategory(categoryID)
	}
	return s.listing(index, start, count)
}

// LatestListing returns a chronological window of submission ids, newest
// first, globally or scoped to a category
func (s *Service) LatestListing(categoryID int64, start, count int) ([]int64, int64, error) {
	index := keyCronIndex
	if categoryID != 0 {
		index = keyCronByCategory(categoryID)
	}
	return s.listing(index, start, count)
}

// SavedListing returns the submissions a user up-voted, newest first
func (s *Service) SavedListing(userID int64, start, count int) ([]int64, int64, error) {
	return s.listing(keySaved(userID), start, count)
}

// PostedListing returns the submissions a user authored, newest first
func (s *Service) PostedListing(userID int64, start, count int) ([]int64, int64, error) {
	return s.listing(keyPosted(userID), start, count)
}
