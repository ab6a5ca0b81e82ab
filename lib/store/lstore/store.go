package lstore

import (
	"github.com/edicola-dev/edicola/lib/db"
	"github.com/edicola-dev/edicola/lib/store"
)

type storeImpl struct {
	db db.OrderedKVDB
}

// NewLocalStore creates a new local store instance.
// This store implementation is not distributed and only works on a single node.
// This works by using an engine from the db package directly.
func NewLocalStore(factory store.DBFactory) store.IStore {
	return &storeImpl{
		db: factory(),
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) HGetAll(key string) (map[string]string, bool, error) {
	if !s.db.SupportsFeature(db.FeatureHash) {
		return nil, false, store.NewError(store.RetCUnsupportedOperation, "HGetAll operation is not supported")
	}
	fields, loaded := s.db.HGetAll(key)
	return fields, loaded, nil
}

func (s *storeImpl) HGet(key, field string) (string, bool, error) {
	if !s.db.SupportsFeature(db.FeatureHash) {
		return "", false, store.NewError(store.RetCUnsupportedOperation, "HGet operation is not supported")
	}
	value, loaded := s.db.HGet(key, field)
	return value, loaded, nil
}

func (s *storeImpl) HSet(key string, fields map[string]string) error {
	if !s.db.SupportsFeature(db.FeatureHash) {
		return store.NewError(store.RetCUnsupportedOperation, "HSet operation is not supported")
	}
	s.db.HSet(key, fields)
	return nil
}

func (s *storeImpl) HIncrBy(key, field string, delta int64) (int64, error) {
	if !s.db.SupportsFeature(db.FeatureHash) {
		return 0, store.NewError(store.RetCUnsupportedOperation, "HIncrBy operation is not supported")
	}
	return s.db.HIncrBy(key, field, delta), nil
}

func (s *storeImpl) Incr(key string) (int64, error) {
	if !s.db.SupportsFeature(db.FeatureCounter) {
		return 0, store.NewError(store.RetCUnsupportedOperation, "Incr operation is not supported")
	}
	return s.db.Incr(key), nil
}

func (s *storeImpl) ZAdd(key, member string, score float64) (bool, error) {
	if !s.db.SupportsFeature(db.FeatureZSet) {
		return false, store.NewError(store.RetCUnsupportedOperation, "ZAdd operation is not supported")
	}
	return s.db.ZAdd(key, member, score), nil
}

func (s *storeImpl) ZScore(key, member string) (float64, bool, error) {
	if !s.db.SupportsFeature(db.FeatureZSet) {
		return 0, false, store.NewError(store.RetCUnsupportedOperation, "ZScore operation is not supported")
	}
	score, loaded := s.db.ZScore(key, member)
	return score, loaded, nil
}

func (s *storeImpl) ZCard(key string) (int64, error) {
	if !s.db.SupportsFeature(db.FeatureZSet) {
		return 0, store.NewError(store.RetCUnsupportedOperation, "ZCard operation is not supported")
	}
	return s.db.ZCard(key), nil
}

func (s *storeImpl) ZRem(key, member string) (bool, error) {
	if !s.db.SupportsFeature(db.FeatureZSet) {
		return false, store.NewError(store.RetCUnsupportedOperation, "ZRem operation is not supported")
	}
	return s.db.ZRem(key, member), nil
}

func (s *storeImpl) ZRangeDesc(key string, start, count int) ([]db.ScoredMember, error) {
	if !s.db.SupportsFeature(db.FeatureZSet) {
		return nil, store.NewError(store.RetCUnsupportedOperation, "ZRangeDesc operation is not supported")
	}
	return s.db.ZRangeDesc(key, start, count), nil
}

func (s *storeImpl) SetEx(key, value string, ttlSeconds uint64) error {
	if !s.db.SupportsFeature(db.FeatureTTL) {
		return store.NewError(store.RetCUnsupportedOperation, "SetEx operation is not supported")
	}
	s.db.SetEx(key, value, ttlSeconds)
	return nil
}

func (s *storeImpl) GetS(key string) (string, bool, error) {
	if !s.db.SupportsFeature(db.FeatureTTL) {
		return "", false, store.NewError(store.RetCUnsupportedOperation, "GetS operation is not supported")
	}
	value, loaded := s.db.GetS(key)
	return value, loaded, nil
}

func (s *storeImpl) Del(key string) error {
	if !s.db.SupportsFeature(db.FeatureTTL) {
		return store.NewError(store.RetCUnsupportedOperation, "Del operation is not supported")
	}
	s.db.Del(key)
	return nil
}

// --------------------------------------------------------------------------
// Batched Lookups
// --------------------------------------------------------------------------

func (s *storeImpl) HGetAllMulti(keys []string) ([]map[string]string, error) {
	if !s.db.SupportsFeature(db.FeatureHash) {
		return nil, store.NewError(store.RetCUnsupportedOperation, "HGetAllMulti operation is not supported")
	}

	records := make([]map[string]string, len(keys))
	for i, key := range keys {
		if fields, loaded := s.db.HGetAll(key); loaded {
			records[i] = fields
		}
	}
	return records, nil
}

func (s *storeImpl) HGetMulti(keys []string, field string) ([]string, []bool, error) {
	if !s.db.SupportsFeature(db.FeatureHash) {
		return nil, nil, store.NewError(store.RetCUnsupportedOperation, "HGetMulti operation is not supported")
	}

	values := make([]string, len(keys))
	loaded := make([]bool, len(keys))
	for i, key := range keys {
		values[i], loaded[i] = s.db.HGet(key, field)
	}
	return values, loaded, nil
}

func (s *storeImpl) ZScoreMulti(sets []string, member string) ([]float64, []bool, error) {
	if !s.db.SupportsFeature(db.FeatureZSet) {
		return nil, nil, store.NewError(store.RetCUnsupportedOperation, "ZScoreMulti operation is not supported")
	}

	scores := make([]float64, len(sets))
	loaded := make([]bool, len(sets))
	for i, set := range sets {
		scores[i], loaded[i] = s.db.ZScore(set, member)
	}
	return scores, loaded, nil
}

// --------------------------------------------------------------------------
// Metadata
// --------------------------------------------------------------------------

func (s *storeImpl) GetDBInfo() (db.DatabaseInfo, error) {
	return s.db.GetInfo(), nil
}

func (s *storeImpl) Close() error {
	return s.db.Close()
}
