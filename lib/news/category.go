package news

import (
	"fmt"
	"strconv"
)

// CreateCategory registers a new category code. Codes are unique and
// immutable once created; ErrCategoryCodeTaken is returned on a duplicate.
func (s *Service) CreateCategory(code string) (*Category, error) {
	if _, taken, err := s.store.GetS(keyCategoryCodeToID(code)); err != nil {
		return nil, fmt.Errorf("checking category code uniqueness: %w", err)
	} else if taken {
		return nil, ErrCategoryCodeTaken
	}

	id, err := s.store.Incr(keyCategoriesCount)
	if err != nil {
		return nil, fmt.Errorf("allocating category id: %w", err)
	}

	category := &Category{ID: id, Code: code}

	if err := s.store.HSet(keyCategory(id), fieldsOfCategory(category)); err != nil {
		return nil, fmt.Errorf("writing category record: %w", err)
	}
	if err := s.store.SetEx(keyCategoryCodeToID(code), strconv.FormatInt(id, 10), 0); err != nil {
		return nil, fmt.Errorf("writing category code index: %w", err)
	}

	log.Infof("created category %d (%s)", id, code)
	return category, nil
}

// FindCategory returns the category with the given id, or nil if absent
func (s *Service) FindCategory(id int64) (*Category, error) {
	fields, loaded, err := s.store.HGetAll(keyCategory(id))
	if err != nil {
		return nil, fmt.Errorf("reading category record: %w", err)
	}
	if !loaded {
		return nil, nil
	}
	return categoryFromFields(fields)
}

// FindCategoryByCode resolves a category code, or nil if unknown
func (s *Service) FindCategoryByCode(code string) (*Category, error) {
	raw, loaded, err := s.store.GetS(keyCategoryCodeToID(code))
	if err != nil {
		return nil, fmt.Errorf("reading category code index: %w", err)
	}
	if !loaded {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("category code index holds malformed id %q: %w", raw, err)
	}
	return s.FindCategory(id)
}
