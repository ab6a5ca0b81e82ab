package news

import (
	"fmt"
)

// loadSubmission fetches a raw submission record without hydration.
// Absent records come back as nil, not as an error.
func (s *Service) loadSubmission(id int64) (*Submission, error) {
	fields, loaded, err := s.store.HGetAll(keyNews(id))
	if err != nil {
		return nil, fmt.Errorf("reading submission record: %w", err)
	}
	if !loaded {
		return nil, nil
	}
	return submissionFromFields(fields)
}

// Create allocates a new submission, writes its record, casts the author's
// sanctioned self-upvote through the regular voting protocol (which also
// computes the initial score/rank and populates the top indices), inserts
// into the chronological indices and claims the url against the repost
// guard. Textual submissions have no url to claim.
//
// The caller is expected to have consulted FindIDByURL beforehand; the
// repost window is a claim lifecycle, not an enforcement gate.
func (s *Service) Create(title, target string, authorID, categoryID int64) (*Submission, error) {
	id, err := s.store.Incr(keyNewsCount)
	if err != nil {
		return nil, fmt.Errorf("allocating submission id: %w", err)
	}

	sub := &Submission{
		ID:         id,
		Title:      title,
		Target:     target,
		AuthorID:   authorID,
		CTime:      s.now().Unix(),
		CategoryID: categoryID,
	}

	if err := s.store.HSet(keyNews(id), fieldsOf(sub)); err != nil {
		return nil, fmt.Errorf("writing submission record: %w", err)
	}

	if _, err := s.store.ZAdd(keyPosted(authorID), member2str(id), float64(sub.CTime)); err != nil {
		return nil, fmt.Errorf("updating posted index: %w", err)
	}

	// the author's free initial vote; authorship bypasses the karma
	// threshold and the cost/transfer rules inside the protocol
	rank, rejection, err := s.Vote(id, authorID, DirectionUp)
	if err != nil {
		return nil, fmt.Errorf("casting initial self-vote: %w", err)
	}
	if rejection != RejectionNone {
		// cannot happen for a fresh record and the author's own vote
		return nil, fmt.Errorf("initial self-vote refused: %s", rejection)
	}
	sub.UpCount = 1
	sub.Score = s.computeScore(1, 0)
	sub.Rank = rank

	if _, err := s.store.ZAdd(keyCronIndex, member2str(id), float64(sub.CTime)); err != nil {
		return nil, fmt.Errorf("updating chronological index: %w", err)
	}
	if categoryID != 0 {
		if _, err := s.store.ZAdd(keyCronByCategory(categoryID), member2str(id), float64(sub.CTime)); err != nil {
			return nil, fmt.Errorf("updating category chronological index: %w", err)
		}
	}

	if !sub.IsTextual() {
		if err := s.claimURL(target, id); err != nil {
			return nil, err
		}
	}

	metricSubmissionsCreated.Inc()
	log.Infof("created submission %d by user %d", id, authorID)
	return sub, nil
}

// Update overwrites the title and, when changed, the target of a
// submission. A retarget releases the old repost-guard claim and places a
// fresh one unless the new target is textual. Score, rank and indices are
// untouched by an edit. Returns false when the submission does not exist.
func (s *Service) Update(id int64, newTitle, newTarget string) (bool, error) {
	sub, err := s.loadSubmission(id)
	if err != nil {
		return false, err
	}
	if sub == nil {
		return false, nil
	}

	if newTarget != sub.Target {
		if !sub.IsTextual() {
			if err := s.releaseURL(sub.Target); err != nil {
				return false, err
			}
		}
		if !isTextualTarget(newTarget) {
			if err := s.claimURL(newTarget, id); err != nil {
				return false, err
			}
		}
	}

	err = s.store.HSet(keyNews(id), map[string]string{
		"title": newTitle,
		"url":   newTarget,
	})
	if err != nil {
		return false, fmt.Errorf("writing submission record: %w", err)
	}

	metricSubmissionsEdited.Inc()
	return true, nil
}

// Destroy soft-deletes a submission: the tombstone flag is set and the id
// is removed from every listing index it could belong to. Vote ledgers,
// karma already transferred and the record itself are left in place.
// Calling Destroy again on an already destroyed submission is a no-op that
// still reports success.
func (s *Service) Destroy(id int64) (bool, error) {
	sub, err := s.loadSubmission(id)
	if err != nil {
		return false, err
	}
	if sub == nil {
		return false, nil
	}

	if err := s.store.HSet(keyNews(id), map[string]string{"del": "1"}); err != nil {
		return false, fmt.Errorf("writing tombstone flag: %w", err)
	}

	member := member2str(id)
	indices := []string{keyTopIndex, keyCronIndex}
	if sub.CategoryID != 0 {
		indices = append(indices, keyTopByCategory(sub.CategoryID), keyCronByCategory(sub.CategoryID))
	}
	for _, index := range indices {
		if _, err := s.store.ZRem(index, member); err != nil {
			return false, fmt.Errorf("removing submission from index %s: %w", index, err)
		}
	}

	metricSubmissionsDeleted.Inc()
	log.Infof("destroyed submission %d", id)
	return true, nil
}
