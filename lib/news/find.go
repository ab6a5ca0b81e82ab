package news

import (
	"fmt"
	"sort"
	"strconv"
)

// FindOptions controls batch hydration
type FindOptions struct {
	// UpdateRank recomputes every fetched submission's rank from its
	// current age, refreshes drifted cache entries and indices and
	// re-sorts the batch by the fresh ranks.
	UpdateRank bool
	// ViewerID, when non-zero, attaches this user's vote state to every
	// fetched submission.
	ViewerID int64
}

// Find fetches submissions by id as one batched operation. Ids whose record
// is absent are skipped silently; callers must not assume the output length
// equals the input length. Every returned submission has its author's
// identity attached; with UpdateRank set the batch comes back re-sorted by
// the freshly computed rank.
func (s *Service) Find(ids []int64, opts FindOptions) ([]*Submission, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = keyNews(id)
	}

	records, err := s.store.HGetAllMulti(keys)
	if err != nil {
		return nil, fmt.Errorf("reading submission records: %w", err)
	}

	subs := make([]*Submission, 0, len(records))
	for _, fields := range records {
		if fields == nil {
			continue
		}
		sub, err := submissionFromFields(fields)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	if len(subs) == 0 {
		return nil, nil
	}

	if opts.UpdateRank {
		if err := s.refreshRanks(subs); err != nil {
			return nil, err
		}
	}

	if err := s.attachAuthors(subs); err != nil {
		return nil, err
	}

	if opts.ViewerID != 0 {
		if err := s.attachViewerVotes(subs, opts.ViewerID); err != nil {
			return nil, err
		}
	}

	return subs, nil
}

// FindOne is Find for a single id; absence comes back as nil
func (s *Service) FindOne(id int64, opts FindOptions) (*Submission, error) {
	subs, err := s.Find([]int64{id}, opts)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, nil
	}
	return subs[0], nil
}

// refreshRanks implements incremental rank-on-read: every submission's rank
// is recomputed from its current age; cache and top indices are rewritten
// only when the drift exceeds the configured epsilon. The batch is then
// re-sorted by the fresh ranks, since in-batch recomputation can reorder
// entries.
func (s *Service) refreshRanks(subs []*Submission) error {
	now := s.now().Unix()

	for _, sub := range subs {
		fresh := s.computeRank(sub.Score, now-sub.CTime)
		drift := fresh - sub.Rank
		if drift < 0 {
			drift = -drift
		}

		if drift > s.cfg.RankUpdateEpsilon && !sub.Deleted {
			err := s.store.HSet(keyNews(sub.ID), map[string]string{
				"rank": strconv.FormatFloat(fresh, 'f', -1, 64),
			})
			if err != nil {
				return fmt.Errorf("persisting refreshed rank: %w", err)
			}
			if err := s.upsertTopIndices(sub.ID, sub.CategoryID, fresh); err != nil {
				return err
			}
			metricRankRefreshes.Inc()
		}

		sub.Rank = fresh
	}

	sort.Slice(subs, func(i, j int) bool {
		return subs[i].Rank > subs[j].Rank
	})
	return nil
}

// attachAuthors hydrates author identity for the whole batch with a single
// bulk lookup keyed by the distinct author ids
func (s *Service) attachAuthors(subs []*Submission) error {
	authorIDs := make([]int64, 0, len(subs))
	seen := make(map[int64]bool, len(subs))
	for _, sub := range subs {
		if !seen[sub.AuthorID] {
			seen[sub.AuthorID] = true
			authorIDs = append(authorIDs, sub.AuthorID)
		}
	}

	keys := make([]string, len(authorIDs))
	for i, id := range authorIDs {
		keys[i] = keyUser(id)
	}

	records, err := s.store.HGetAllMulti(keys)
	if err != nil {
		return fmt.Errorf("reading author records: %w", err)
	}

	type identity struct{ name, email string }
	authors := make(map[int64]identity, len(authorIDs))
	for i, fields := range records {
		if fields == nil {
			continue
		}
		authors[authorIDs[i]] = identity{name: fields["username"], email: fields["email"]}
	}

	for _, sub := range subs {
		if author, ok := authors[sub.AuthorID]; ok {
			sub.AuthorName = author.name
			sub.AuthorEmail = author.email
		}
	}
	return nil
}

// attachViewerVotes hydrates the viewer's vote state for the whole batch
// with one batched membership lookup per direction
func (s *Service) attachViewerVotes(subs []*Submission, viewerID int64) error {
	member := strconv.FormatInt(viewerID, 10)

	upSets := make([]string, len(subs))
	downSets := make([]string, len(subs))
	for i, sub := range subs {
		upSets[i] = keyVotes(DirectionUp, sub.ID)
		downSets[i] = keyVotes(DirectionDown, sub.ID)
	}

	_, votedUp, err := s.store.ZScoreMulti(upSets, member)
	if err != nil {
		return fmt.Errorf("reading viewer up-votes: %w", err)
	}
	_, votedDown, err := s.store.ZScoreMulti(downSets, member)
	if err != nil {
		return fmt.Errorf("reading viewer down-votes: %w", err)
	}

	for i, sub := range subs {
		switch {
		case votedUp[i]:
			sub.ViewerVote = VoteStateUp
		case votedDown[i]:
			sub.ViewerVote = VoteStateDown
		default:
			sub.ViewerVote = VoteStateNone
		}
	}
	return nil
}
