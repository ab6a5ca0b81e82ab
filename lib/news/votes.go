package news

import (
	"fmt"
	"strconv"
)

// Vote casts a vote by voterID on the given submission.
//
// The protocol, in order: duplicate check against both ledgers, karma
// threshold check (bypassed when the voter is the author), ledger insertion
// with first-add detection driving the cached counter, saved-index
// bookkeeping, score/rank refresh with index upserts, karma transfer.
//
// On success the freshly computed rank is returned. Business refusals come
// back as a Rejection with no side effects; ErrNotFound is returned for an
// absent submission.
//
// Concurrency: the duplicate check and the ledger insertion are not one
// atomic unit. Two concurrent first-time votes by the same voter may both
// pass the check, but ZAdd reports a genuine first-time add exactly once
// and only that caller increments the cached counter. The accepted outcome
// is a possible double timestamp write with a correct final count.
func (s *Service) Vote(submissionID, voterID int64, dir Direction) (float64, Rejection, error) {
	if !dir.Valid() {
		return 0, RejectionNone, fmt.Errorf("unknown vote direction %q", dir)
	}

	sub, err := s.loadSubmission(submissionID)
	if err != nil {
		return 0, RejectionNone, err
	}
	if sub == nil {
		return 0, RejectionNone, ErrNotFound
	}

	member := strconv.FormatInt(voterID, 10)

	// a voter holds at most one vote per submission, in exactly one
	// direction; the check is re-evaluated here at write time, never
	// cached from an earlier read
	_, votedUp, err := s.store.ZScore(keyVotes(DirectionUp, submissionID), member)
	if err != nil {
		return 0, RejectionNone, fmt.Errorf("checking up-vote ledger: %w", err)
	}
	_, votedDown, err := s.store.ZScore(keyVotes(DirectionDown, submissionID), member)
	if err != nil {
		return 0, RejectionNone, fmt.Errorf("checking down-vote ledger: %w", err)
	}
	if votedUp || votedDown {
		metricVotesRejected.Inc()
		return 0, RejectionDuplicateVote, nil
	}

	// the author's sanctioned self-vote bypasses the karma threshold
	if voterID != sub.AuthorID {
		ok, err := s.meetsVoteThreshold(voterID, dir)
		if err != nil {
			return 0, RejectionNone, err
		}
		if !ok {
			metricVotesRejected.Inc()
			return 0, RejectionInsufficientKarma, nil
		}
	}

	// ledger write; only a genuine first-time add moves the cached counter
	added, err := s.store.ZAdd(keyVotes(dir, submissionID), member, float64(s.now().Unix()))
	if err != nil {
		return 0, RejectionNone, fmt.Errorf("writing vote ledger: %w", err)
	}
	if added {
		if _, err := s.store.HIncrBy(keyNews(submissionID), string(dir), 1); err != nil {
			return 0, RejectionNone, fmt.Errorf("updating cached vote counter: %w", err)
		}
	}

	if dir == DirectionUp && voterID != sub.AuthorID {
		if _, err := s.store.ZAdd(keySaved(voterID), member2str(submissionID), float64(sub.CTime)); err != nil {
			return 0, RejectionNone, fmt.Errorf("updating saved index: %w", err)
		}
	}

	rank, err := s.updateScoreAndRank(sub)
	if err != nil {
		return 0, RejectionNone, err
	}

	// karma transfer; self-votes never move karma
	if voterID != sub.AuthorID {
		switch dir {
		case DirectionUp:
			if _, err := s.adjustKarma(voterID, -s.cfg.UpvoteKarmaCost); err != nil {
				return 0, RejectionNone, err
			}
			if _, err := s.adjustKarma(sub.AuthorID, s.cfg.UpvoteKarmaTransfer); err != nil {
				return 0, RejectionNone, err
			}
		case DirectionDown:
			if _, err := s.adjustKarma(voterID, -s.cfg.DownvoteKarmaCost); err != nil {
				return 0, RejectionNone, err
			}
		}
	}

	metricVotesAccepted.Inc()
	return rank, RejectionNone, nil
}

// updateScoreAndRank recomputes the submission's score from the vote ledger
// cardinalities (not the cached counters, to avoid drift), derives the rank
// from the current age, persists both and upserts the top indices. The
// chronological indices are never touched here, chronological order is
// immutable.
func (s *Service) updateScoreAndRank(sub *Submission) (float64, error) {
	up, err := s.store.ZCard(keyVotes(DirectionUp, sub.ID))
	if err != nil {
		return 0, fmt.Errorf("counting up-votes: %w", err)
	}
	down, err := s.store.ZCard(keyVotes(DirectionDown, sub.ID))
	if err != nil {
		return 0, fmt.Errorf("counting down-votes: %w", err)
	}

	score := s.computeScore(up, down)
	rank := s.computeRank(score, s.now().Unix()-sub.CTime)

	err = s.store.HSet(keyNews(sub.ID), map[string]string{
		"score": strconv.FormatFloat(score, 'f', -1, 64),
		"rank":  strconv.FormatFloat(rank, 'f', -1, 64),
	})
	if err != nil {
		return 0, fmt.Errorf("persisting score and rank: %w", err)
	}

	if err := s.upsertTopIndices(sub.ID, sub.CategoryID, rank); err != nil {
		return 0, err
	}

	sub.Score = score
	sub.Rank = rank
	return rank, nil
}

// upsertTopIndices writes the rank into the global top index and, for a
// categorized submission, the category top index. Upserts are idempotent,
// concurrent writers cannot diverge permanently.
func (s *Service) upsertTopIndices(submissionID, categoryID int64, rank float64) error {
	member := member2str(submissionID)

	if _, err := s.store.ZAdd(keyTopIndex, member, rank); err != nil {
		return fmt.Errorf("updating top index: %w", err)
	}
	if categoryID != 0 {
		if _, err := s.store.ZAdd(keyTopByCategory(categoryID), member, rank); err != nil {
			return fmt.Errorf("updating category top index: %w", err)
		}
	}
	return nil
}

// member2str renders a submission id as an ordered-set member
func member2str(id int64) string {
	return strconv.FormatInt(id, 10)
}
