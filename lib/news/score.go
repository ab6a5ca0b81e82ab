package news

import "math"

// computeScore derives the time-independent score from the vote ledger
// cardinalities. The raw vote difference rewards net approval; the
// logarithmic booster gives diminishing extra credit to high-volume
// contested submissions (50 up / 50 down outranks 5 up / 5 down despite the
// equal difference) without letting volume dominate.
//
// The function is total: it never fails and is monotonic, non-decreasing in
// up and non-increasing in down.
func (s *Service) computeScore(up, down int64) float64 {
	score := float64(up - down)

	votes := up/2 + down/2
	if votes > s.cfg.ScoreLogStart {
		score += s.cfg.ScoreLogBooster * math.Log(float64(votes-s.cfg.ScoreLogStart))
	}

	return score
}

// computeRank decays the score with the submission's age in seconds. Past
// the top-age-limit the rank is overridden to exactly -age, sinking very old
// submissions below everything with a non-negative true rank and ordering
// them among themselves by increasing age, oldest lowest.
func (s *Service) computeRank(score float64, age int64) float64 {
	if age < 0 {
		age = 0
	}
	if age > s.cfg.TopAgeLimit {
		return float64(-age)
	}

	return (score * 1e6) / math.Pow(float64(age+s.cfg.AgePadding), s.cfg.RankAgingFactor)
}
