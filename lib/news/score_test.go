package news

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFormulaService() *Service {
	// the calculators only read the config
	return NewService(nil, DefaultConfig(), nil)
}

func TestScoreMonotonicity(t *testing.T) {
	svc := newFormulaService()

	// non-decreasing in up-votes, non-increasing in down-votes
	for up := int64(0); up < 60; up++ {
		for down := int64(0); down < 60; down++ {
			assert.GreaterOrEqual(t, svc.computeScore(up+1, down), svc.computeScore(up, down),
				"score must be non-decreasing in up at U=%d D=%d", up, down)
			assert.LessOrEqual(t, svc.computeScore(up, down+1), svc.computeScore(up, down),
				"score must be non-increasing in down at U=%d D=%d", up, down)
		}
	}
}

func TestScoreBoostsContestedVolume(t *testing.T) {
	svc := newFormulaService()

	// equal net difference, but volume wins past the booster threshold
	require.Greater(t, svc.computeScore(50, 50), svc.computeScore(5, 5))

	// below the threshold the booster contributes nothing
	require.Equal(t, float64(3), svc.computeScore(5, 2))
	require.Equal(t, float64(0), svc.computeScore(0, 0))
}

func TestRankDecaysOverTime(t *testing.T) {
	svc := newFormulaService()

	const score = 10.0

	// strictly decreasing while under the top-age-limit
	previous := svc.computeRank(score, 0)
	for age := int64(1000); age <= svc.cfg.TopAgeLimit; age += 1000 {
		current := svc.computeRank(score, age)
		require.Less(t, current, previous, "rank must strictly decrease at age %d", age)
		previous = current
	}
}

func TestRankPastTopAgeLimit(t *testing.T) {
	svc := newFormulaService()

	limit := svc.cfg.TopAgeLimit

	// past the limit the rank is exactly -age, oldest lowest
	require.Equal(t, float64(-(limit+1)), svc.computeRank(100, limit+1))
	require.Equal(t, float64(-(limit+5000)), svc.computeRank(100, limit+5000))

	// at the limit the formula still applies
	require.Greater(t, svc.computeRank(100, limit), 0.0)
}

func TestRankNegativeAgeClamped(t *testing.T) {
	svc := newFormulaService()

	// a clock skew producing negative age behaves like age zero
	require.Equal(t, svc.computeRank(10, 0), svc.computeRank(10, -5))
}
