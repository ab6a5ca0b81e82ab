package news

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/edicola-dev/edicola/lib/db"
	"github.com/edicola-dev/edicola/lib/db/engines/alder"
	"github.com/edicola-dev/edicola/lib/store/lstore"
)

// testClock is a settable time source shared by the engine and the service.
// The engine's expiry collector reads it from its own goroutine, so the
// offset is kept atomic.
type testClock struct {
	base   time.Time
	offset atomic.Int64
}

func newTestClock() *testClock {
	return &testClock{base: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	return c.base.Add(time.Duration(c.offset.Load()))
}

func (c *testClock) Advance(d time.Duration) {
	c.offset.Add(int64(d))
}

func newTestService(t *testing.T) (*Service, *testClock) {
	t.Helper()

	clock := newTestClock()
	st := lstore.NewLocalStore(func() db.OrderedKVDB {
		return alder.NewAlderDB(&alder.DBOptions{Clock: clock.Now})
	})
	t.Cleanup(func() { _ = st.Close() })

	return NewService(st, DefaultConfig(), clock.Now), clock
}

// newTestUser registers a user and forces its karma to the given balance
func newTestUser(t *testing.T, svc *Service, name string, karma int64) *User {
	t.Helper()

	user, err := svc.CreateUser(name, name+"@example.org")
	require.NoError(t, err)

	_, err = svc.adjustKarma(user.ID, karma-user.Karma)
	require.NoError(t, err)
	user.Karma = karma

	return user
}

// TestEndToEndScenario walks the full lifecycle: textual creation with the
// implicit self-vote, a down-vote with its karma debit and rank drop, the
// duplicate-vote rejection and the soft delete.
func TestEndToEndScenario(t *testing.T) {
	svc, _ := newTestService(t)

	author := newTestUser(t, svc, "author", 1000)
	voter := newTestUser(t, svc, "voter", 1000)

	sub, err := svc.Create("a thought", "text://hello world", author.ID, 0)
	require.NoError(t, err)

	// the author holds an implicit self up-vote
	require.EqualValues(t, 1, sub.UpCount)
	require.Greater(t, sub.Rank, 0.0)

	// one-item top listing with the new submission at position 0
	ids, total, err := svc.TopListing(0, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, []int64{sub.ID}, ids)

	rankBefore := sub.Rank

	// a non-author down-vote drops the score and debits the voter
	_, rejection, err := svc.Vote(sub.ID, voter.ID, DirectionDown)
	require.NoError(t, err)
	require.Equal(t, RejectionNone, rejection)

	got, err := svc.FindOne(sub.ID, FindOptions{})
	require.NoError(t, err)
	require.EqualValues(t, 1, got.DownCount)
	require.Less(t, got.Rank, rankBefore)

	voterKarma, err := svc.userKarma(voter.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1000)-svc.cfg.DownvoteKarmaCost, voterKarma)

	// the second attempt in any direction is a duplicate
	_, rejection, err = svc.Vote(sub.ID, voter.ID, DirectionDown)
	require.NoError(t, err)
	require.Equal(t, RejectionDuplicateVote, rejection)

	got, err = svc.FindOne(sub.ID, FindOptions{})
	require.NoError(t, err)
	require.EqualValues(t, 1, got.DownCount)

	// destroy empties the listing but keeps the record findable
	ok, err := svc.Destroy(sub.ID)
	require.NoError(t, err)
	require.True(t, ok)

	_, total, err = svc.TopListing(0, 0, 10)
	require.NoError(t, err)
	require.Zero(t, total)

	got, err = svc.FindOne(sub.ID, FindOptions{})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.True(t, got.Deleted)
}

func TestVoteOnMissingSubmission(t *testing.T) {
	svc, _ := newTestService(t)

	voter := newTestUser(t, svc, "voter", 1000)

	_, _, err := svc.Vote(4242, voter.ID, DirectionUp)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestVoteRejectsUnknownDirection(t *testing.T) {
	svc, _ := newTestService(t)

	author := newTestUser(t, svc, "author", 1000)
	sub, err := svc.Create("a thought", "text://x", author.ID, 0)
	require.NoError(t, err)

	_, _, err = svc.Vote(sub.ID, author.ID, Direction("sideways"))
	require.Error(t, err)
}
