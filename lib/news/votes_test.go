package news

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVoteLedgerUniqueness(t *testing.T) {
	svc, _ := newTestService(t)

	author := newTestUser(t, svc, "author", 1000)
	voter := newTestUser(t, svc, "voter", 1000)

	sub, err := svc.Create("post", "text://content", author.ID, 0)
	require.NoError(t, err)

	_, rejection, err := svc.Vote(sub.ID, voter.ID, DirectionUp)
	require.NoError(t, err)
	require.Equal(t, RejectionNone, rejection)

	// the opposite direction is also refused, never overwritten
	_, rejection, err = svc.Vote(sub.ID, voter.ID, DirectionDown)
	require.NoError(t, err)
	require.Equal(t, RejectionDuplicateVote, rejection)

	got, err := svc.FindOne(sub.ID, FindOptions{})
	require.NoError(t, err)
	require.EqualValues(t, 2, got.UpCount) // author + voter
	require.EqualValues(t, 0, got.DownCount)
}

func TestVoteKarmaThreshold(t *testing.T) {
	svc, _ := newTestService(t)

	author := newTestUser(t, svc, "author", 1000)
	pauper := newTestUser(t, svc, "pauper", 0)

	sub, err := svc.Create("post", "text://content", author.ID, 0)
	require.NoError(t, err)

	before, err := svc.FindOne(sub.ID, FindOptions{})
	require.NoError(t, err)

	_, rejection, err := svc.Vote(sub.ID, pauper.ID, DirectionUp)
	require.NoError(t, err)
	require.Equal(t, RejectionInsufficientKarma, rejection)

	// a refused vote leaves no trace: no ledger, counter, karma or index mutation
	after, err := svc.FindOne(sub.ID, FindOptions{ViewerID: pauper.ID})
	require.NoError(t, err)
	require.Equal(t, before.UpCount, after.UpCount)
	require.Equal(t, before.Score, after.Score)
	require.Equal(t, VoteStateNone, after.ViewerVote)

	karma, err := svc.userKarma(pauper.ID)
	require.NoError(t, err)
	require.Zero(t, karma)
}

func TestVoteDownRequiresMoreKarma(t *testing.T) {
	svc, _ := newTestService(t)

	author := newTestUser(t, svc, "author", 1000)
	// enough for an up-vote, not for a down-vote
	voter := newTestUser(t, svc, "voter", svc.cfg.DownvoteMinKarma-1)

	sub, err := svc.Create("post", "text://content", author.ID, 0)
	require.NoError(t, err)

	_, rejection, err := svc.Vote(sub.ID, voter.ID, DirectionDown)
	require.NoError(t, err)
	require.Equal(t, RejectionInsufficientKarma, rejection)

	_, rejection, err = svc.Vote(sub.ID, voter.ID, DirectionUp)
	require.NoError(t, err)
	require.Equal(t, RejectionNone, rejection)
}

func TestUpvoteKarmaTransfer(t *testing.T) {
	svc, _ := newTestService(t)

	author := newTestUser(t, svc, "author", 100)
	voter := newTestUser(t, svc, "voter", 100)

	sub, err := svc.Create("post", "text://content", author.ID, 0)
	require.NoError(t, err)

	_, rejection, err := svc.Vote(sub.ID, voter.ID, DirectionUp)
	require.NoError(t, err)
	require.Equal(t, RejectionNone, rejection)

	// the voter pays the full cost, the author receives the smaller
	// transfer, the difference is destroyed
	voterKarma, err := svc.userKarma(voter.ID)
	require.NoError(t, err)
	require.Equal(t, int64(100)-svc.cfg.UpvoteKarmaCost, voterKarma)

	authorKarma, err := svc.userKarma(author.ID)
	require.NoError(t, err)
	require.Equal(t, int64(100)+svc.cfg.UpvoteKarmaTransfer, authorKarma)
}

func TestDownvoteTransfersNothing(t *testing.T) {
	svc, _ := newTestService(t)

	author := newTestUser(t, svc, "author", 100)
	voter := newTestUser(t, svc, "voter", 100)

	sub, err := svc.Create("post", "text://content", author.ID, 0)
	require.NoError(t, err)

	_, rejection, err := svc.Vote(sub.ID, voter.ID, DirectionDown)
	require.NoError(t, err)
	require.Equal(t, RejectionNone, rejection)

	voterKarma, err := svc.userKarma(voter.ID)
	require.NoError(t, err)
	require.Equal(t, int64(100)-svc.cfg.DownvoteKarmaCost, voterKarma)

	authorKarma, err := svc.userKarma(author.ID)
	require.NoError(t, err)
	require.Equal(t, int64(100), authorKarma)
}

func TestSelfVoteNeverMovesKarma(t *testing.T) {
	svc, _ := newTestService(t)

	author := newTestUser(t, svc, "author", 100)

	// creation includes the sanctioned self-vote
	_, err := svc.Create("post", "text://content", author.ID, 0)
	require.NoError(t, err)

	karma, err := svc.userKarma(author.ID)
	require.NoError(t, err)
	require.Equal(t, int64(100), karma)
}

func TestSelfVoteBypassesThreshold(t *testing.T) {
	svc, _ := newTestService(t)

	// even a zero-karma author gets the free initial vote
	author := newTestUser(t, svc, "author", 0)

	sub, err := svc.Create("post", "text://content", author.ID, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, sub.UpCount)
}

func TestVoteUpdatesSavedIndex(t *testing.T) {
	svc, _ := newTestService(t)

	author := newTestUser(t, svc, "author", 1000)
	voter := newTestUser(t, svc, "voter", 1000)

	subA, err := svc.Create("first", "text://a", author.ID, 0)
	require.NoError(t, err)
	subB, err := svc.Create("second", "text://b", author.ID, 0)
	require.NoError(t, err)

	_, _, err = svc.Vote(subA.ID, voter.ID, DirectionUp)
	require.NoError(t, err)
	// a down-vote is not a save
	_, _, err = svc.Vote(subB.ID, voter.ID, DirectionDown)
	require.NoError(t, err)

	ids, total, err := svc.SavedListing(voter.ID, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, []int64{subA.ID}, ids)

	// the author's own self-votes never reach the saved index
	ids, _, err = svc.SavedListing(author.ID, 0, 10)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestVoteCountersMatchLedgers(t *testing.T) {
	svc, _ := newTestService(t)

	author := newTestUser(t, svc, "author", 1000)
	sub, err := svc.Create("post", "text://content", author.ID, 0)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		voter := newTestUser(t, svc, "up"+strconv.Itoa(i), 1000)
		_, rejection, err := svc.Vote(sub.ID, voter.ID, DirectionUp)
		require.NoError(t, err)
		require.Equal(t, RejectionNone, rejection)
	}
	for i := 0; i < 3; i++ {
		voter := newTestUser(t, svc, "down"+strconv.Itoa(i), 1000)
		_, rejection, err := svc.Vote(sub.ID, voter.ID, DirectionDown)
		require.NoError(t, err)
		require.Equal(t, RejectionNone, rejection)
	}

	got, err := svc.FindOne(sub.ID, FindOptions{})
	require.NoError(t, err)
	require.EqualValues(t, 6, got.UpCount) // author + 5 voters
	require.EqualValues(t, 3, got.DownCount)
	require.Equal(t, svc.computeScore(6, 3), got.Score)
}
