package news

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCreatePopulatesIndices(t *testing.T) {
	svc, _ := newTestService(t)

	author := newTestUser(t, svc, "author", 1000)
	category, err := svc.CreateCategory("golang")
	require.NoError(t, err)

	sub, err := svc.Create("categorized", "https://example.org/a", author.ID, category.ID)
	require.NoError(t, err)

	// global and category, top and chronological
	for _, listing := range []func() ([]int64, int64, error){
		func() ([]int64, int64, error) { return svc.TopListing(0, 0, 10) },
		func() ([]int64, int64, error) { return svc.LatestListing(0, 0, 10) },
		func() ([]int64, int64, error) { return svc.TopListing(category.ID, 0, 10) },
		func() ([]int64, int64, error) { return svc.LatestListing(category.ID, 0, 10) },
	} {
		ids, total, err := listing()
		require.NoError(t, err)
		require.EqualValues(t, 1, total)
		require.Equal(t, []int64{sub.ID}, ids)
	}

	// authorship index
	ids, _, err := svc.PostedListing(author.ID, 0, 10)
	require.NoError(t, err)
	require.Equal(t, []int64{sub.ID}, ids)

	// the url is claimed by the fresh submission
	owner, active, err := svc.FindIDByURL("https://example.org/a")
	require.NoError(t, err)
	require.True(t, active)
	require.Equal(t, sub.ID, owner)
}

func TestCreateTextualSkipsRepostGuard(t *testing.T) {
	svc, _ := newTestService(t)

	author := newTestUser(t, svc, "author", 1000)

	sub, err := svc.Create("a thought", "text://inline content", author.ID, 0)
	require.NoError(t, err)
	require.True(t, sub.IsTextual())
	require.Equal(t, "inline content", sub.Text())
	require.Empty(t, sub.Domain())

	_, active, err := svc.FindIDByURL("text://inline content")
	require.NoError(t, err)
	require.False(t, active)
}

func TestRepostGuardExpires(t *testing.T) {
	svc, clock := newTestService(t)

	author := newTestUser(t, svc, "author", 1000)

	_, err := svc.Create("link", "https://example.org/a", author.ID, 0)
	require.NoError(t, err)

	_, active, err := svc.FindIDByURL("https://example.org/a")
	require.NoError(t, err)
	require.True(t, active)

	// one second past the window the claim is gone
	clock.Advance(time.Duration(svc.cfg.PreventRepostWindow+1) * time.Second)

	_, active, err = svc.FindIDByURL("https://example.org/a")
	require.NoError(t, err)
	require.False(t, active)
}

func TestUpdateRetargetsRepostGuard(t *testing.T) {
	svc, _ := newTestService(t)

	author := newTestUser(t, svc, "author", 1000)

	sub, err := svc.Create("link", "https://example.org/old", author.ID, 0)
	require.NoError(t, err)

	ok, err := svc.Update(sub.ID, "new title", "https://example.org/new")
	require.NoError(t, err)
	require.True(t, ok)

	// the old claim is released, the new one placed
	_, active, err := svc.FindIDByURL("https://example.org/old")
	require.NoError(t, err)
	require.False(t, active)

	owner, active, err := svc.FindIDByURL("https://example.org/new")
	require.NoError(t, err)
	require.True(t, active)
	require.Equal(t, sub.ID, owner)

	got, err := svc.FindOne(sub.ID, FindOptions{})
	require.NoError(t, err)
	require.Equal(t, "new title", got.Title)
	require.Equal(t, "https://example.org/new", got.Target)
}

func TestUpdateToTextualReleasesClaim(t *testing.T) {
	svc, _ := newTestService(t)

	author := newTestUser(t, svc, "author", 1000)

	sub, err := svc.Create("link", "https://example.org/a", author.ID, 0)
	require.NoError(t, err)

	rankBefore := sub.Rank

	ok, err := svc.Update(sub.ID, "now textual", "text://content")
	require.NoError(t, err)
	require.True(t, ok)

	_, active, err := svc.FindIDByURL("https://example.org/a")
	require.NoError(t, err)
	require.False(t, active)

	// an edit never touches score, rank or indices
	got, err := svc.FindOne(sub.ID, FindOptions{})
	require.NoError(t, err)
	require.Equal(t, rankBefore, got.Rank)
}

func TestUpdateMissingSubmission(t *testing.T) {
	svc, _ := newTestService(t)

	ok, err := svc.Update(4242, "title", "text://x")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDestroyRemovesFromAllIndices(t *testing.T) {
	svc, _ := newTestService(t)

	author := newTestUser(t, svc, "author", 1000)
	category, err := svc.CreateCategory("golang")
	require.NoError(t, err)

	sub, err := svc.Create("categorized", "https://example.org/a", author.ID, category.ID)
	require.NoError(t, err)

	ok, err := svc.Destroy(sub.ID)
	require.NoError(t, err)
	require.True(t, ok)

	for _, listing := range []func() ([]int64, int64, error){
		func() ([]int64, int64, error) { return svc.TopListing(0, 0, 10) },
		func() ([]int64, int64, error) { return svc.LatestListing(0, 0, 10) },
		func() ([]int64, int64, error) { return svc.TopListing(category.ID, 0, 10) },
		func() ([]int64, int64, error) { return svc.LatestListing(category.ID, 0, 10) },
	} {
		_, total, err := listing()
		require.NoError(t, err)
		require.Zero(t, total)
	}

	// the record survives with the tombstone set
	got, err := svc.FindOne(sub.ID, FindOptions{})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.True(t, got.Deleted)

	// a second destroy is idempotent
	ok, err = svc.Destroy(sub.ID)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestDestroyMissingSubmission(t *testing.T) {
	svc, _ := newTestService(t)

	ok, err := svc.Destroy(4242)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFindSkipsAbsentIDs(t *testing.T) {
	svc, _ := newTestService(t)

	author := newTestUser(t, svc, "author", 1000)

	subA, err := svc.Create("first", "text://a", author.ID, 0)
	require.NoError(t, err)
	subB, err := svc.Create("second", "text://b", author.ID, 0)
	require.NoError(t, err)

	subs, err := svc.Find([]int64{subA.ID, 4242, subB.ID, 9999}, FindOptions{})
	require.NoError(t, err)
	require.Len(t, subs, 2)

	got := []int64{subs[0].ID, subs[1].ID}
	require.ElementsMatch(t, []int64{subA.ID, subB.ID}, got)
}

func TestFindAttachesAuthorIdentity(t *testing.T) {
	svc, _ := newTestService(t)

	author := newTestUser(t, svc, "alice", 1000)

	sub, err := svc.Create("post", "text://a", author.ID, 0)
	require.NoError(t, err)

	got, err := svc.FindOne(sub.ID, FindOptions{})
	require.NoError(t, err)
	require.Equal(t, "alice", got.AuthorName)
	require.Equal(t, "alice@example.org", got.AuthorEmail)
}

func TestFindAttachesViewerVoteState(t *testing.T) {
	svc, _ := newTestService(t)

	author := newTestUser(t, svc, "author", 1000)
	viewer := newTestUser(t, svc, "viewer", 1000)

	subUp, err := svc.Create("liked", "text://a", author.ID, 0)
	require.NoError(t, err)
	subDown, err := svc.Create("disliked", "text://b", author.ID, 0)
	require.NoError(t, err)
	subNone, err := svc.Create("unseen", "text://c", author.ID, 0)
	require.NoError(t, err)

	_, _, err = svc.Vote(subUp.ID, viewer.ID, DirectionUp)
	require.NoError(t, err)
	_, _, err = svc.Vote(subDown.ID, viewer.ID, DirectionDown)
	require.NoError(t, err)

	subs, err := svc.Find([]int64{subUp.ID, subDown.ID, subNone.ID}, FindOptions{ViewerID: viewer.ID})
	require.NoError(t, err)
	require.Len(t, subs, 3)

	states := map[int64]VoteState{}
	for _, sub := range subs {
		states[sub.ID] = sub.ViewerVote
	}
	require.Equal(t, VoteStateUp, states[subUp.ID])
	require.Equal(t, VoteStateDown, states[subDown.ID])
	require.Equal(t, VoteStateNone, states[subNone.ID])
}

func TestFindUpdateRankRefreshesAndResorts(t *testing.T) {
	svc, clock := newTestService(t)

	author := newTestUser(t, svc, "author", 1000)
	boosters := make([]*User, 3)
	for i, name := range []string{"b1", "b2", "b3"} {
		boosters[i] = newTestUser(t, svc, name, 1000)
	}

	// old but heavily voted
	old, err := svc.Create("old hit", "text://old", author.ID, 0)
	require.NoError(t, err)
	for _, b := range boosters {
		_, _, err = svc.Vote(old.ID, b.ID, DirectionUp)
		require.NoError(t, err)
	}

	clock.Advance(48 * time.Hour)

	// young with only the self-vote
	young, err := svc.Create("fresh", "text://fresh", author.ID, 0)
	require.NoError(t, err)

	clock.Advance(72 * time.Hour)

	// stored ranks are now stale for both; a hydration with UpdateRank
	// recomputes them and orders the batch by the fresh values
	subs, err := svc.Find([]int64{old.ID, young.ID}, FindOptions{UpdateRank: true})
	require.NoError(t, err)
	require.Len(t, subs, 2)
	require.True(t, subs[0].Rank >= subs[1].Rank, "batch must be sorted by fresh rank")

	// the refreshed ranks are persisted
	for _, sub := range subs {
		stored, err := svc.loadSubmission(sub.ID)
		require.NoError(t, err)
		require.InDelta(t, sub.Rank, stored.Rank, 1e-9)
	}

	// the top index follows the fresh ordering
	ids, _, err := svc.TopListing(0, 0, 2)
	require.NoError(t, err)
	require.Equal(t, subs[0].ID, ids[0])
}

func TestLatestListingNewestFirst(t *testing.T) {
	svc, clock := newTestService(t)

	author := newTestUser(t, svc, "author", 1000)

	first, err := svc.Create("first", "text://1", author.ID, 0)
	require.NoError(t, err)
	clock.Advance(time.Minute)
	second, err := svc.Create("second", "text://2", author.ID, 0)
	require.NoError(t, err)
	clock.Advance(time.Minute)
	third, err := svc.Create("third", "text://3", author.ID, 0)
	require.NoError(t, err)

	ids, total, err := svc.LatestListing(0, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Equal(t, []int64{third.ID, second.ID, first.ID}, ids)

	// paging keeps the order and the full cardinality
	ids, total, err = svc.LatestListing(0, 1, 1)
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Equal(t, []int64{second.ID}, ids)
}

func TestTopListingOrdersByRank(t *testing.T) {
	svc, _ := newTestService(t)

	author := newTestUser(t, svc, "author", 1000)
	voter := newTestUser(t, svc, "voter", 1000)

	modest, err := svc.Create("modest", "text://a", author.ID, 0)
	require.NoError(t, err)
	popular, err := svc.Create("popular", "text://b", author.ID, 0)
	require.NoError(t, err)

	_, _, err = svc.Vote(popular.ID, voter.ID, DirectionUp)
	require.NoError(t, err)

	ids, total, err := svc.TopListing(0, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Equal(t, []int64{popular.ID, modest.ID}, ids)
}
