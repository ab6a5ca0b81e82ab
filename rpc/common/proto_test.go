package common

import (
	"testing"

	"github.com/edicola-dev/edicola/lib/news"
)

func TestListingRequestScopeMapping(t *testing.T) {
	// category-scoped listings carry the scope as category id
	for _, msgType := range []MessageType{MsgTListTop, MsgTListLatest} {
		req := NewListingRequest(msgType, 3, 10, 20)
		if req.CategoryID != 3 || req.UserID != 0 {
			t.Errorf("%s: expected category scope, got category=%d user=%d", msgType, req.CategoryID, req.UserID)
		}
		if req.Start != 10 || req.Count != 20 {
			t.Errorf("%s: window not carried", msgType)
		}
	}

	// user-scoped listings carry the scope as user id
	for _, msgType := range []MessageType{MsgTListSaved, MsgTListPosted} {
		req := NewListingRequest(msgType, 7, 0, 30)
		if req.UserID != 7 || req.CategoryID != 0 {
			t.Errorf("%s: expected user scope, got category=%d user=%d", msgType, req.CategoryID, req.UserID)
		}
	}
}

func TestSubmissionWireConversion(t *testing.T) {
	original := &news.Submission{
		ID:          42,
		Title:       "a title",
		Target:      "https://example.org/article",
		AuthorID:    7,
		CTime:       1748779200,
		Score:       12.5,
		Rank:        3456.789,
		UpCount:     13,
		DownCount:   1,
		CategoryID:  3,
		Deleted:     true,
		AuthorName:  "alice",
		AuthorEmail: "alice@example.org",
		ViewerVote:  news.VoteStateUp,
	}

	got := FromSubmission(original).ToSubmission()
	if *got != *original {
		t.Errorf("Submission doesn't survive wire conversion:\nOriginal: %+v\nResult: %+v", original, got)
	}
}

func TestMessageTypeNamesUnique(t *testing.T) {
	seen := map[string]MessageType{}
	for msgType, name := range messageTypeNames {
		if other, ok := seen[name]; ok {
			t.Errorf("wire name %q used by both %d and %d", name, other, msgType)
		}
		seen[name] = msgType
	}
}
