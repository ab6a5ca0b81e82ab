package news

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubmissionFieldRoundTrip(t *testing.T) {
	original := &Submission{
		ID:           42,
		Title:        "a title",
		Target:       "https://example.org/article",
		AuthorID:     7,
		CTime:        1748779200,
		Score:        12.5,
		Rank:         3456.789,
		UpCount:      13,
		DownCount:    1,
		CommentCount: 4,
		CategoryID:   3,
		Deleted:      true,
	}

	decoded, err := submissionFromFields(fieldsOf(original))
	require.NoError(t, err)
	require.Equal(t, original, decoded)
}

func TestSubmissionOptionalFields(t *testing.T) {
	// uncategorized and live submissions omit their markers entirely
	fields := fieldsOf(&Submission{ID: 1, AuthorID: 2, CTime: 3})
	require.NotContains(t, fields, "category_id")
	require.NotContains(t, fields, "del")

	decoded, err := submissionFromFields(fields)
	require.NoError(t, err)
	require.Zero(t, decoded.CategoryID)
	require.False(t, decoded.Deleted)
}

func TestSubmissionHydrationFieldsNeverStored(t *testing.T) {
	fields := fieldsOf(&Submission{
		ID:          1,
		AuthorID:    2,
		AuthorName:  "alice",
		AuthorEmail: "alice@example.org",
		ViewerVote:  VoteStateUp,
	})
	require.NotContains(t, fields, "username")
	require.NotContains(t, fields, "email")
	require.Len(t, fields, 10)
}

func TestSubmissionUnknownFieldsIgnored(t *testing.T) {
	fields := fieldsOf(&Submission{ID: 9, AuthorID: 1, CTime: 100})
	fields["introduced_later"] = "whatever"

	decoded, err := submissionFromFields(fields)
	require.NoError(t, err)
	require.EqualValues(t, 9, decoded.ID)
}

func TestSubmissionMalformedFields(t *testing.T) {
	base := func() map[string]string {
		return fieldsOf(&Submission{ID: 9, AuthorID: 1, CTime: 100})
	}

	t.Run("missing required", func(t *testing.T) {
		fields := base()
		delete(fields, "ctime")
		_, err := submissionFromFields(fields)
		require.ErrorContains(t, err, "ctime")
	})

	t.Run("malformed integer", func(t *testing.T) {
		fields := base()
		fields["up"] = "many"
		_, err := submissionFromFields(fields)
		require.ErrorContains(t, err, "up")
	})

	t.Run("malformed float", func(t *testing.T) {
		fields := base()
		fields["rank"] = "high"
		_, err := submissionFromFields(fields)
		require.ErrorContains(t, err, "rank")
	})

	t.Run("malformed optional", func(t *testing.T) {
		fields := base()
		fields["category_id"] = "tech"
		_, err := submissionFromFields(fields)
		require.ErrorContains(t, err, "category_id")
	})
}

func TestUserFieldRoundTrip(t *testing.T) {
	original := &User{ID: 7, Name: "alice", Email: "alice@example.org", Karma: 25, CTime: 1748779200}

	decoded, err := userFromFields(fieldsOfUser(original))
	require.NoError(t, err)
	require.Equal(t, original, decoded)
}

func TestCategoryFieldRoundTrip(t *testing.T) {
	original := &Category{ID: 3, Code: "golang"}

	decoded, err := categoryFromFields(fieldsOfCategory(original))
	require.NoError(t, err)
	require.Equal(t, original, decoded)
}

func TestTargetClassification(t *testing.T) {
	link := &Submission{Target: "https://blog.example.org/post"}
	require.False(t, link.IsTextual())
	require.Empty(t, link.Text())
	require.Equal(t, "blog.example.org", link.Domain())

	textual := &Submission{Target: "text://just a thought"}
	require.True(t, textual.IsTextual())
	require.Equal(t, "just a thought", textual.Text())
	require.Empty(t, textual.Domain())
}
