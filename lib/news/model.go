package news

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// textScheme marks a submission whose target is inline text instead of an
// external url
const textScheme = "text://"

// --------------------------------------------------------------------------
// Submission
// --------------------------------------------------------------------------

// VoteState is a viewer's recorded vote on a submission
type VoteState string

const (
	VoteStateNone VoteState = ""
	VoteStateUp   VoteState = "up"
	VoteStateDown VoteState = "down"
)

// Submission is a user-posted item (link or inline text) subject to ranking.
// Score, Rank, UpCount and DownCount are cached projections of the vote
// ledgers; they are rewritten on every accepted vote and on rank refresh.
type Submission struct {
	ID           int64
	Title        string
	Target       string // external url, or inline text behind the text:// marker
	AuthorID     int64
	CTime        int64 // creation time, epoch seconds
	Score        float64
	Rank         float64
	UpCount      int64
	DownCount    int64
	CommentCount int64
	CategoryID   int64 // 0 = uncategorized
	Deleted      bool

	// attached during hydration, never stored
	AuthorName  string
	AuthorEmail string
	ViewerVote  VoteState
}

// IsTextual reports whether the submission carries inline text instead of
// an external url
func (n *Submission) IsTextual() bool {
	return strings.HasPrefix(n.Target, textScheme)
}

// Text returns the inline text of a textual submission, or "" for a link
func (n *Submission) Text() string {
	if !n.IsTextual() {
		return ""
	}
	return strings.TrimPrefix(n.Target, textScheme)
}

// Domain returns the host part of the submission's url, or "" for a
// textual submission
func (n *Submission) Domain() string {
	if n.IsTextual() {
		return ""
	}
	u, err := url.Parse(n.Target)
	if err != nil {
		return ""
	}
	return u.Host
}

// --------------------------------------------------------------------------
// Submission Field Codec
// --------------------------------------------------------------------------

// fieldsOf serializes a submission into its stored hash representation.
// Every stored field is listed here explicitly; hydration-only fields
// (author identity, viewer vote) are never written.
func fieldsOf(n *Submission) map[string]string {
	fields := map[string]string{
		"id":       strconv.FormatInt(n.ID, 10),
		"title":    n.Title,
		"url":      n.Target,
		"user_id":  strconv.FormatInt(n.AuthorID, 10),
		"ctime":    strconv.FormatInt(n.CTime, 10),
		"score":    strconv.FormatFloat(n.Score, 'f', -1, 64),
		"rank":     strconv.FormatFloat(n.Rank, 'f', -1, 64),
		"up":       strconv.FormatInt(n.UpCount, 10),
		"down":     strconv.FormatInt(n.DownCount, 10),
		"comments": strconv.FormatInt(n.CommentCount, 10),
	}
	if n.CategoryID != 0 {
		fields["category_id"] = strconv.FormatInt(n.CategoryID, 10)
	}
	if n.Deleted {
		fields["del"] = "1"
	}
	return fields
}

// submissionFromFields deserializes a stored hash into a Submission.
// Malformed numeric fields are a storage-corruption error, unknown fields
// are ignored, absent optional fields default explicitly.
func submissionFromFields(fields map[string]string) (*Submission, error) {
	n := &Submission{}
	var err error

	if n.ID, err = parseIntField(fields, "id"); err != nil {
		return nil, err
	}
	n.Title = fields["title"]
	n.Target = fields["url"]
	if n.AuthorID, err = parseIntField(fields, "user_id"); err != nil {
		return nil, err
	}
	if n.CTime, err = parseIntField(fields, "ctime"); err != nil {
		return nil, err
	}
	if n.Score, err = parseFloatField(fields, "score"); err != nil {
		return nil, err
	}
	if n.Rank, err = parseFloatField(fields, "rank"); err != nil {
		return nil, err
	}
	if n.UpCount, err = parseIntField(fields, "up"); err != nil {
		return nil, err
	}
	if n.DownCount, err = parseIntField(fields, "down"); err != nil {
		return nil, err
	}
	if n.CommentCount, err = parseIntField(fields, "comments"); err != nil {
		return nil, err
	}

	// optional fields
	if raw, ok := fields["category_id"]; ok {
		if n.CategoryID, err = parseInt(raw, "category_id"); err != nil {
			return nil, err
		}
	}
	n.Deleted = fields["del"] == "1"

	return n, nil
}

func parseIntField(fields map[string]string, name string) (int64, error) {
	raw, ok := fields[name]
	if !ok {
		return 0, fmt.Errorf("submission record misses field %q", name)
	}
	return parseInt(raw, name)
}

func parseInt(raw, name string) (int64, error) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("submission field %q holds malformed integer %q: %w", name, raw, err)
	}
	return value, nil
}

func parseFloatField(fields map[string]string, name string) (float64, error) {
	raw, ok := fields[name]
	if !ok {
		return 0, fmt.Errorf("submission record misses field %q", name)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("submission field %q holds malformed float %q: %w", name, raw, err)
	}
	return value, nil
}

// --------------------------------------------------------------------------
// User (karma aspect)
// --------------------------------------------------------------------------

// User carries the karma aspect of an account. Authentication fields live
// outside this engine.
type User struct {
	ID    int64
	Name  string
	Email string
	Karma int64
	CTime int64
}

func fieldsOfUser(u *User) map[string]string {
	return map[string]string{
		"id":       strconv.FormatInt(u.ID, 10),
		"username": u.Name,
		"email":    u.Email,
		"karma":    strconv.FormatInt(u.Karma, 10),
		"ctime":    strconv.FormatInt(u.CTime, 10),
	}
}

func userFromFields(fields map[string]string) (*User, error) {
	u := &User{Name: fields["username"], Email: fields["email"]}
	var err error

	if u.ID, err = strconv.ParseInt(fields["id"], 10, 64); err != nil {
		return nil, fmt.Errorf("user record holds malformed id %q: %w", fields["id"], err)
	}
	if u.Karma, err = strconv.ParseInt(fields["karma"], 10, 64); err != nil {
		return nil, fmt.Errorf("user record holds malformed karma %q: %w", fields["karma"], err)
	}
	if u.CTime, err = strconv.ParseInt(fields["ctime"], 10, 64); err != nil {
		return nil, fmt.Errorf("user record holds malformed ctime %q: %w", fields["ctime"], err)
	}

	return u, nil
}

// --------------------------------------------------------------------------
// Category
// --------------------------------------------------------------------------

// Category is a lookup key for the per-category listing indices, immutable
// once created
type Category struct {
	ID   int64
	Code string
}

func fieldsOfCategory(c *Category) map[string]string {
	return map[string]string{
		"id":   strconv.FormatInt(c.ID, 10),
		"code": c.Code,
	}
}

func categoryFromFields(fields map[string]string) (*Category, error) {
	c := &Category{Code: fields["code"]}

	id, err := strconv.ParseInt(fields["id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("category record holds malformed id %q: %w", fields["id"], err)
	}
	c.ID = id

	return c, nil
}
