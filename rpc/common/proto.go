package common

import (
	"encoding/json"
	"fmt"

	"github.com/edicola-dev/edicola/lib/news"
)

// --------------------------------------------------------------------------
// Wire Types
// --------------------------------------------------------------------------

// Submission is the wire representation of a hydrated submission
type Submission struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title,omitempty"`
	Target       string  `json:"target,omitempty"`
	AuthorID     int64   `json:"author_id,omitempty"`
	CTime        int64   `json:"ctime,omitempty"`
	Score        float64 `json:"score,omitempty"`
	Rank         float64 `json:"rank,omitempty"`
	UpCount      int64   `json:"up,omitempty"`
	DownCount    int64   `json:"down,omitempty"`
	CommentCount int64   `json:"comments,omitempty"`
	CategoryID   int64   `json:"category_id,omitempty"`
	Deleted      bool    `json:"deleted,omitempty"`
	AuthorName   string  `json:"author_name,omitempty"`
	AuthorEmail  string  `json:"author_email,omitempty"`
	ViewerVote   string  `json:"viewer_vote,omitempty"`
}

// User is the wire representation of an account
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Karma int64  `json:"karma,omitempty"`
	CTime int64  `json:"ctime,omitempty"`
}

// Category is the wire representation of a category
type Category struct {
	ID   int64  `json:"id"`
	Code string `json:"code,omitempty"`
}

// FromSubmission converts a domain submission to its wire form
func FromSubmission(sub *news.Submission) *Submission {
	return &Submission{
		ID:           sub.ID,
		Title:        sub.Title,
		Target:       sub.Target,
		AuthorID:     sub.AuthorID,
		CTime:        sub.CTime,
		Score:        sub.Score,
		Rank:         sub.Rank,
		UpCount:      sub.UpCount,
		DownCount:    sub.DownCount,
		CommentCount: sub.CommentCount,
		CategoryID:   sub.CategoryID,
		Deleted:      sub.Deleted,
		AuthorName:   sub.AuthorName,
		AuthorEmail:  sub.AuthorEmail,
		ViewerVote:   string(sub.ViewerVote),
	}
}

// ToSubmission converts a wire submission back to its domain form
func (s *Submission) ToSubmission() *news.Submission {
	return &news.Submission{
		ID:           s.ID,
		Title:        s.Title,
		Target:       s.Target,
		AuthorID:     s.AuthorID,
		CTime:        s.CTime,
		Score:        s.Score,
		Rank:         s.Rank,
		UpCount:      s.UpCount,
		DownCount:    s.DownCount,
		CommentCount: s.CommentCount,
		CategoryID:   s.CategoryID,
		Deleted:      s.Deleted,
		AuthorName:   s.AuthorName,
		AuthorEmail:  s.AuthorEmail,
		ViewerVote:   news.VoteState(s.ViewerVote),
	}
}

// FromUser converts a domain user to its wire form
func FromUser(u *news.User) *User {
	return &User{ID: u.ID, Name: u.Name, Email: u.Email, Karma: u.Karma, CTime: u.CTime}
}

// ToUser converts a wire user back to its domain form
func (u *User) ToUser() *news.User {
	return &news.User{ID: u.ID, Name: u.Name, Email: u.Email, Karma: u.Karma, CTime: u.CTime}
}

// FromCategory converts a domain category to its wire form
func FromCategory(c *news.Category) *Category {
	return &Category{ID: c.ID, Code: c.Code}
}

// ToCategory converts a wire category back to its domain form
func (c *Category) ToCategory() *news.Category {
	return &news.Category{ID: c.ID, Code: c.Code}
}

// --------------------------------------------------------------------------
// Message Structure
// --------------------------------------------------------------------------

// Message represents a single message used for both requests and responses.
// Which fields are used depends on the type of message.
type Message struct {
	// Type of message
	MsgType MessageType `json:"msg_type"`

	// Request fields
	ID         int64   `json:"id,omitempty"`          // Used for: SubUpdate, SubDestroy, SubVote, UserFind, CatFind
	IDs        []int64 `json:"ids,omitempty"`         // Used for: SubFind (request), Listing (response)
	Title      string  `json:"title,omitempty"`       // Used for: SubCreate, SubUpdate
	Target     string  `json:"target,omitempty"`      // Used for: SubCreate, SubUpdate
	UserID     int64   `json:"user_id,omitempty"`     // Used for: SubCreate (author), SubVote (voter), ListSaved, ListPosted
	CategoryID int64   `json:"category_id,omitempty"` // Used for: SubCreate, ListTop, ListLatest
	Direction  string  `json:"direction,omitempty"`   // Used for: SubVote
	Name       string  `json:"name,omitempty"`        // Used for: UserCreate
	Email      string  `json:"email,omitempty"`       // Used for: UserCreate, UserFindByEmail
	Code       string  `json:"code,omitempty"`        // Used for: CatCreate, CatFindByCode
	URL        string  `json:"url,omitempty"`         // Used for: SubResolveURL
	Start      int     `json:"start,omitempty"`       // Used for: Listing requests
	Count      int     `json:"count,omitempty"`       // Used for: Listing requests
	UpdateRank bool    `json:"update_rank,omitempty"` // Used for: SubFind
	ViewerID   int64   `json:"viewer_id,omitempty"`   // Used for: SubFind

	// Response fields
	Ok          bool          `json:"ok,omitempty"`          // Used for: SubUpdate, SubDestroy, SubResolveURL responses
	Rank        float64       `json:"rank,omitempty"`        // Used for: SubVote response
	Rejection   int           `json:"rejection,omitempty"`   // Used for: SubVote response
	Total       int64         `json:"total,omitempty"`       // Used for: Listing responses
	Submissions []*Submission `json:"submissions,omitempty"` // Used for: SubCreate, SubFind responses
	User        *User         `json:"user,omitempty"`        // Used for: User responses
	Category    *Category     `json:"category,omitempty"`    // Used for: Category responses
	Err         string        `json:"err,omitempty"`         // Empty if no error, otherwise contains the error message
}

// --------------------------------------------------------------------------
// Message Factory Functions
// --------------------------------------------------------------------------

// withErr attaches an error to a response message
func withErr(msg *Message, err error) *Message {
	if err != nil {
		msg.Err = err.Error()
	}
	return msg
}

// NewSubCreateRequest creates a new SubCreate request
func NewSubCreateRequest(title, target string, authorID, categoryID int64) *Message {
	return &Message{
		MsgType:    MsgTSubCreate,
		Title:      title,
		Target:     target,
		UserID:     authorID,
		CategoryID: categoryID,
	}
}

// NewSubCreateResponse creates a new SubCreate response
func NewSubCreateResponse(sub *Submission, err error) *Message {
	msg := &Message{MsgType: MsgTSubCreate}
	if sub != nil {
		msg.Submissions = []*Submission{sub}
	}
	return withErr(msg, err)
}

// NewSubUpdateRequest creates a new SubUpdate request
func NewSubUpdateRequest(id int64, title, target string) *Message {
	return &Message{
		MsgType: MsgTSubUpdate,
		ID:      id,
		Title:   title,
		Target:  target,
	}
}

// NewSubUpdateResponse creates a new SubUpdate response
func NewSubUpdateResponse(ok bool, err error) *Message {
	return withErr(&Message{MsgType: MsgTSubUpdate, Ok: ok}, err)
}

// NewSubDestroyRequest creates a new SubDestroy request
func NewSubDestroyRequest(id int64) *Message {
	return &Message{MsgType: MsgTSubDestroy, ID: id}
}

// NewSubDestroyResponse creates a new SubDestroy response
func NewSubDestroyResponse(ok bool, err error) *Message {
	return withErr(&Message{MsgType: MsgTSubDestroy, Ok: ok}, err)
}

// NewSubVoteRequest creates a new SubVote request
func NewSubVoteRequest(id, voterID int64, direction string) *Message {
	return &Message{
		MsgType:   MsgTSubVote,
		ID:        id,
		UserID:    voterID,
		Direction: direction,
	}
}

// NewSubVoteResponse creates a new SubVote response
func NewSubVoteResponse(rank float64, rejection int, err error) *Message {
	return withErr(&Message{MsgType: MsgTSubVote, Rank: rank, Rejection: rejection}, err)
}

// NewSubFindRequest creates a new SubFind request
func NewSubFindRequest(ids []int64, updateRank bool, viewerID int64) *Message {
	return &Message{
		MsgType:    MsgTSubFind,
		IDs:        ids,
		UpdateRank: updateRank,
		ViewerID:   viewerID,
	}
}

// NewSubFindResponse creates a new SubFind response
func NewSubFindResponse(subs []*Submission, err error) *Message {
	return withErr(&Message{MsgType: MsgTSubFind, Submissions: subs}, err)
}

// NewSubResolveURLRequest creates a new SubResolveURL request
func NewSubResolveURLRequest(url string) *Message {
	return &Message{MsgType: MsgTSubResolveURL, URL: url}
}

// NewSubResolveURLResponse creates a new SubResolveURL response
func NewSubResolveURLResponse(id int64, ok bool, err error) *Message {
	return withErr(&Message{MsgType: MsgTSubResolveURL, ID: id, Ok: ok}, err)
}

// NewListingRequest creates a new listing request of the given type. For
// ListTop and ListLatest the scope is a category id (0 = global), for
// ListSaved and ListPosted it is the user id.
func NewListingRequest(msgType MessageType, scopeID int64, start, count int) *Message {
	msg := &Message{MsgType: msgType, Start: start, Count: count}
	switch msgType {
	case MsgTListTop, MsgTListLatest:
		msg.CategoryID = scopeID
	case MsgTListSaved, MsgTListPosted:
		msg.UserID = scopeID
	}
	return msg
}

// NewListingResponse creates a new listing response
func NewListingResponse(msgType MessageType, ids []int64, total int64, err error) *Message {
	return withErr(&Message{MsgType: msgType, IDs: ids, Total: total}, err)
}

// NewUserCreateRequest creates a new UserCreate request
func NewUserCreateRequest(name, email string) *Message {
	return &Message{MsgType: MsgTUserCreate, Name: name, Email: email}
}

// NewUserFindRequest creates a new UserFind request
func NewUserFindRequest(id int64) *Message {
	return &Message{MsgType: MsgTUserFind, ID: id}
}

// NewUserFindByEmailRequest creates a new UserFindByEmail request
func NewUserFindByEmailRequest(email string) *Message {
	return &Message{MsgType: MsgTUserFindByEmail, Email: email}
}

// NewUserResponse creates a new response carrying a user
func NewUserResponse(msgType MessageType, user *User, err error) *Message {
	return withErr(&Message{MsgType: msgType, User: user}, err)
}

// NewCatCreateRequest creates a new CatCreate request
func NewCatCreateRequest(code string) *Message {
	return &Message{MsgType: MsgTCatCreate, Code: code}
}

// NewCatFindRequest creates a new CatFind request
func NewCatFindRequest(id int64) *Message {
	return &Message{MsgType: MsgTCatFind, ID: id}
}

// NewCatFindByCodeRequest creates a new CatFindByCode request
func NewCatFindByCodeRequest(code string) *Message {
	return &Message{MsgType: MsgTCatFindByCode, Code: code}
}

// NewCategoryResponse creates a new response carrying a category
func NewCategoryResponse(msgType MessageType, category *Category, err error) *Message {
	return withErr(&Message{MsgType: msgType, Category: category}, err)
}

// NewErrorResponse creates a new Error response
func NewErrorResponse(err string) *Message {
	return &Message{MsgType: MsgTError, Err: err}
}

// --------------------------------------------------------------------------
// Message Type Definition
// --------------------------------------------------------------------------

// MessageType defines the type of message used in RPC communication.
type MessageType uint8

// messageTypeNames maps every message type to its wire name
var messageTypeNames = map[MessageType]string{
	MsgTSuccess:         "success",
	MsgTError:           "error",
	MsgTSubCreate:       "sub.create",
	MsgTSubUpdate:       "sub.update",
	MsgTSubDestroy:      "sub.destroy",
	MsgTSubVote:         "sub.vote",
	MsgTSubFind:         "sub.find",
	MsgTSubResolveURL:   "sub.resolveURL",
	MsgTListTop:         "list.top",
	MsgTListLatest:      "list.latest",
	MsgTListSaved:       "list.saved",
	MsgTListPosted:      "list.posted",
	MsgTUserCreate:      "user.create",
	MsgTUserFind:        "user.find",
	MsgTUserFindByEmail: "user.findByEmail",
	MsgTCatCreate:       "category.create",
	MsgTCatFind:         "category.find",
	MsgTCatFindByCode:   "category.findByCode",
}

// String returns the string representation of a MessageType.
func (t MessageType) String() string {
	if name, ok := messageTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// MarshalJSON implements the json.Marshaller interface for MessageType.
// This allows MessageType to be serialized as a string in JSON.
func (t MessageType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for MessageType.
// This allows MessageType to be deserialized from a string in JSON.
func (t *MessageType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	for msgType, name := range messageTypeNames {
		if name == s {
			*t = msgType
			return nil
		}
	}
	return fmt.Errorf("unknown message type: %s", s)
}

// --------------------------------------------------------------------------
// Message Type Constants
// --------------------------------------------------------------------------

const (
	// General message types

	MsgTUnknown MessageType = iota
	MsgTSuccess             // Indicates a successful operation
	MsgTError               // Indicates an error occurred

	// Submission operations

	MsgTSubCreate     // Create a submission
	MsgTSubUpdate     // Edit a submission's title and target
	MsgTSubDestroy    // Soft-delete a submission
	MsgTSubVote       // Cast a vote on a submission
	MsgTSubFind       // Batch-fetch submissions by id
	MsgTSubResolveURL // Resolve a url to the submission holding its repost claim

	// Listing operations

	MsgTListTop    // Rank-ordered listing
	MsgTListLatest // Chronological listing
	MsgTListSaved  // Submissions a user up-voted
	MsgTListPosted // Submissions a user authored

	// User operations

	MsgTUserCreate      // Register an account
	MsgTUserFind        // Fetch an account by id
	MsgTUserFindByEmail // Fetch an account by email

	// Category operations

	MsgTCatCreate     // Register a category
	MsgTCatFind       // Fetch a category by id
	MsgTCatFindByCode // Fetch a category by code
)
