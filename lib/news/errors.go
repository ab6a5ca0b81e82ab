package news

import "errors"

// --------------------------------------------------------------------------
// Vote Direction
// --------------------------------------------------------------------------

// Direction of a vote
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Valid reports whether the direction is one of the two known values
func (d Direction) Valid() bool {
	return d == DirectionUp || d == DirectionDown
}

// --------------------------------------------------------------------------
// Business Rejections
// --------------------------------------------------------------------------

// Rejection is the business outcome of a refused vote. Rejections are
// expected results shown to the end user, they are never errors and never
// logged as such.
type Rejection int

const (
	RejectionNone              Rejection = iota // the vote was accepted
	RejectionDuplicateVote                      // the voter already voted on this submission
	RejectionInsufficientKarma                  // the voter's karma is below the direction's threshold
)

func (r Rejection) String() string {
	switch r {
	case RejectionNone:
		return "accepted"
	case RejectionDuplicateVote:
		return "user already voted on this submission"
	case RejectionInsufficientKarma:
		return "not enough karma to cast this vote"
	default:
		return "unknown rejection"
	}
}

// --------------------------------------------------------------------------
// Errors
// --------------------------------------------------------------------------

// ErrNotFound is returned by Vote when the referenced submission is absent.
// Lookup operations report absence as an empty result, Update and Destroy
// report it through their boolean return.
var ErrNotFound = errors.New("submission not found")

// ErrEmailTaken is returned by CreateUser when the email already maps to an
// account.
var ErrEmailTaken = errors.New("email already registered")

// ErrCategoryCodeTaken is returned by CreateCategory when the code already
// maps to a category.
var ErrCategoryCodeTaken = errors.New("category code already registered")
