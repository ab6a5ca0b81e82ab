package news

import (
	"fmt"
	"strconv"
)

// --------------------------------------------------------------------------
// User Management
// --------------------------------------------------------------------------

// CreateUser registers a new account with the configured initial karma.
// The email must be unique; ErrEmailTaken is returned otherwise.
func (s *Service) CreateUser(name, email string) (*User, error) {
	if _, taken, err := s.store.GetS(keyEmailToID(email)); err != nil {
		return nil, fmt.Errorf("checking email uniqueness: %w", err)
	} else if taken {
		return nil, ErrEmailTaken
	}

	id, err := s.store.Incr(keyUsersCount)
	if err != nil {
		return nil, fmt.Errorf("allocating user id: %w", err)
	}

	user := &User{
		ID:    id,
		Name:  name,
		Email: email,
		Karma: s.cfg.UserInitialKarma,
		CTime: s.now().Unix(),
	}

	if err := s.store.HSet(keyUser(id), fieldsOfUser(user)); err != nil {
		return nil, fmt.Errorf("writing user record: %w", err)
	}
	if err := s.store.SetEx(keyEmailToID(email), strconv.FormatInt(id, 10), 0); err != nil {
		return nil, fmt.Errorf("writing email index: %w", err)
	}

	log.Infof("created user %d (%s)", id, name)
	return user, nil
}

// FindUser returns the user with the given id, or nil if absent
func (s *Service) FindUser(id int64) (*User, error) {
	fields, loaded, err := s.store.HGetAll(keyUser(id))
	if err != nil {
		return nil, fmt.Errorf("reading user record: %w", err)
	}
	if !loaded {
		return nil, nil
	}
	return userFromFields(fields)
}

// FindUserByEmail resolves an email to its user, or nil if unknown
func (s *Service) FindUserByEmail(email string) (*User, error) {
	raw, loaded, err := s.store.GetS(keyEmailToID(email))
	if err != nil {
		return nil, fmt.Errorf("reading email index: %w", err)
	}
	if !loaded {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("email index holds malformed user id %q: %w", raw, err)
	}
	return s.FindUser(id)
}

// --------------------------------------------------------------------------
// Karma Ledger
// --------------------------------------------------------------------------

// userKarma returns the karma balance of a user. A missing user counts as
// zero, which fails every threshold.
func (s *Service) userKarma(userID int64) (int64, error) {
	raw, loaded, err := s.store.HGet(keyUser(userID), "karma")
	if err != nil {
		return 0, fmt.Errorf("reading karma balance: %w", err)
	}
	if !loaded {
		return 0, nil
	}

	karma, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("user %d holds malformed karma %q: %w", userID, raw, err)
	}
	return karma, nil
}

// adjustKarma credits (positive delta) or debits (negative delta) a user's
// balance and returns the new value
func (s *Service) adjustKarma(userID, delta int64) (int64, error) {
	newBalance, err := s.store.HIncrBy(keyUser(userID), "karma", delta)
	if err != nil {
		return 0, fmt.Errorf("adjusting karma of user %d: %w", userID, err)
	}
	return newBalance, nil
}

// meetsVoteThreshold checks the direction-specific karma minimum.
// Authors bypass this check in the voting protocol, it is never consulted
// for self-votes.
func (s *Service) meetsVoteThreshold(userID int64, dir Direction) (bool, error) {
	karma, err := s.userKarma(userID)
	if err != nil {
		return false, err
	}

	switch dir {
	case DirectionUp:
		return karma >= s.cfg.UpvoteMinKarma, nil
	case DirectionDown:
		return karma >= s.cfg.DownvoteMinKarma, nil
	default:
		return false, nil
	}
}
