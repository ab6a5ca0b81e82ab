package news

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateUserAssignsInitialKarma(t *testing.T) {
	svc, _ := newTestService(t)

	user, err := svc.CreateUser("alice", "alice@example.org")
	require.NoError(t, err)
	require.Positive(t, user.ID)
	require.Equal(t, svc.cfg.UserInitialKarma, user.Karma)

	got, err := svc.FindUser(user.ID)
	require.NoError(t, err)
	require.Equal(t, user, got)
}

func TestCreateUserEmailUniqueness(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateUser("alice", "shared@example.org")
	require.NoError(t, err)

	_, err = svc.CreateUser("bob", "shared@example.org")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestFindUserByEmail(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateUser("alice", "alice@example.org")
	require.NoError(t, err)

	got, err := svc.FindUserByEmail("alice@example.org")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, created.ID, got.ID)

	got, err = svc.FindUserByEmail("nobody@example.org")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestFindMissingUser(t *testing.T) {
	svc, _ := newTestService(t)

	got, err := svc.FindUser(4242)
	require.NoError(t, err)
	require.Nil(t, got)

	// an unknown account votes with zero karma
	karma, err := svc.userKarma(4242)
	require.NoError(t, err)
	require.Zero(t, karma)
}

func TestCreateCategoryCodeUniqueness(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateCategory("golang")
	require.NoError(t, err)
	require.Positive(t, created.ID)

	_, err = svc.CreateCategory("golang")
	require.ErrorIs(t, err, ErrCategoryCodeTaken)

	got, err := svc.FindCategoryByCode("golang")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, created.ID, got.ID)

	got, err = svc.FindCategory(created.ID)
	require.NoError(t, err)
	require.Equal(t, "golang", got.Code)
}
