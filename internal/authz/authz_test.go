package authz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festy23/matchday/internal/apperr"
)

type club struct {
	id       string
	managers []string
}

var errClubNotFound = apperr.New(apperr.KindNotFound, "CLUB_NOT_FOUND", "club not found")

func clubPolicy(clubs map[string]*club, loads *int) Policy[*club] {
	return NewPolicy(
		func(_ context.Context, id string) (*club, error) {
			*loads++
			c, ok := clubs[id]
			if !ok {
				return nil, errClubNotFound
			}
			return c, nil
		},
		func(c *club) []string { return c.managers },
	)
}

func TestPolicy_Authorize(t *testing.T) {
	ctx := context.Background()
	clubs := map[string]*club{
		"c1": {id: "c1", managers: []string{"alice", "bob"}},
	}

	t.Run("owner is allowed", func(t *testing.T) {
		loads := 0
		got, err := clubPolicy(clubs, &loads).Authorize(ctx, "bob", "c1")

		require.NoError(t, err)
		assert.Equal(t, "c1", got.id)
		assert.Equal(t, 1, loads)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		loads := 0
		got, err := clubPolicy(clubs, &loads).Authorize(ctx, "mallory", "c1")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("missing aggregate is not found, not forbidden", func(t *testing.T) {
		loads := 0
		got, err := clubPolicy(clubs, &loads).Authorize(ctx, "mallory", "missing")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errClubNotFound)
		assert.False(t, errors.Is(err, apperr.ErrForbidden))
	})

	t.Run("anonymous actor is rejected before loading", func(t *testing.T) {
		loads := 0
		got, err := clubPolicy(clubs, &loads).Authorize(ctx, "", "c1")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
		assert.Zero(t, loads)
	})

	t.Run("loader failure is passed through", func(t *testing.T) {
		boom := errors.New("connection refused")
		p := NewPolicy(
			func(context.Context, string) (*club, error) { return nil, boom },
			func(c *club) []string { return c.managers },
		)

		_, err := p.Authorize(ctx, "alice", "c1")
		assert.ErrorIs(t, err, boom)
	})
}

func TestIsOwner(t *testing.T) {
	assert.True(t, IsOwner([]string{"a", "b"}, "b"))
	assert.False(t, IsOwner([]string{"a", "b"}, "c"))
	assert.False(t, IsOwner(nil, "a"))
	assert.False(t, IsOwner([]string{""}, ""))
}
