// Package authz implements the ownership check that gates every mutation of a
// team, field or match: resolve the actor, load the aggregate, evaluate the
// aggregate's ownership predicate.
package authz

import (
	"context"
	"slices"

	"github.com/festy23/matchday/internal/apperr"
)

// Loader fetches an aggregate by id. It returns the aggregate module's
// not-found error when the id does not exist.
type Loader[T any] func(ctx context.Context, id string) (T, error)

// Owners extracts the identities allowed to mutate an aggregate.
type Owners[T any] func(aggregate T) []string

// Policy binds an aggregate type to its loader and owner accessor.
type Policy[T any] struct {
	Load   Loader[T]
	Owners Owners[T]
}

// NewPolicy creates a policy for one aggregate type.
func NewPolicy[T any](load Loader[T], owners Owners[T]) Policy[T] {
	return Policy[T]{Load: load, Owners: owners}
}

// Authorize loads the aggregate and returns it if actorID is one of its owners.
//
// An empty actorID fails with apperr.ErrUnauthenticated before anything is
// loaded. A missing aggregate fails with the loader's error, so not-found stays
// distinguishable from apperr.ErrForbidden.
func (p Policy[T]) Authorize(ctx context.Context, actorID, id string) (T, error) {
	var zero T
	if actorID == "" {
		return zero, apperr.ErrUnauthenticated
	}

	aggregate, err := p.Load(ctx, id)
	if err != nil {
		return zero, err
	}

	if !IsOwner(p.Owners(aggregate), actorID) {
		return zero, apperr.ErrForbidden
	}

	return aggregate, nil
}

// IsOwner reports whether actorID is in owners.
func IsOwner(owners []string, actorID string) bool {
	return actorID != "" && slices.Contains(owners, actorID)
}
