package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/spec-kit/moderation-service/internal/domain"
)

type failingStore struct {
	calls int
}

func (f *failingStore) Delete(context.Context, ...string) error {
	f.calls++
	return errors.New("store unavailable")
}

type InvalidatorSuite struct {
	suite.Suite
	store *MemoryViewStore
	inv   *Invalidator
}

func TestInvalidatorSuite(t *testing.T) {
	suite.Run(t, new(InvalidatorSuite))
}

func (s *InvalidatorSuite) SetupTest() {
	s.store = NewMemoryViewStore()
	s.inv = NewInvalidator(s.store, zap.NewNop(), nil)
}

func (s *InvalidatorSuite) seed(keys ...string) {
	for _, key := range keys {
		s.store.Put(context.Background(), key, []byte("snapshot"))
	}
}

func (s *InvalidatorSuite) TestFanOutToAllRegisteredViews() {
	s.inv.Register(domain.EntityProfile, "views:admin:profiles", "views:admin:dashboard")
	s.seed("views:admin:profiles", "views:admin:profiles:p1", "views:admin:dashboard", "views:other")

	s.inv.Invalidate(context.Background(), domain.EntityProfile, "p1")

	s.False(s.store.Has("views:admin:profiles"))
	s.False(s.store.Has("views:admin:profiles:p1"))
	s.False(s.store.Has("views:admin:dashboard"))
	s.True(s.store.Has("views:other"), "unregistered views stay cached")
}

func (s *InvalidatorSuite) TestSharedViewAcrossEntityKinds() {
	s.inv.Register(domain.EntityProfile, "views:admin:dashboard")
	s.inv.Register(domain.EntityReport, "views:admin:dashboard")
	s.seed("views:admin:dashboard")

	s.inv.Invalidate(context.Background(), domain.EntityReport, "r1")
	s.False(s.store.Has("views:admin:dashboard"))
}

func (s *InvalidatorSuite) TestIdempotentOnStaleViews() {
	s.inv.Register(domain.EntityProfile, "views:admin:profiles")
	s.seed("views:admin:profiles")

	s.inv.Invalidate(context.Background(), domain.EntityProfile, "p1")
	// Second signal for an already-stale view is a no-op, not a failure.
	s.inv.Invalidate(context.Background(), domain.EntityProfile, "p1")
	s.False(s.store.Has("views:admin:profiles"))
}

func (s *InvalidatorSuite) TestUnregisteredKindIsNoOp() {
	s.seed("views:admin:reports")
	s.inv.Invalidate(context.Background(), domain.EntityReport, "r1")
	s.True(s.store.Has("views:admin:reports"))
}

func (s *InvalidatorSuite) TestStoreFailureIsAbsorbed() {
	store := &failingStore{}
	inv := NewInvalidator(store, zap.NewNop(), nil)
	inv.Register(domain.EntityProfile, "views:admin:profiles")

	// Must not panic or surface the error: the write already committed.
	inv.Invalidate(context.Background(), domain.EntityProfile, "p1")
	s.Equal(1, store.calls)
}
