package cache

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/moderation-service/internal/domain"
	"github.com/spec-kit/moderation-service/internal/observability"
)

// ViewStore is the backing cache holding rendered view snapshots.
type ViewStore interface {
	Delete(ctx context.Context, keys ...string) error
}

// Invalidator marks cached views stale after a successful mutation. Views
// are registered per entity kind at startup; invalidating an entity removes
// both the collection snapshot of each registered view and the per-entity
// snapshot. Deleting absent keys is a no-op, so invalidation is idempotent.
//
// Invalidation failures are logged and absorbed: by the time Invalidate runs
// the write is already committed, and a committed mutation must not be
// reported as failed.
type Invalidator struct {
	mu     sync.RWMutex
	views  map[domain.EntityKind][]string
	store  ViewStore
	logger *zap.Logger
	mx     *observability.Metrics
}

// NewInvalidator constructs an empty registry over the given store.
func NewInvalidator(store ViewStore, logger *zap.Logger, mx *observability.Metrics) *Invalidator {
	return &Invalidator{
		views:  make(map[domain.EntityKind][]string),
		store:  store,
		logger: logger,
		mx:     mx,
	}
}

// Register adds view keys whose snapshots depend on the given entity kind.
func (i *Invalidator) Register(kind domain.EntityKind, viewKeys ...string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.views[kind] = append(i.views[kind], viewKeys...)
}

// Invalidate removes every cached view registered for the entity kind,
// synchronously, within the mutation call that triggered it.
func (i *Invalidator) Invalidate(ctx context.Context, kind domain.EntityKind, entityID string) {
	i.mu.RLock()
	registered := i.views[kind]
	i.mu.RUnlock()

	if len(registered) == 0 {
		return
	}

	keys := make([]string, 0, len(registered)*2)
	for _, view := range registered {
		keys = append(keys, view, view+":"+entityID)
	}

	if err := i.store.Delete(ctx, keys...); err != nil {
		i.logger.Warn("view invalidation failed",
			zap.String("entity_kind", string(kind)),
			zap.String("entity_id", entityID),
			zap.Error(err))
		return
	}
	i.mx.RecordInvalidation(string(kind))
}
