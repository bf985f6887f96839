package domain

import "time"

// EntityKind names the entities moderated by this service. It keys both the
// view-invalidation registry and the moderation audit trail.
type EntityKind string

const (
	EntityProfile EntityKind = "profile"
	EntityReport  EntityKind = "report"
)

// ModerationEntry is one audit row for a successful mutation. The entry is
// written in its own statement after the mutation commits; there is no
// transaction spanning both writes.
type ModerationEntry struct {
	ID         string
	EntityKind EntityKind
	EntityID   string
	ActorID    *string
	OldValue   map[string]any
	NewValue   map[string]any
	CreatedAt  time.Time
}
