package events

import (
	"time"

	"github.com/spec-kit/moderation-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventProfileModerated  EventType = "profile_moderated"
	EventReportAdjudicated EventType = "report_adjudicated"
)

// Event represents a domain event emitted after a successful mutation.
type Event struct {
	ID         string            `json:"id"`
	Type       EventType         `json:"type"`
	EntityKind domain.EntityKind `json:"entity_kind"`
	EntityID   string            `json:"entity_id"`
	ActorID    *string           `json:"actor_id,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
	Payload    interface{}       `json:"payload"`
}

// ProfileModeratedPayload carries the fields applied by a status mutation.
type ProfileModeratedPayload struct {
	Status *domain.ProfileStatus `json:"status,omitempty"`
	Type   *string               `json:"type,omitempty"`
}

// ReportAdjudicatedPayload carries the adjudication decision.
type ReportAdjudicatedPayload struct {
	ProfileID string              `json:"profile_id,omitempty"`
	NewStatus domain.ReportStatus `json:"new_status"`
}
