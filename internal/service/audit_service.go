package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/moderation-service/internal/domain"
	"github.com/spec-kit/moderation-service/internal/events"
	"github.com/spec-kit/moderation-service/internal/repository"
)

// AuditService records one moderation_log entry per successful mutation.
// Entries are written in their own statement after the mutation commits;
// there is no transaction spanning both writes, and a failed audit write
// never fails the mutation.
type AuditService struct {
	log        repository.ModerationLogRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(log repository.ModerationLogRepository, dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{log: log, dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to mutation events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventProfileModerated, a.handleProfileModerated)
	a.dispatcher.Subscribe(events.EventReportAdjudicated, a.handleReportAdjudicated)
}

func (a *AuditService) handleProfileModerated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ProfileModeratedPayload)
	if !ok {
		return nil
	}

	newValue := map[string]any{}
	if payload.Status != nil {
		newValue["status"] = *payload.Status
	}
	if payload.Type != nil {
		newValue["type"] = *payload.Type
	}
	return a.record(ctx, event, domain.EntityProfile, newValue)
}

func (a *AuditService) handleReportAdjudicated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ReportAdjudicatedPayload)
	if !ok {
		return nil
	}
	return a.record(ctx, event, domain.EntityReport, map[string]any{
		"status": payload.NewStatus,
	})
}

func (a *AuditService) record(ctx context.Context, event events.Event, kind domain.EntityKind, newValue map[string]any) error {
	entry := &domain.ModerationEntry{
		EntityKind: kind,
		EntityID:   event.EntityID,
		ActorID:    event.ActorID,
		NewValue:   newValue,
	}
	if err := a.log.Create(ctx, entry); err != nil {
		a.logger.Warn("audit entry not recorded",
			zap.String("entity_kind", string(kind)),
			zap.String("entity_id", event.EntityID),
			zap.Error(err))
	}
	return nil
}
