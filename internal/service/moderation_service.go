package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/moderation-service/internal/domain"
	"github.com/spec-kit/moderation-service/internal/events"
	"github.com/spec-kit/moderation-service/internal/observability"
	"github.com/spec-kit/moderation-service/internal/repository"
	apperrors "github.com/spec-kit/moderation-service/pkg/util"
)

// ViewInvalidator marks cached views of an entity stale. Implementations
// must be idempotent and must absorb their own failures: the write this
// call follows is already committed.
type ViewInvalidator interface {
	Invalidate(ctx context.Context, kind domain.EntityKind, entityID string)
}

// ModerationService applies validated state changes to profiles and
// verification reports. Writes are fail-visible: every failure surfaces as
// a structured error value, never as a panic past this boundary. Each
// successful mutation triggers exactly one synchronous view invalidation
// before the result is returned, so a redirect straight after a mutation
// never observes stale data.
type ModerationService struct {
	profiles    repository.ProfileRepository
	reports     repository.ReportRepository
	invalidator ViewInvalidator
	dispatcher  events.Dispatcher
	logger      *zap.Logger
	metrics     *observability.Metrics
}

// ModerationDependencies bundles collaborators for the service.
type ModerationDependencies struct {
	ProfileRepo repository.ProfileRepository
	ReportRepo  repository.ReportRepository
	Invalidator ViewInvalidator
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
	Metrics     *observability.Metrics
}

// NewModerationService constructs the service.
func NewModerationService(deps ModerationDependencies) *ModerationService {
	return &ModerationService{
		profiles:    deps.ProfileRepo,
		reports:     deps.ReportRepo,
		invalidator: deps.Invalidator,
		dispatcher:  deps.Dispatcher,
		logger:      deps.Logger,
		metrics:     deps.Metrics,
	}
}

// UpdateProfile applies a partial {status, type} update to a profile.
// Existence of the identifier is enforced by storage, not pre-validated;
// there is no version check, so concurrent updates are last-writer-wins.
func (s *ModerationService) UpdateProfile(ctx context.Context, actorID, profileID string, update domain.ProfileUpdate) error {
	if update.IsEmpty() {
		return apperrors.NewValidationError("no fields to update", nil)
	}

	if err := s.profiles.UpdateModeration(ctx, profileID, update); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("profile", map[string]any{"id": profileID})
		}
		s.logger.Error("profile moderation write failed",
			zap.String("profile_id", profileID),
			zap.Error(err))
		return apperrors.NewInternalError(err)
	}

	s.invalidator.Invalidate(ctx, domain.EntityProfile, profileID)
	s.metrics.RecordProfileMutation()

	s.publishEvent(ctx, events.Event{
		Type:       events.EventProfileModerated,
		EntityKind: domain.EntityProfile,
		EntityID:   profileID,
		ActorID:    &actorID,
		Payload: events.ProfileModeratedPayload{
			Status: update.Status,
			Type:   update.Type,
		},
	})
	return nil
}

// AdjudicateReport overwrites a verification report's status. There is no
// transition guard: a later decision may overwrite an earlier one.
func (s *ModerationService) AdjudicateReport(ctx context.Context, actorID, reportID string, status domain.ReportStatus) error {
	if err := s.reports.UpdateStatus(ctx, reportID, status, actorID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("verification report", map[string]any{"id": reportID})
		}
		s.logger.Error("report adjudication write failed",
			zap.String("report_id", reportID),
			zap.Error(err))
		return apperrors.NewInternalError(err)
	}

	s.invalidator.Invalidate(ctx, domain.EntityReport, reportID)
	s.metrics.RecordAdjudication()

	s.publishEvent(ctx, events.Event{
		Type:       events.EventReportAdjudicated,
		EntityKind: domain.EntityReport,
		EntityID:   reportID,
		ActorID:    &actorID,
		Payload: events.ReportAdjudicatedPayload{
			NewStatus: status,
		},
	})
	return nil
}

func (s *ModerationService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
