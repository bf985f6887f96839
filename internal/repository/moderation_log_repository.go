package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/moderation-service/internal/domain"
)

// ModerationLogRepository stores audit entries for moderation decisions.
type ModerationLogRepository interface {
	Create(ctx context.Context, entry *domain.ModerationEntry) error
	ListByEntity(ctx context.Context, kind domain.EntityKind, entityID string) ([]domain.ModerationEntry, error)
}

type moderationLogRepository struct {
	pool *pgxpool.Pool
}

// NewModerationLogRepository builds repository.
func NewModerationLogRepository(pool *pgxpool.Pool) ModerationLogRepository {
	return &moderationLogRepository{pool: pool}
}

func (r *moderationLogRepository) Create(ctx context.Context, entry *domain.ModerationEntry) error {
	const query = `
        INSERT INTO moderation_log (entity_kind, entity_id, actor_id, old_value, new_value)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		entry.EntityKind,
		entry.EntityID,
		entry.ActorID,
		entry.OldValue,
		entry.NewValue,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *moderationLogRepository) ListByEntity(ctx context.Context, kind domain.EntityKind, entityID string) ([]domain.ModerationEntry, error) {
	const query = `
        SELECT id, entity_kind, entity_id, actor_id, old_value, new_value, created_at
        FROM moderation_log WHERE entity_kind=$1 AND entity_id=$2 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, kind, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.ModerationEntry{}
	for rows.Next() {
		var entry domain.ModerationEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.EntityKind,
			&entry.EntityID,
			&entry.ActorID,
			&entry.OldValue,
			&entry.NewValue,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
