package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/moderation-service/internal/domain"
)

// ProfileRepository defines persistence access for user profiles.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	Search(ctx context.Context, term string, limit int) ([]domain.SearchResult, error)
	UpdateModeration(ctx context.Context, id string, update domain.ProfileUpdate) error
}

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a Postgres-backed implementation bound to the
// privileged service pool.
func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &profileRepository{pool: pool}
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	const query = `
        SELECT id, full_name, email, phone, password_hash, role, status, type, created_at, updated_at
        FROM profiles WHERE id=$1`

	return r.scanProfile(r.pool.QueryRow(ctx, query, id))
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	const query = `
        SELECT id, full_name, email, phone, password_hash, role, status, type, created_at, updated_at
        FROM profiles WHERE email=$1`

	return r.scanProfile(r.pool.QueryRow(ctx, query, email))
}

func (r *profileRepository) Search(ctx context.Context, term string, limit int) ([]domain.SearchResult, error) {
	const query = `
        SELECT id, full_name, email, phone
        FROM profiles
        WHERE email ILIKE '%' || $1 || '%' OR full_name ILIKE '%' || $1 || '%'
        ORDER BY id
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, term, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.SearchResult{}
	for rows.Next() {
		var res domain.SearchResult
		if err := rows.Scan(&res.ID, &res.FullName, &res.Email, &res.Phone); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// UpdateModeration applies only the provided fields in a single-row UPDATE.
// Row-level atomicity of that statement is the only consistency guarantee;
// last writer wins.
func (r *profileRepository) UpdateModeration(ctx context.Context, id string, update domain.ProfileUpdate) error {
	const query = `
        UPDATE profiles
        SET status = COALESCE($1, status),
            type   = COALESCE($2, type),
            updated_at = NOW()
        WHERE id=$3`

	var status *string
	if update.Status != nil {
		s := string(*update.Status)
		status = &s
	}

	cmd, err := r.pool.Exec(ctx, query, status, update.Type, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *profileRepository) scanProfile(row pgx.Row) (*domain.Profile, error) {
	var profile domain.Profile
	if err := row.Scan(
		&profile.ID,
		&profile.FullName,
		&profile.Email,
		&profile.Phone,
		&profile.PasswordHash,
		&profile.Role,
		&profile.Status,
		&profile.Type,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}
