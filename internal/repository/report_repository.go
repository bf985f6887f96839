package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/moderation-service/internal/domain"
)

// ReportRepository defines persistence access for verification reports.
type ReportRepository interface {
	GetByID(ctx context.Context, id string) (*domain.VerificationReport, error)
	ListByProfile(ctx context.Context, profileID string) ([]domain.VerificationReport, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReportStatus, reviewerID string) error
}

type reportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository returns a Postgres-backed implementation.
func NewReportRepository(pool *pgxpool.Pool) ReportRepository {
	return &reportRepository{pool: pool}
}

func (r *reportRepository) GetByID(ctx context.Context, id string) (*domain.VerificationReport, error) {
	const query = `
        SELECT id, profile_id, document_type, notes, status, reviewed_by, reviewed_at, created_at, updated_at
        FROM verification_reports WHERE id=$1`

	var report domain.VerificationReport
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&report.ID,
		&report.ProfileID,
		&report.DocumentType,
		&report.Notes,
		&report.Status,
		&report.ReviewedBy,
		&report.ReviewedAt,
		&report.CreatedAt,
		&report.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) ListByProfile(ctx context.Context, profileID string) ([]domain.VerificationReport, error) {
	const query = `
        SELECT id, profile_id, document_type, notes, status, reviewed_by, reviewed_at, created_at, updated_at
        FROM verification_reports WHERE profile_id=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := []domain.VerificationReport{}
	for rows.Next() {
		var report domain.VerificationReport
		if err := rows.Scan(
			&report.ID,
			&report.ProfileID,
			&report.DocumentType,
			&report.Notes,
			&report.Status,
			&report.ReviewedBy,
			&report.ReviewedAt,
			&report.CreatedAt,
			&report.UpdatedAt,
		); err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

// UpdateStatus overwrites the report's status in a single-row UPDATE. There
// is no transition guard: a later decision may overwrite an earlier one.
func (r *reportRepository) UpdateStatus(ctx context.Context, id string, status domain.ReportStatus, reviewerID string) error {
	const query = `
        UPDATE verification_reports
        SET status=$1, reviewed_by=$2, reviewed_at=NOW(), updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, status, reviewerID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
