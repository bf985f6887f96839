package domain

import (
	"fmt"
	"time"
)

// ReportStatus enumerates verification report outcomes.
type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusApproved ReportStatus = "approved"
	ReportStatusRejected ReportStatus = "rejected"
)

// ParseReportStatus validates a raw adjudication value at the boundary.
func ParseReportStatus(raw string) (ReportStatus, error) {
	switch ReportStatus(raw) {
	case ReportStatusPending, ReportStatusApproved, ReportStatusRejected:
		return ReportStatus(raw), nil
	}
	return "", fmt.Errorf("unknown report status %q", raw)
}

// VerificationReport records a pending or resolved identity/business check
// tied to a profile. Reports are retained indefinitely for audit; the
// adjudicated status may be overwritten by a later decision.
type VerificationReport struct {
	ID           string
	ProfileID    string
	DocumentType string
	Notes        string
	Status       ReportStatus
	ReviewedBy   *string
	ReviewedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
