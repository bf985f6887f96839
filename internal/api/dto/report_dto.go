package dto

// ReportAdjudicationRequest carries the new status for a verification report.
type ReportAdjudicationRequest struct {
	Status string `json:"status"`
}
