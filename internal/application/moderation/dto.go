package moderation

import (
	"time"

	"github.com/google/uuid"
	"github.com/recyclezone/marketplace/internal/domain/moderation"
)

// CreateReportInput carries a new report. The reporter comes from the caller's identity.
type CreateReportInput struct {
	ProductID   uuid.UUID
	ProductName string
	Reason      string
}

// ReportResponse represents a report in API responses
type ReportResponse struct {
	ID            uuid.UUID `json:"_id"`
	ProductID     uuid.UUID `json:"productId"`
	ProductName   string    `json:"productName"`
	ReporterEmail string    `json:"reporterEmail"`
	Reason        string    `json:"reason,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToReportResponse converts a domain Report to ReportResponse
func ToReportResponse(r *moderation.Report) ReportResponse {
	return ReportResponse{
		ID:            r.ID,
		ProductID:     r.ProductID,
		ProductName:   r.ProductName,
		ReporterEmail: r.ReporterEmail,
		Reason:        r.Reason,
		CreatedAt:     r.CreatedAt,
	}
}
