package moderation

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/recyclezone/marketplace/internal/domain/shared"
)

// Report is a user's complaint about a listed product
type Report struct {
	shared.BaseEntity
	ProductID     uuid.UUID
	ProductName   string
	ReporterEmail string
	Reason        string
}

// NewReport files a report on behalf of reporterEmail
func NewReport(reporterEmail string, productID uuid.UUID, productName, reason string) (*Report, error) {
	reporterEmail = shared.CanonicalEmail(reporterEmail)
	if reporterEmail == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Reporter email cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Reported product is required")
	}
	reason = strings.TrimSpace(reason)
	if len(reason) > 1000 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Reason cannot exceed 1000 characters")
	}
	return &Report{
		BaseEntity:    shared.NewBaseEntity(),
		ProductID:     productID,
		ProductName:   strings.TrimSpace(productName),
		ReporterEmail: reporterEmail,
		Reason:        reason,
	}, nil
}

// ReportFilter holds equality filters; zero fields match everything
type ReportFilter struct {
	ProductID     *uuid.UUID
	ReporterEmail string
}

// ReportRepository defines the interface for report persistence
type ReportRepository interface {
	// FindAll lists reports matching filter, newest first
	FindAll(ctx context.Context, filter ReportFilter) ([]Report, error)
	Create(ctx context.Context, report *Report) error
	// Delete removes the report and returns the number of rows removed
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
