package moderation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/recyclezone/marketplace/internal/domain/moderation"
	"github.com/recyclezone/marketplace/internal/domain/shared"
	"go.uber.org/zap"
)

// ReportService handles report intake and removal
type ReportService struct {
	reportRepo moderation.ReportRepository
	logger     *zap.Logger
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo moderation.ReportRepository, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{reportRepo: reportRepo, logger: logger}
}

// Report files a report on behalf of reporterEmail
func (s *ReportService) Report(ctx context.Context, reporterEmail string, input CreateReportInput) (shared.InsertResult, error) {
	report, err := moderation.NewReport(reporterEmail, input.ProductID, input.ProductName, input.Reason)
	if err != nil {
		return shared.InsertResult{}, err
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return shared.InsertResult{}, fmt.Errorf("failed to create report: %w", err)
	}

	s.logger.Info("Product reported",
		zap.String("report_id", report.ID.String()),
		zap.String("product_id", report.ProductID.String()),
		zap.String("reporter_email", report.ReporterEmail))
	return shared.NewInsertResult(report.ID), nil
}

// List returns reports matching filter, newest first
func (s *ReportService) List(ctx context.Context, filter moderation.ReportFilter) ([]ReportResponse, error) {
	filter.ReporterEmail = shared.CanonicalEmail(filter.ReporterEmail)
	reports, err := s.reportRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	responses := make([]ReportResponse, len(reports))
	for i := range reports {
		responses[i] = ToReportResponse(&reports[i])
	}
	return responses, nil
}

// Delete removes a report
func (s *ReportService) Delete(ctx context.Context, id uuid.UUID) (shared.DeleteResult, error) {
	deleted, err := s.reportRepo.Delete(ctx, id)
	if err != nil {
		return shared.DeleteResult{}, fmt.Errorf("failed to delete report: %w", err)
	}
	if deleted == 0 {
		return shared.DeleteResult{}, shared.NewDomainError("NOT_FOUND", "Report not found")
	}

	s.logger.Info("Report deleted", zap.String("report_id", id.String()))
	return shared.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}
