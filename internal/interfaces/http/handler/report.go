package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	moderationapp "github.com/recyclezone/marketplace/internal/application/moderation"
	"github.com/recyclezone/marketplace/internal/domain/moderation"
	"github.com/recyclezone/marketplace/internal/interfaces/http/middleware"
)

// ReportHandler handles product reports
type ReportHandler struct {
	BaseHandler
	reportService *moderationapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *moderationapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// CreateReportRequest is the body of POST /report-items
type CreateReportRequest struct {
	ProductID   string `json:"productId" binding:"required,uuid"`
	ProductName string `json:"productName" binding:"max=200"`
	Reason      string `json:"reason" binding:"max=1000"`
}

// ListReportsQuery filters GET /reports
type ListReportsQuery struct {
	ProductID     string `form:"productId" binding:"omitempty,uuid"`
	ReporterEmail string `form:"reporterEmail"`
}

// Create godoc
// @Summary      Report a product
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        request body CreateReportRequest true "Report"
// @Success      201 {object} dto.Response{data=shared.InsertResult}
// @Security     BearerAuth
// @Router       /report-items [post]
func (h *ReportHandler) Create(c *gin.Context) {
	var req CreateReportRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.reportService.Report(c.Request.Context(), middleware.GetCallerEmail(c), moderationapp.CreateReportInput{
		ProductID:   uuid.MustParse(req.ProductID),
		ProductName: req.ProductName,
		Reason:      req.Reason,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// List godoc
// @Summary      List reports
// @Tags         reports
// @Produce      json
// @Param        productId query string false "Product ID"
// @Param        reporterEmail query string false "Reporter email"
// @Success      200 {object} dto.Response{data=[]moderationapp.ReportResponse}
// @Router       /reports [get]
func (h *ReportHandler) List(c *gin.Context) {
	var query ListReportsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	filter := moderation.ReportFilter{ReporterEmail: query.ReporterEmail}
	if query.ProductID != "" {
		productID := uuid.MustParse(query.ProductID)
		filter.ProductID = &productID
	}

	reports, err := h.reportService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, reports)
}

// Delete godoc
// @Summary      Dismiss a report
// @Tags         reports
// @Produce      json
// @Param        id path string true "Report ID"
// @Success      200 {object} dto.Response{data=shared.DeleteResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reported-products/{id} [delete]
func (h *ReportHandler) Delete(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id", "report")
	if !ok {
		return
	}

	result, err := h.reportService.Delete(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
