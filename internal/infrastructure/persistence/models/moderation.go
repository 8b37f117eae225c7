package models

import (
	"github.com/google/uuid"
	"github.com/recyclezone/marketplace/internal/domain/moderation"
)

// ReportModel is the persistence model for the Report entity
type ReportModel struct {
	BaseModel
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName   string    `gorm:"type:varchar(200)"`
	ReporterEmail string    `gorm:"type:varchar(200);not null;index"`
	Reason        string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ReportModel) TableName() string {
	return "reports"
}

// ToDomain converts the model to a domain Report
func (m *ReportModel) ToDomain() *moderation.Report {
	return &moderation.Report{
		BaseEntity:    m.BaseModel.ToDomain(),
		ProductID:     m.ProductID,
		ProductName:   m.ProductName,
		ReporterEmail: m.ReporterEmail,
		Reason:        m.Reason,
	}
}

// ReportModelFromDomain creates a model from a domain Report
func ReportModelFromDomain(r *moderation.Report) *ReportModel {
	m := &ReportModel{
		ProductID:     r.ProductID,
		ProductName:   r.ProductName,
		ReporterEmail: r.ReporterEmail,
		Reason:        r.Reason,
	}
	m.FromDomainBaseEntity(r.BaseEntity)
	return m
}
