package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/recyclezone/marketplace/internal/domain/shared"
)

// BaseModel maps the domain BaseEntity
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to a domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from a domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// All lists every model for schema bootstrap
func All() []any {
	return []any{
		&UserModel{},
		&CategoryModel{},
		&ProductModel{},
		&AdvertisementModel{},
		&OrderModel{},
		&PaymentModel{},
		&ReportModel{},
	}
}
