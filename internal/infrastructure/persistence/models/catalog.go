package models

import (
	"encoding/json"

	"github.com/recyclezone/marketplace/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product entity
type ProductModel struct {
	BaseModel
	SellerEmail   string          `gorm:"type:varchar(200);not null;index"`
	SellerName    string          `gorm:"type:varchar(100)"`
	Category      string          `gorm:"type:varchar(100);not null;index"`
	Name          string          `gorm:"type:varchar(200);not null"`
	Description   string          `gorm:"type:text"`
	Condition     string          `gorm:"type:varchar(50)"`
	Location      string          `gorm:"type:varchar(200)"`
	Phone         string          `gorm:"type:varchar(50)"`
	ImageURL      string          `gorm:"type:varchar(500)"`
	Price         decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	OriginalPrice decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	YearsOfUse    int             `gorm:"not null;default:0"`
	Quantity      int             `gorm:"not null;check:quantity >= 0"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the model to a domain Product
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity:    m.BaseModel.ToDomain(),
		SellerEmail:   m.SellerEmail,
		SellerName:    m.SellerName,
		Category:      m.Category,
		Name:          m.Name,
		Description:   m.Description,
		Condition:     m.Condition,
		Location:      m.Location,
		Phone:         m.Phone,
		ImageURL:      m.ImageURL,
		Price:         m.Price,
		OriginalPrice: m.OriginalPrice,
		YearsOfUse:    m.YearsOfUse,
		Quantity:      m.Quantity,
	}
}

// ProductModelFromDomain creates a model from a domain Product
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{
		SellerEmail:   p.SellerEmail,
		SellerName:    p.SellerName,
		Category:      p.Category,
		Name:          p.Name,
		Description:   p.Description,
		Condition:     p.Condition,
		Location:      p.Location,
		Phone:         p.Phone,
		ImageURL:      p.ImageURL,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		YearsOfUse:    p.YearsOfUse,
		Quantity:      p.Quantity,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}

// CategoryModel is the persistence model for the Category entity
type CategoryModel struct {
	BaseModel
	Name     string `gorm:"type:varchar(100);not null;uniqueIndex"`
	ImageURL string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the model to a domain Category
func (m *CategoryModel) ToDomain() *catalog.Category {
	return &catalog.Category{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		ImageURL:   m.ImageURL,
	}
}

// CategoryModelFromDomain creates a model from a domain Category
func CategoryModelFromDomain(c *catalog.Category) *CategoryModel {
	m := &CategoryModel{Name: c.Name, ImageURL: c.ImageURL}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// AdvertisementModel is the persistence model for the Advertisement entity
type AdvertisementModel struct {
	BaseModel
	SellerEmail string `gorm:"type:varchar(200);not null;index"`
	Payload     string `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (AdvertisementModel) TableName() string {
	return "advertisements"
}

// ToDomain converts the model to a domain Advertisement
func (m *AdvertisementModel) ToDomain() *catalog.Advertisement {
	return &catalog.Advertisement{
		BaseEntity:  m.BaseModel.ToDomain(),
		SellerEmail: m.SellerEmail,
		Payload:     json.RawMessage(m.Payload),
	}
}

// AdvertisementModelFromDomain creates a model from a domain Advertisement
func AdvertisementModelFromDomain(a *catalog.Advertisement) *AdvertisementModel {
	m := &AdvertisementModel{SellerEmail: a.SellerEmail, Payload: string(a.Payload)}
	m.FromDomainBaseEntity(a.BaseEntity)
	return m
}
