package catalog

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/recyclezone/marketplace/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateProductInput carries a new listing. The seller comes from the caller's identity.
type CreateProductInput struct {
	SellerName    string
	Name          string
	Category      string
	Description   string
	Condition     string
	Location      string
	Phone         string
	ImageURL      string
	Price         decimal.Decimal
	OriginalPrice decimal.Decimal
	YearsOfUse    int
	Quantity      *int
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID            uuid.UUID       `json:"_id"`
	SellerEmail   string          `json:"sellerEmail"`
	SellerName    string          `json:"sellerName"`
	Category      string          `json:"category"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Condition     string          `json:"condition"`
	Location      string          `json:"location"`
	Phone         string          `json:"phone"`
	ImageURL      string          `json:"image"`
	Price         decimal.Decimal `json:"resalePrice"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	YearsOfUse    int             `json:"yearsOfUse"`
	Quantity      int             `json:"quantity"`
	CreatedAt     time.Time       `json:"postedTime"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
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
		CreatedAt:     p.CreatedAt,
	}
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID       uuid.UUID `json:"_id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"image,omitempty"`
}

// AdvertisementResponse represents an advertisement in API responses.
// The stored payload is returned as-is alongside the server fields.
type AdvertisementResponse struct {
	ID          uuid.UUID       `json:"_id"`
	SellerEmail string          `json:"sellerEmail"`
	Payload     json.RawMessage `json:"payload"`
	CreatedAt   time.Time       `json:"createdAt"`
}
