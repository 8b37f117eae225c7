package catalog

import (
	"strings"

	"github.com/recyclezone/marketplace/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product is a second-hand item listed by a seller
type Product struct {
	shared.BaseEntity
	SellerEmail   string
	SellerName    string
	Category      string
	Name          string
	Description   string
	Condition     string
	Location      string
	Phone         string
	ImageURL      string
	Price         decimal.Decimal
	OriginalPrice decimal.Decimal
	YearsOfUse    int
	Quantity      int
}

// ProductDetails are the descriptive, unvalidated listing fields
type ProductDetails struct {
	SellerName    string
	Description   string
	Condition     string
	Location      string
	Phone         string
	ImageURL      string
	OriginalPrice decimal.Decimal
	YearsOfUse    int
}

// NewProduct creates a listing owned by sellerEmail
func NewProduct(sellerEmail, name, category string, price decimal.Decimal, quantity int, details ProductDetails) (*Product, error) {
	sellerEmail = shared.CanonicalEmail(sellerEmail)
	if sellerEmail == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Seller email cannot be empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product name cannot exceed 200 characters")
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Category cannot be empty")
	}
	// prices are stored in cents, so validate the stored value
	price = price.Round(2)
	if !price.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Price must be positive")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Quantity cannot be negative")
	}
	if details.OriginalPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Original price cannot be negative")
	}
	if details.YearsOfUse < 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Years of use cannot be negative")
	}

	return &Product{
		BaseEntity:    shared.NewBaseEntity(),
		SellerEmail:   sellerEmail,
		SellerName:    strings.TrimSpace(details.SellerName),
		Category:      category,
		Name:          name,
		Description:   details.Description,
		Condition:     details.Condition,
		Location:      details.Location,
		Phone:         details.Phone,
		ImageURL:      details.ImageURL,
		Price:         price,
		OriginalPrice: details.OriginalPrice.Round(2),
		YearsOfUse:    details.YearsOfUse,
		Quantity:      quantity,
	}, nil
}

// IsOwnedBy reports whether email is the listing's seller
func (p *Product) IsOwnedBy(email string) bool {
	return strings.EqualFold(p.SellerEmail, strings.TrimSpace(email))
}

