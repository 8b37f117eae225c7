package catalog

import (
	"strings"

	"github.com/recyclezone/marketplace/internal/domain/shared"
)

// Category is a browsing tag products are filed under
type Category struct {
	shared.BaseEntity
	Name     string
	ImageURL string
}

// NewCategory creates a category
func NewCategory(name, imageURL string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Category name cannot exceed 100 characters")
	}
	return &Category{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		ImageURL:   strings.TrimSpace(imageURL),
	}, nil
}
