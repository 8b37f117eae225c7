package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/recyclezone/marketplace/internal/domain/catalog"
	"github.com/recyclezone/marketplace/internal/domain/shared"
	"github.com/recyclezone/marketplace/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// AdminResolver reports whether an email belongs to an admin
type AdminResolver interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// ProductService handles product listing operations
type ProductService struct {
	productRepo catalog.ProductRepository
	admins      AdminResolver
	logger      *zap.Logger

	businessMetrics *telemetry.BusinessMetrics
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, admins AdminResolver, logger *zap.Logger) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		productRepo: productRepo,
		admins:      admins,
		logger:      logger,
	}
}

// SetBusinessMetrics sets the business metrics collector
func (s *ProductService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.businessMetrics = bm
}

// List returns products matching filter, newest first
func (s *ProductService) List(ctx context.Context, filter catalog.ProductFilter) ([]ProductResponse, error) {
	filter.SellerEmail = shared.CanonicalEmail(filter.SellerEmail)
	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses, nil
}

// Create lists a product for sellerEmail
func (s *ProductService) Create(ctx context.Context, sellerEmail string, input CreateProductInput) (shared.InsertResult, error) {
	quantity := 1
	if input.Quantity != nil {
		quantity = *input.Quantity
	}

	product, err := catalog.NewProduct(sellerEmail, input.Name, input.Category, input.Price, quantity, catalog.ProductDetails{
		SellerName:    input.SellerName,
		Description:   input.Description,
		Condition:     input.Condition,
		Location:      input.Location,
		Phone:         input.Phone,
		ImageURL:      input.ImageURL,
		OriginalPrice: input.OriginalPrice,
		YearsOfUse:    input.YearsOfUse,
	})
	if err != nil {
		return shared.InsertResult{}, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return shared.InsertResult{}, fmt.Errorf("failed to create product: %w", err)
	}

	if s.businessMetrics != nil {
		s.businessMetrics.RecordProductListed(ctx, product.Category)
	}

	s.logger.Info("Product listed",
		zap.String("product_id", product.ID.String()),
		zap.String("category", product.Category))
	return shared.NewInsertResult(product.ID), nil
}

// Delete removes a product. Only its seller or an admin may do so.
func (s *ProductService) Delete(ctx context.Context, callerEmail string, id uuid.UUID) (shared.DeleteResult, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return shared.DeleteResult{}, err
	}

	if !product.IsOwnedBy(callerEmail) {
		isAdmin, err := s.admins.IsAdmin(ctx, callerEmail)
		if err != nil {
			return shared.DeleteResult{}, err
		}
		if !isAdmin {
			return shared.DeleteResult{}, shared.NewDomainError("FORBIDDEN", "Only the seller or an admin can delete this product")
		}
	}

	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return shared.DeleteResult{}, fmt.Errorf("failed to delete product: %w", err)
	}
	if deleted == 0 {
		return shared.DeleteResult{}, shared.ErrNotFound
	}

	s.logger.Info("Product deleted", zap.String("product_id", id.String()))
	return shared.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}

// StockOut marks a product sold out. Repeating it matches without modifying.
func (s *ProductService) StockOut(ctx context.Context, id uuid.UUID) (shared.UpdateResult, error) {
	changed, err := s.productRepo.ClearStock(ctx, id)
	if err != nil {
		return shared.UpdateResult{}, fmt.Errorf("failed to stock out product: %w", err)
	}
	if changed == 0 {
		// either missing or already at zero
		if _, err := s.productRepo.FindByID(ctx, id); err != nil {
			return shared.UpdateResult{}, err
		}
		return shared.UpdateResult{Acknowledged: true, MatchedCount: 1}, nil
	}
	return shared.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: changed}, nil
}
