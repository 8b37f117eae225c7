package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/recyclezone/marketplace/internal/domain/catalog"
	"github.com/recyclezone/marketplace/internal/domain/shared"
)

// AdvertisementService handles storefront advertisements
type AdvertisementService struct {
	adRepo catalog.AdvertisementRepository
}

// NewAdvertisementService creates a new AdvertisementService
func NewAdvertisementService(adRepo catalog.AdvertisementRepository) *AdvertisementService {
	return &AdvertisementService{adRepo: adRepo}
}

// Create stores payload on behalf of sellerEmail
func (s *AdvertisementService) Create(ctx context.Context, sellerEmail string, payload json.RawMessage) (shared.InsertResult, error) {
	ad, err := catalog.NewAdvertisement(sellerEmail, payload)
	if err != nil {
		return shared.InsertResult{}, err
	}
	if err := s.adRepo.Create(ctx, ad); err != nil {
		return shared.InsertResult{}, fmt.Errorf("failed to create advertisement: %w", err)
	}
	return shared.NewInsertResult(ad.ID), nil
}

// List returns advertisements newest first
func (s *AdvertisementService) List(ctx context.Context) ([]AdvertisementResponse, error) {
	ads, err := s.adRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list advertisements: %w", err)
	}
	responses := make([]AdvertisementResponse, len(ads))
	for i, ad := range ads {
		responses[i] = AdvertisementResponse{
			ID:          ad.ID,
			SellerEmail: ad.SellerEmail,
			Payload:     ad.Payload,
			CreatedAt:   ad.CreatedAt,
		}
	}
	return responses, nil
}
