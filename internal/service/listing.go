package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"stayhub-backend/internal/apperr"
	"stayhub-backend/internal/domain"
	"stayhub-backend/internal/identity"
	"stayhub-backend/internal/repository"
)

type listingService struct {
	listings repository.ListingRepository
	provider identity.Provider
}

func NewListingService(listings repository.ListingRepository, provider identity.Provider) ListingService {
	return &listingService{listings: listings, provider: provider}
}

func (s *listingService) CreateListing(ctx context.Context, accessToken string, listing *domain.Listing) (string, error) {
	caller, err := s.provider.GetUser(ctx, accessToken)
	if err != nil {
		if errors.Is(err, identity.ErrNotAuthorized) {
			return "", apperr.Unauthorized("Unauthorized")
		}
		return "", apperr.Internal(err)
	}

	groups, err := s.provider.ListGroups(ctx, caller.Username)
	if err != nil {
		if errors.Is(err, identity.ErrNotAuthorized) {
			return "", apperr.Unauthorized("Unauthorized")
		}
		return "", apperr.Internal(err)
	}

	isHost := false
	for _, group := range groups {
		if group == string(domain.UserTypeHost) {
			isHost = true
			break
		}
	}
	if !isHost {
		return "", apperr.Forbidden("User is not authorized to create listings")
	}

	listing.ListingID = uuid.NewString()
	listing.HostID = caller.Sub

	if err := s.listings.Create(ctx, listing); err != nil {
		return "", apperr.Internal(err)
	}
	return listing.ListingID, nil
}

func (s *listingService) GetListing(ctx context.Context, listingID string) (*domain.Listing, error) {
	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if listing == nil {
		return nil, apperr.InvalidInput("Invalid listing ID", "Listing ID provided is not valid.")
	}
	return listing, nil
}

func (s *listingService) ListListings(ctx context.Context, params domain.ListListingsParams) (*domain.ListingPage, error) {
	page, err := s.listings.List(ctx, params)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return page, nil
}

func (s *listingService) SearchListings(ctx context.Context, params domain.SearchListingsParams) (*domain.ListingPage, error) {
	page, err := s.listings.Search(ctx, params)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return page, nil
}

func (s *listingService) DeleteListing(ctx context.Context, accessToken, listingID string) error {
	caller, err := s.provider.GetUser(ctx, accessToken)
	if err != nil {
		if errors.Is(err, identity.ErrNotAuthorized) {
			return apperr.Unauthorized("Unauthorized")
		}
		return apperr.Internal(err)
	}

	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return apperr.Internal(err)
	}
	if listing == nil {
		return apperr.InvalidInput("Invalid listing ID", "Listing ID provided is not valid.")
	}
	if listing.HostID != caller.Sub {
		return apperr.Forbidden("User is not authorized to delete this listing")
	}

	if err := s.listings.Delete(ctx, listingID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
