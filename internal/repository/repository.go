// Package repository defines the record store contracts. Lookups for a
// missing record return (nil, nil); the services translate that into the
// invalid-id client error.
package repository

import (
	"context"

	"stayhub-backend/internal/domain"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) error
	GetByID(ctx context.Context, listingID string) (*domain.Listing, error)
	Delete(ctx context.Context, listingID string) error
	List(ctx context.Context, params domain.ListListingsParams) (*domain.ListingPage, error)
	Search(ctx context.Context, params domain.SearchListingsParams) (*domain.ListingPage, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, orderID string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	ListByListing(ctx context.Context, listingID string) ([]domain.Order, error)
	// UpdateAttributes writes every given top-level attribute verbatim,
	// overwriting existing values (last-write-wins per attribute).
	UpdateAttributes(ctx context.Context, orderID string, fields map[string]any) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	// UpdateFinance applies the allow-listed finance sub-object assignments.
	UpdateFinance(ctx context.Context, userID string, patch domain.FinancePatch) error
}
