package service

import (
	"context"

	"stayhub-backend/internal/domain"
)

type ListingService interface {
	// CreateListing requires the caller to belong to the host group and
	// returns the generated listing identifier.
	CreateListing(ctx context.Context, accessToken string, listing *domain.Listing) (string, error)
	// GetListing is a public read; no credential required.
	GetListing(ctx context.Context, listingID string) (*domain.Listing, error)
	ListListings(ctx context.Context, params domain.ListListingsParams) (*domain.ListingPage, error)
	SearchListings(ctx context.Context, params domain.SearchListingsParams) (*domain.ListingPage, error)
	// DeleteListing requires the caller to be the listing's host.
	DeleteListing(ctx context.Context, accessToken, listingID string) error
}

type OrderService interface {
	// CreateOrder trusts the caller-supplied userId and hostId; no
	// credential check is performed.
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	// GetOrder requires the caller to be the order's buyer or host.
	GetOrder(ctx context.Context, accessToken, orderID string) (*domain.Order, error)
	// ListOrders queries by listing (authorizing the caller as the host) or
	// by the caller's own user id.
	ListOrders(ctx context.Context, accessToken, userID, listingID string) ([]domain.Order, error)
	// UpdateOrder requires buyer or host and writes every given top-level
	// attribute verbatim.
	UpdateOrder(ctx context.Context, accessToken, orderID string, fields map[string]any) error
}

// CreatedUser is the response of the administrative create operation. The
// profile record is written later by the sign-up hook, not here.
type CreatedUser struct {
	UserID   string          `json:"userId"`
	Email    string          `json:"email"`
	UserType domain.UserType `json:"userType"`
}

type UserService interface {
	// CreateUser provisions a provider-side account with a permanent
	// password and group membership.
	CreateUser(ctx context.Context, email, password string, userType domain.UserType) (*CreatedUser, error)
	// HandleSignUp processes the provider's pre-sign-up trigger: writes the
	// defaulted profile record and emits a UserCreated event. A failure of
	// either propagates, failing the sign-up itself.
	HandleSignUp(ctx context.Context, trigger *domain.SignUpTrigger) (*domain.SignUpTrigger, error)
	// GetUser returns the target record and whether the caller is the
	// target (the transport reduces the projection when not).
	GetUser(ctx context.Context, accessToken, userID string) (*domain.User, bool, error)
	// UpdateUser applies the finance allow-list patch to the caller's own
	// record and returns the updated record.
	UpdateUser(ctx context.Context, accessToken, userID string, patch domain.FinancePatch) (*domain.User, error)
	// DeactivateUser disables the caller's own provider account; the
	// profile record is left intact.
	DeactivateUser(ctx context.Context, accessToken, userID string) error
	// Login exchanges email+password for a provider-issued identity token.
	Login(ctx context.Context, email, password string) (string, error)
}
