package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"stayhub-backend/internal/apperr"
	"stayhub-backend/internal/domain"
	"stayhub-backend/internal/identity"
	"stayhub-backend/internal/repository"
)

type orderService struct {
	orders   repository.OrderRepository
	provider identity.Provider
}

func NewOrderService(orders repository.OrderRepository, provider identity.Provider) OrderService {
	return &orderService{orders: orders, provider: provider}
}

func (s *orderService) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	order.OrderID = uuid.NewString()
	order.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, apperr.Internal(err)
	}
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, accessToken, orderID string) (*domain.Order, error) {
	caller, err := s.provider.GetUser(ctx, accessToken)
	if err != nil {
		if errors.Is(err, identity.ErrNotAuthorized) {
			return nil, apperr.Unauthorized("Unauthorized")
		}
		return nil, apperr.Internal(err)
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if order == nil {
		return nil, apperr.InvalidInput("Invalid order ID", "Order ID provided is not valid.")
	}
	if order.UserID != caller.Sub && order.HostID != caller.Sub {
		return nil, apperr.Forbidden("User is not authorized to access this order")
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, accessToken, userID, listingID string) ([]domain.Order, error) {
	caller, err := s.provider.GetUser(ctx, accessToken)
	if err != nil {
		if errors.Is(err, identity.ErrNotAuthorized) {
			return nil, apperr.Unauthorized("Unauthorized")
		}
		return nil, apperr.Internal(err)
	}

	if userID != "" && userID != caller.Sub {
		return nil, apperr.Forbidden("User is not authorized to access these orders")
	}

	if listingID != "" {
		orders, err := s.orders.ListByListing(ctx, listingID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		// The host check inspects the first result only; all orders of a
		// listing carry the same hostId.
		if len(orders) > 0 && orders[0].HostID != caller.Sub {
			return nil, apperr.Forbidden("User is not authorized to access these orders")
		}
		return orders, nil
	}

	orders, err := s.orders.ListByUser(ctx, caller.Sub)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return orders, nil
}

func (s *orderService) UpdateOrder(ctx context.Context, accessToken, orderID string, fields map[string]any) error {
	caller, err := s.provider.GetUser(ctx, accessToken)
	if err != nil {
		if errors.Is(err, identity.ErrNotAuthorized) {
			return apperr.Unauthorized("Unauthorized")
		}
		return apperr.Internal(err)
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return apperr.Internal(err)
	}
	if order == nil {
		return apperr.InvalidInput("Invalid order ID", "Order ID provided is not valid.")
	}
	if order.UserID != caller.Sub && order.HostID != caller.Sub {
		return apperr.Forbidden("User is not authorized to update this order")
	}

	if err := s.orders.UpdateAttributes(ctx, orderID, fields); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
