package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stayhub-backend/internal/apperr"
	"stayhub-backend/internal/domain"
	"stayhub-backend/internal/events"
	"stayhub-backend/internal/identity"
	"stayhub-backend/internal/logger"
	"stayhub-backend/internal/repository"
)

type userService struct {
	users     repository.UserRepository
	provider  identity.Provider
	publisher events.Publisher
}

func NewUserService(users repository.UserRepository, provider identity.Provider, publisher events.Publisher) UserService {
	return &userService{users: users, provider: provider, publisher: publisher}
}

func (s *userService) CreateUser(ctx context.Context, email, password string, userType domain.UserType) (*CreatedUser, error) {
	if !userType.Valid() {
		return nil, apperr.InvalidInput(
			`Invalid user type. Must be either "host" or "guest".`,
			fmt.Sprintf("Provided userType: %s", userType),
		)
	}

	userID, err := s.provider.AdminCreateUser(ctx, email)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if err := s.provider.AdminSetPassword(ctx, userID, password); err != nil {
		return nil, apperr.Internal(err)
	}
	if err := s.provider.AdminAddUserToGroup(ctx, userID, string(userType)); err != nil {
		return nil, apperr.Internal(err)
	}

	return &CreatedUser{UserID: userID, Email: email, UserType: userType}, nil
}

func (s *userService) HandleSignUp(ctx context.Context, trigger *domain.SignUpTrigger) (*domain.SignUpTrigger, error) {
	// Auto-verification is disabled unconditionally, even for trigger
	// sources the hook otherwise ignores.
	trigger.Response = domain.SignUpResponse{
		AutoConfirmUser: false,
		AutoVerifyPhone: false,
		AutoVerifyEmail: false,
	}

	if !trigger.IsSignUp() {
		logger.Warn("invalid triggerSource", "trigger_source", trigger.TriggerSource)
		return trigger, nil
	}

	email := trigger.Request.UserAttributes["email"]
	role := trigger.Request.ClientMetadata["role"]
	if role == "" {
		role = string(domain.UserTypeGuest)
	}

	joinDate := time.Now().UTC().Format("2006-01-02")
	user := domain.NewUser(trigger.UserName, email, domain.UserType(role), joinDate)

	// Store write and event emission both fail the sign-up on error: the
	// provider retries the trigger, so the hook is at-least-once.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperr.Internal(err)
	}
	if err := s.publisher.PublishUserCreated(ctx, events.UserCreated{UserID: trigger.UserName, Email: email}); err != nil {
		return nil, apperr.Internal(err)
	}

	return trigger, nil
}

func (s *userService) GetUser(ctx context.Context, accessToken, userID string) (*domain.User, bool, error) {
	caller, err := s.provider.GetUser(ctx, accessToken)
	if err != nil {
		if errors.Is(err, identity.ErrNotAuthorized) {
			return nil, false, apperr.Unauthorized("Invalid token")
		}
		return nil, false, apperr.Internal(err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, false, apperr.Internal(err)
	}
	if user == nil {
		return nil, false, apperr.InvalidInput("Invalid user ID", "User ID provided is not valid.")
	}

	return user, caller.Username == userID, nil
}

func (s *userService) UpdateUser(ctx context.Context, accessToken, userID string, patch domain.FinancePatch) (*domain.User, error) {
	caller, err := s.provider.GetUser(ctx, accessToken)
	if err != nil {
		if errors.Is(err, identity.ErrNotAuthorized) {
			return nil, apperr.Unauthorized("Invalid token")
		}
		return nil, apperr.Internal(err)
	}

	if caller.Username != userID {
		return nil, apperr.InvalidInput(
			"You can only update your own account",
			"User ID in token does not match the provided user ID",
		)
	}

	if patch.Empty() {
		return nil, apperr.InvalidInput(
			"No valid fields to update",
			"Only financeInformation.paymentMethod, financeInformation.payoutInformation, and financeInformation.taxInformation are allowed",
		)
	}

	if err := s.users.UpdateFinance(ctx, userID, patch); err != nil {
		return nil, apperr.Internal(err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return user, nil
}

func (s *userService) DeactivateUser(ctx context.Context, accessToken, userID string) error {
	caller, err := s.provider.GetUser(ctx, accessToken)
	if err != nil {
		if errors.Is(err, identity.ErrNotAuthorized) {
			return apperr.Unauthorized("Invalid token")
		}
		return apperr.Internal(err)
	}

	if caller.Username != userID {
		return apperr.InvalidInput(
			"You can only deactivate your own account",
			"User ID in token does not match the provided user ID",
		)
	}

	if err := s.provider.AdminDisableUser(ctx, userID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *userService) Login(ctx context.Context, email, password string) (string, error) {
	token, err := s.provider.AdminInitiateAuth(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrNotAuthorized) {
			return "", apperr.InvalidInput("Invalid email or password", err.Error())
		}
		return "", apperr.Internal(err)
	}
	return token, nil
}
