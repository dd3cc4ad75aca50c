package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stayhub-backend/internal/apperr"
	"stayhub-backend/internal/domain"
	"stayhub-backend/internal/service"
)

func TestUserHandler_Create(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		svc := new(MockUserService)
		router := newTestRouter(nil, nil, svc)

		svc.On("CreateUser", mock.Anything, "alice@example.com", "s3cret", domain.UserTypeHost).
			Return(&service.CreatedUser{UserID: "alice@example.com", Email: "alice@example.com", UserType: domain.UserTypeHost}, nil)

		body := `{"email":"alice@example.com","password":"s3cret","userType":"host"}`
		rec := doRequest(router, http.MethodPost, "/users", "", body)
		require.Equal(t, http.StatusOK, rec.Code)

		var created service.CreatedUser
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, domain.UserTypeHost, created.UserType)
	})

	t.Run("InvalidUserTypeGets400", func(t *testing.T) {
		svc := new(MockUserService)
		router := newTestRouter(nil, nil, svc)

		svc.On("CreateUser", mock.Anything, mock.Anything, mock.Anything, domain.UserType("admin")).
			Return(nil, apperr.InvalidInput(`Invalid user type. Must be either "host" or "guest".`, ""))

		rec := doRequest(router, http.MethodPost, "/users", "", `{"email":"a@b.c","password":"p","userType":"admin"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_SignUpHook(t *testing.T) {
	svc := new(MockUserService)
	router := newTestRouter(nil, nil, svc)

	svc.On("HandleSignUp", mock.Anything, mock.MatchedBy(func(tr *domain.SignUpTrigger) bool {
		return tr.TriggerSource == domain.TriggerSourceSignUp && tr.UserName == "alice"
	})).Return(&domain.SignUpTrigger{
		TriggerSource: domain.TriggerSourceSignUp,
		UserName:      "alice",
	}, nil)

	body := `{"triggerSource":"PreSignUp_SignUp","userName":"alice","request":{"userAttributes":{"email":"alice@example.com"}}}`
	rec := doRequest(router, http.MethodPost, "/signup-hook", "", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.SignUpTrigger
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Response.AutoConfirmUser)
	assert.False(t, result.Response.AutoVerifyEmail)
}

func TestUserHandler_Get(t *testing.T) {
	record := &domain.User{UserID: "alice", Email: "alice@example.com", UserType: domain.UserTypeGuest}

	t.Run("SelfGetsFullRecord", func(t *testing.T) {
		svc := new(MockUserService)
		router := newTestRouter(nil, nil, svc)

		svc.On("GetUser", mock.Anything, "token", "alice").Return(record, true, nil)

		rec := doRequest(router, http.MethodGet, "/users/alice", "token", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body, "personalInformation")
		assert.Contains(t, body, "financeInformation")
	})

	t.Run("OtherGetsReducedProjection", func(t *testing.T) {
		svc := new(MockUserService)
		router := newTestRouter(nil, nil, svc)

		svc.On("GetUser", mock.Anything, "token", "alice").Return(record, false, nil)

		rec := doRequest(router, http.MethodGet, "/users/alice", "token", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		for key := range body {
			assert.Contains(t, []string{"userId", "email", "profile", "userType"}, key)
		}
		assert.NotContains(t, body, "personalInformation")
		assert.NotContains(t, body, "financeInformation")
	})

	t.Run("BadTokenGets400NotA401", func(t *testing.T) {
		svc := new(MockUserService)
		router := newTestRouter(nil, nil, svc)

		svc.On("GetUser", mock.Anything, "bad", "alice").
			Return(nil, false, apperr.Unauthorized("Invalid token"))

		rec := doRequest(router, http.MethodGet, "/users/alice", "bad", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid token", resp.Message)
	})
}

func TestUserHandler_Update(t *testing.T) {
	t.Run("FinancePatchApplied", func(t *testing.T) {
		svc := new(MockUserService)
		router := newTestRouter(nil, nil, svc)

		svc.On("UpdateUser", mock.Anything, "token", "alice", mock.MatchedBy(func(p domain.FinancePatch) bool {
			method, ok := p.PaymentMethod["cardType"]
			return ok && method == "visa" && p.PayoutInformation == nil
		})).Return(&domain.User{UserID: "alice"}, nil)

		body := `{"financeInformation":{"paymentMethod":{"cardType":"visa"}}}`
		rec := doRequest(router, http.MethodPut, "/users/alice", "token", body)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	// Top-level fields outside financeInformation are silently dropped by
	// the request shape, so the patch arrives empty.
	t.Run("DisallowedFieldsDecodeToEmptyPatch", func(t *testing.T) {
		svc := new(MockUserService)
		router := newTestRouter(nil, nil, svc)

		svc.On("UpdateUser", mock.Anything, "token", "alice", mock.MatchedBy(func(p domain.FinancePatch) bool {
			return p.Empty()
		})).Return(nil, apperr.InvalidInput("No valid fields to update", ""))

		rec := doRequest(router, http.MethodPut, "/users/alice", "token", `{"email":"new@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("NotSelfGets400", func(t *testing.T) {
		svc := new(MockUserService)
		router := newTestRouter(nil, nil, svc)

		svc.On("UpdateUser", mock.Anything, "token", "bob", mock.Anything).
			Return(nil, apperr.InvalidInput("You can only update your own account", ""))

		body := `{"financeInformation":{"paymentMethod":{"cardType":"visa"}}}`
		rec := doRequest(router, http.MethodPut, "/users/bob", "token", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_Deactivate(t *testing.T) {
	svc := new(MockUserService)
	router := newTestRouter(nil, nil, svc)

	svc.On("DeactivateUser", mock.Anything, "token", "alice").Return(nil)

	rec := doRequest(router, http.MethodDelete, "/users/alice", "token", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp messageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User successfully deactivated", resp.Message)
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("TokenReturned", func(t *testing.T) {
		svc := new(MockUserService)
		router := newTestRouter(nil, nil, svc)

		svc.On("Login", mock.Anything, "alice@example.com", "s3cret").Return("id-token", nil)

		rec := doRequest(router, http.MethodPost, "/login", "", `{"email":"alice@example.com","password":"s3cret"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp loginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "id-token", resp.Token)
	})

	t.Run("WrongPasswordGets400", func(t *testing.T) {
		svc := new(MockUserService)
		router := newTestRouter(nil, nil, svc)

		svc.On("Login", mock.Anything, "alice@example.com", "wrong").
			Return("", apperr.InvalidInput("Invalid email or password", ""))

		rec := doRequest(router, http.MethodPost, "/login", "", `{"email":"alice@example.com","password":"wrong"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
