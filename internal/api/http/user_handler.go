package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"stayhub-backend/internal/apperr"
	"stayhub-backend/internal/domain"
	"stayhub-backend/internal/service"
)

// UserHandler exposes the user lifecycle operations over HTTP, including
// the identity provider's pre-sign-up trigger endpoint.
type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type createUserRequest struct {
	Email    string `json:"email"`
	UserType string `json:"userType"`
	Password string `json:"password"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeUserError(w, apperr.InvalidInput("Invalid request body", err.Error()))
		return
	}

	created, err := h.svc.CreateUser(r.Context(), req.Email, req.Password, domain.UserType(req.UserType))
	if err != nil {
		writeUserError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (h *UserHandler) SignUpHook(w http.ResponseWriter, r *http.Request) {
	var trigger domain.SignUpTrigger
	if err := json.NewDecoder(r.Body).Decode(&trigger); err != nil {
		writeUserError(w, apperr.InvalidInput("Invalid request body", err.Error()))
		return
	}

	result, err := h.svc.HandleSignUp(r.Context(), &trigger)
	if err != nil {
		writeUserError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, self, err := h.svc.GetUser(r.Context(), bearerToken(r), mux.Vars(r)["userId"])
	if err != nil {
		writeUserError(w, err)
		return
	}
	if self {
		writeJSON(w, http.StatusOK, user)
		return
	}
	writeJSON(w, http.StatusOK, user.Public())
}

type updateUserRequest struct {
	FinanceInformation domain.FinancePatch `json:"financeInformation"`
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeUserError(w, apperr.InvalidInput("Invalid request body", err.Error()))
		return
	}

	user, err := h.svc.UpdateUser(r.Context(), bearerToken(r), mux.Vars(r)["userId"], req.FinanceInformation)
	if err != nil {
		writeUserError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeactivateUser(r.Context(), bearerToken(r), mux.Vars(r)["userId"]); err != nil {
		writeUserError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "User successfully deactivated"})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeUserError(w, apperr.InvalidInput("Invalid request body", err.Error()))
		return
	}

	token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeUserError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}
