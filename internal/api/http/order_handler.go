package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"stayhub-backend/internal/apperr"
	"stayhub-backend/internal/domain"
	"stayhub-backend/internal/service"
)

// OrderHandler exposes the order operations over HTTP.
type OrderHandler struct {
	svc service.OrderService
}

func NewOrderHandler(svc service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type createOrderRequest struct {
	UserID         string  `json:"userId"`
	OrderType      string  `json:"orderType"`
	DetailID       string  `json:"detailId"`
	StartDate      *string `json:"startDate"`
	EndDate        *string `json:"endDate"`
	Date           *string `json:"date"`
	Time           *string `json:"time"`
	Total          float64 `json:"total"`
	AdditionalFees float64 `json:"additionalFees"`
	HostID         string  `json:"hostId"`
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.InvalidInput("Invalid request body", err.Error()))
		return
	}

	order := &domain.Order{
		UserID:         req.UserID,
		Type:           req.OrderType,
		ListingID:      req.DetailID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Date:           req.Date,
		Time:           req.Time,
		Total:          req.Total,
		AdditionalFees: req.AdditionalFees,
		HostID:         req.HostID,
	}

	created, err := h.svc.CreateOrder(r.Context(), order)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.svc.GetOrder(r.Context(), bearerToken(r), mux.Vars(r)["orderId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	orders, err := h.svc.ListOrders(r.Context(), bearerToken(r), query.Get("userId"), query.Get("listingId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, apperr.InvalidInput("Invalid request body", err.Error()))
		return
	}

	if err := h.svc.UpdateOrder(r.Context(), bearerToken(r), mux.Vars(r)["orderId"], fields); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Order updated successfully"})
}
