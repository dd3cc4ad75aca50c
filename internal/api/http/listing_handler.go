package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"stayhub-backend/internal/apperr"
	"stayhub-backend/internal/domain"
	"stayhub-backend/internal/service"
)

const defaultPageLimit = 10

// ListingHandler exposes the listing operations over HTTP.
type ListingHandler struct {
	svc service.ListingService
}

func NewListingHandler(svc service.ListingService) *ListingHandler {
	return &ListingHandler{svc: svc}
}

type createListingRequest struct {
	ListingType      string   `json:"listingType"`
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	City             string   `json:"city"`
	PhotoAddressList []string `json:"photoAddressList"`
	Category         string   `json:"category"`
	Price            float64  `json:"price"`
	Calendar         any      `json:"calendar"`
}

type createListingResponse struct {
	Message   string `json:"message"`
	ListingID string `json:"listingId"`
}

func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.InvalidInput("Invalid request body", err.Error()))
		return
	}

	listing := &domain.Listing{
		Type:             req.ListingType,
		Name:             req.Name,
		Address:          req.Address,
		City:             req.City,
		PhotoAddressList: req.PhotoAddressList,
		Category:         req.Category,
		Price:            req.Price,
		Calendar:         req.Calendar,
	}

	listingID, err := h.svc.CreateListing(r.Context(), bearerToken(r), listing)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, createListingResponse{
		Message:   "Listing created successfully",
		ListingID: listingID,
	})
}

func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	listing, err := h.svc.GetListing(r.Context(), mux.Vars(r)["listingId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	startKey, err := parsePageKey(query.Get("lastEvaluatedKey"))
	if err != nil {
		writeError(w, err)
		return
	}

	params := domain.ListListingsParams{
		Limit:    parseLimit(query.Get("limit")),
		StartKey: startKey,
		HostID:   query.Get("hostId"),
		Category: query.Get("category"),
		SortDesc: query.Get("sortOrder") == "desc",
	}

	page, err := h.svc.ListListings(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *ListingHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	startKey, err := parsePageKey(query.Get("lastEvaluatedKey"))
	if err != nil {
		writeError(w, err)
		return
	}

	params := domain.SearchListingsParams{
		Limit:    parseLimit(query.Get("limit")),
		StartKey: startKey,
		City:     query.Get("city"),
		Category: query.Get("category"),
	}
	if minPrice, err := parseOptionalInt(query.Get("minPrice")); err != nil {
		writeError(w, err)
		return
	} else {
		params.MinPrice = minPrice
	}
	if maxPrice, err := parseOptionalInt(query.Get("maxPrice")); err != nil {
		writeError(w, err)
		return
	} else {
		params.MaxPrice = maxPrice
	}

	page, err := h.svc.SearchListings(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteListing(r.Context(), bearerToken(r), mux.Vars(r)["listingId"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Listing successfully deleted"})
}

// parseLimit falls back to the default page size on anything unparseable.
func parseLimit(raw string) int32 {
	if raw == "" {
		return defaultPageLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultPageLimit
	}
	return int32(limit)
}

// parsePageKey decodes the opaque continuation key query parameter.
func parsePageKey(raw string) (domain.PageKey, error) {
	if raw == "" {
		return nil, nil
	}
	var key domain.PageKey
	if err := json.Unmarshal([]byte(raw), &key); err != nil {
		return nil, apperr.InvalidInput("Invalid continuation key", err.Error())
	}
	return key, nil
}

func parseOptionalInt(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperr.InvalidInput("Invalid price filter", err.Error())
	}
	return &value, nil
}
