package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes wires every handler onto the router. The search route is
// registered before the listing-by-id route so "search" is not captured as
// a path parameter.
func RegisterRoutes(router *mux.Router, listings *ListingHandler, orders *OrderHandler, users *UserHandler) {
	router.HandleFunc("/listings", listings.Create).Methods(http.MethodPost)
	router.HandleFunc("/listings", listings.List).Methods(http.MethodGet)
	router.HandleFunc("/listings/search", listings.Search).Methods(http.MethodGet)
	router.HandleFunc("/listings/{listingId}", listings.Get).Methods(http.MethodGet)
	router.HandleFunc("/listings/{listingId}", listings.Delete).Methods(http.MethodDelete)

	router.HandleFunc("/orders", orders.Create).Methods(http.MethodPost)
	router.HandleFunc("/orders", orders.List).Methods(http.MethodGet)
	router.HandleFunc("/orders/{orderId}", orders.Get).Methods(http.MethodGet)
	router.HandleFunc("/orders/{orderId}", orders.Update).Methods(http.MethodPut)

	router.HandleFunc("/users", users.Create).Methods(http.MethodPost)
	router.HandleFunc("/users/{userId}", users.Get).Methods(http.MethodGet)
	router.HandleFunc("/users/{userId}", users.Update).Methods(http.MethodPut)
	router.HandleFunc("/users/{userId}", users.Deactivate).Methods(http.MethodDelete)

	router.HandleFunc("/login", users.Login).Methods(http.MethodPost)
	router.HandleFunc("/signup-hook", users.SignUpHook).Methods(http.MethodPost)
}
