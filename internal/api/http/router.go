package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RouterDeps bundles the handlers and middleware the router wires together.
type RouterDeps struct {
	Auth    *AuthHandler
	Outfits *OutfitHandler
	Rentals *RentalHandler
	Files   *FileHandler
	AuthMW  *AuthMiddleware
}

// NewRouter assembles the full HTTP surface. Everything under /rentals and
// /outfits (except the public catalog reads) requires a bearer token.
func NewRouter(deps RouterDeps) *mux.Router {
	router := mux.NewRouter()

	// Public routes
	router.HandleFunc("/auth/signup", deps.Auth.Signup).Methods(http.MethodPost)
	router.HandleFunc("/auth/login", deps.Auth.Login).Methods(http.MethodPost)
	router.HandleFunc("/outfits", deps.Outfits.List).Methods(http.MethodGet)
	router.HandleFunc("/files/{key:.+}", deps.Files.Download).Methods(http.MethodGet)

	// Authenticated outfit routes
	outfits := router.PathPrefix("/outfits").Subrouter()
	outfits.Use(deps.AuthMW.Handler)
	outfits.HandleFunc("", deps.Outfits.Create).Methods(http.MethodPost)
	outfits.HandleFunc("/mine", deps.Outfits.ListMine).Methods(http.MethodGet)
	outfits.HandleFunc("/{id}", deps.Outfits.Get).Methods(http.MethodGet)

	// Rental lifecycle routes
	rentals := router.PathPrefix("/rentals").Subrouter()
	rentals.Use(deps.AuthMW.Handler)
	rentals.HandleFunc("/request", deps.Rentals.RequestRental).Methods(http.MethodPost)
	rentals.HandleFunc("/my-rentals", deps.Rentals.MyRentals).Methods(http.MethodGet)
	rentals.HandleFunc("/history", deps.Rentals.History).Methods(http.MethodGet)
	rentals.HandleFunc("/{id}/accept", deps.Rentals.Accept).Methods(http.MethodPut)
	rentals.HandleFunc("/{id}/decline", deps.Rentals.Decline).Methods(http.MethodPut)
	rentals.HandleFunc("/{id}/receipt", deps.Rentals.UploadReceipt).Methods(http.MethodPost)
	rentals.HandleFunc("/{id}/extension", deps.Rentals.RequestExtension).Methods(http.MethodPost)
	rentals.HandleFunc("/{id}/extension-receipt", deps.Rentals.UploadExtensionReceipt).Methods(http.MethodPost)
	rentals.HandleFunc("/{id}/accept-extension", deps.Rentals.AcceptExtension).Methods(http.MethodPut)
	rentals.HandleFunc("/{id}/decline-extension", deps.Rentals.DeclineExtension).Methods(http.MethodPut)
	rentals.HandleFunc("/{id}/cancel", deps.Rentals.Cancel).Methods(http.MethodDelete)
	rentals.HandleFunc("/{id}", deps.Rentals.Delete).Methods(http.MethodDelete)

	return router
}
