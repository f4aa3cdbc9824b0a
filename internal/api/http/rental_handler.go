package http

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"closetshare-backend/internal/domain"
	"closetshare-backend/internal/service"
	"closetshare-backend/internal/storage"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// RentalHandler exposes the rental lifecycle over HTTP.
type RentalHandler struct {
	rentalSvc   service.RentalService
	querySvc    service.RentalQueryService
	blobStore   storage.BlobStore
	maxFileSize int64 // bytes
}

func NewRentalHandler(rentalSvc service.RentalService, querySvc service.RentalQueryService, blobStore storage.BlobStore, maxFileSizeMB int64) *RentalHandler {
	if maxFileSizeMB <= 0 {
		maxFileSizeMB = 10
	}
	return &RentalHandler{
		rentalSvc:   rentalSvc,
		querySvc:    querySvc,
		blobStore:   blobStore,
		maxFileSize: maxFileSizeMB << 20,
	}
}

type requestRentalBody struct {
	OutfitID  string `json:"outfit_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type extensionBody struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type receiptResponse struct {
	Status string `json:"status"`
	Data   struct {
		Rental *domain.Rental `json:"rental"`
	} `json:"data"`
}

// RequestRental handles POST /rentals/request
func (h *RentalHandler) RequestRental(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	var body requestRentalBody
	if err := decodeJSONBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.OutfitID == "" || body.StartDate == "" || body.EndDate == "" {
		writeError(w, http.StatusBadRequest, "outfit_id, start_date and end_date are required")
		return
	}

	rental, err := h.rentalSvc.RequestRental(r.Context(), userID, body.OutfitID, body.StartDate, body.EndDate)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

// MyRentals handles GET /rentals/my-rentals
func (h *RentalHandler) MyRentals(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	rentals, err := h.querySvc.MyRentals(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if rentals == nil {
		rentals = []domain.Rental{}
	}
	writeJSON(w, http.StatusOK, rentals)
}

// History handles GET /rentals/history
func (h *RentalHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	entries, err := h.querySvc.History(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if entries == nil {
		entries = []domain.RentalHistoryEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// Accept handles PUT /rentals/{id}/accept
func (h *RentalHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.rentalSvc.AcceptRental)
}

// Decline handles PUT /rentals/{id}/decline
func (h *RentalHandler) Decline(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.rentalSvc.DeclineRental)
}

// Cancel handles DELETE /rentals/{id}/cancel
func (h *RentalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.rentalSvc.CancelRental)
}

// DeclineExtension handles PUT /rentals/{id}/decline-extension
func (h *RentalHandler) DeclineExtension(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.rentalSvc.DeclineExtension)
}

// AcceptExtension handles PUT /rentals/{id}/accept-extension
func (h *RentalHandler) AcceptExtension(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	rental, err := h.rentalSvc.AcceptExtension(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "extension accepted",
		"data":    rental,
	})
}

// Delete handles DELETE /rentals/{id}
func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	if err := h.rentalSvc.DeleteRental(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "rental deleted"})
}

// RequestExtension handles POST /rentals/{id}/extension
func (h *RentalHandler) RequestExtension(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	var body extensionBody
	if err := decodeJSONBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.StartDate == "" || body.EndDate == "" {
		writeError(w, http.StatusBadRequest, "start_date and end_date are required")
		return
	}

	rental, err := h.rentalSvc.RequestExtension(r.Context(), userID, mux.Vars(r)["id"], body.StartDate, body.EndDate)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

// UploadReceipt handles POST /rentals/{id}/receipt (multipart field "receipt")
func (h *RentalHandler) UploadReceipt(w http.ResponseWriter, r *http.Request) {
	h.uploadReceipt(w, r, h.rentalSvc.UploadReceipt)
}

// UploadExtensionReceipt handles POST /rentals/{id}/extension-receipt
func (h *RentalHandler) UploadExtensionReceipt(w http.ResponseWriter, r *http.Request) {
	h.uploadReceipt(w, r, h.rentalSvc.UploadExtensionReceipt)
}

// transition runs a body-less lifecycle action identified by the path and
// writes the updated rental back.
func (h *RentalHandler) transition(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, userID, rentalID string) (*domain.Rental, error)) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	rental, err := action(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) uploadReceipt(w http.ResponseWriter, r *http.Request, attach func(ctx context.Context, userID, rentalID, receiptURL string) (*domain.Rental, error)) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	rentalID := mux.Vars(r)["id"]

	file, header, err := h.receiptFile(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer file.Close()

	key := fmt.Sprintf("receipts/%s/%s%s", rentalID, uuid.New().String(), filepath.Ext(header.Filename))
	receiptURL, err := h.blobStore.Save(r.Context(), key, header.Header.Get("Content-Type"), file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store receipt")
		return
	}

	rental, err := attach(r.Context(), userID, rentalID, receiptURL)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := receiptResponse{Status: "success"}
	resp.Data.Rental = rental
	writeJSON(w, http.StatusOK, resp)
}

func decodeJSONBody(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

func (h *RentalHandler) receiptFile(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, h.maxFileSize)
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		return nil, nil, fmt.Errorf("a receipt file is required")
	}
	file, header, err := r.FormFile("receipt")
	if err != nil {
		return nil, nil, fmt.Errorf("a receipt file is required")
	}
	return file, header, nil
}
