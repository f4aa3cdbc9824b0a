package http

import (
	"net/http"

	"closetshare-backend/internal/domain"
	"closetshare-backend/internal/service"

	"github.com/gorilla/mux"
)

type OutfitHandler struct {
	outfitSvc service.OutfitService
}

func NewOutfitHandler(outfitSvc service.OutfitService) *OutfitHandler {
	return &OutfitHandler{outfitSvc: outfitSvc}
}

type createOutfitBody struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	ImageURLs       []string `json:"image_urls"`
	DailyPriceCents int32    `json:"daily_price_cents"`
}

// Create handles POST /outfits
func (h *OutfitHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	var body createOutfitBody
	if err := decodeJSONBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outfit := &domain.Outfit{
		Title:           body.Title,
		Description:     body.Description,
		ImageURLs:       body.ImageURLs,
		DailyPriceCents: body.DailyPriceCents,
	}
	if err := h.outfitSvc.AddOutfit(r.Context(), userID, outfit); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, outfit)
}

// Get handles GET /outfits/{id}
func (h *OutfitHandler) Get(w http.ResponseWriter, r *http.Request) {
	outfit, err := h.outfitSvc.GetOutfit(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outfit)
}

// List handles GET /outfits
func (h *OutfitHandler) List(w http.ResponseWriter, r *http.Request) {
	outfits, err := h.outfitSvc.ListOutfits(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if outfits == nil {
		outfits = []domain.Outfit{}
	}
	writeJSON(w, http.StatusOK, outfits)
}

// ListMine handles GET /outfits/mine
func (h *OutfitHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	outfits, err := h.outfitSvc.ListMyOutfits(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if outfits == nil {
		outfits = []domain.Outfit{}
	}
	writeJSON(w, http.StatusOK, outfits)
}
