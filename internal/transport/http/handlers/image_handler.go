package handlers

import (
	"net/http"

	"github.com/skillswap/backend/internal/service"
)

type ImageHandler struct {
	imageService *service.ImageService
}

func NewImageHandler(imageService *service.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// Lookup redirects to an image for the skill label in ?q=. The lookup never
// errors; unknown labels land on a deterministic placeholder.
func (h *ImageHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	seed := r.URL.Query().Get("seed")

	target := h.imageService.Lookup(r.Context(), q, seed)
	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}
