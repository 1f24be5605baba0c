package handlers

import (
	"log"
	"net/http"

	"github.com/skillswap/backend/internal/service"
)

type FeedHandler struct {
	feedService *service.FeedService
}

func NewFeedHandler(feedService *service.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

func (h *FeedHandler) Recent(w http.ResponseWriter, r *http.Request) {
	entries, err := h.feedService.Recent(r.Context())
	if err != nil {
		log.Printf("ERROR feed: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
