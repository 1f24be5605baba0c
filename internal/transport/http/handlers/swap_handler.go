package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/skillswap/backend/internal/domain"
	"github.com/skillswap/backend/internal/service"
	"github.com/skillswap/backend/internal/transport/http/middleware"
)

type SwapHandler struct {
	swapService *service.SwapService
}

func NewSwapHandler(swapService *service.SwapService) *SwapHandler {
	return &SwapHandler{swapService: swapService}
}

func (h *SwapHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input service.CreateSwapInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	swap, err := h.swapService.Create(r.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSkillsRequired):
			writeError(w, http.StatusBadRequest, "SKILLS_REQUIRED", "Offer and want skills are required")
		case errors.Is(err, service.ErrRecipientRequired):
			writeError(w, http.StatusBadRequest, "RECIPIENT_REQUIRED", "Direct swaps require a recipient")
		case errors.Is(err, service.ErrSelfSwap):
			writeError(w, http.StatusBadRequest, "SELF_SWAP", "Cannot propose a swap to yourself")
		case errors.Is(err, service.ErrRecipientUnknown):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Recipient does not exist")
		default:
			log.Printf("ERROR create swap: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, swap)
}

func (h *SwapHandler) Discover(w http.ResponseWriter, r *http.Request) {
	swaps, err := h.swapService.Discover(r.Context())
	if err != nil {
		log.Printf("ERROR discover swaps: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}
	writeJSON(w, http.StatusOK, swaps)
}

func (h *SwapHandler) Incoming(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	swaps, err := h.swapService.Incoming(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR incoming swaps: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}
	writeJSON(w, http.StatusOK, swaps)
}

func (h *SwapHandler) Outgoing(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	swaps, err := h.swapService.Outgoing(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR outgoing swaps: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}
	writeJSON(w, http.StatusOK, swaps)
}

func (h *SwapHandler) Accept(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	swapID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid swap ID")
		return
	}

	conv, err := h.swapService.Accept(r.Context(), userID, swapID)
	if err != nil {
		h.writeLifecycleError(w, "accept", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":       domain.SwapAccepted,
		"conversation": conv,
	})
}

func (h *SwapHandler) Decline(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	swapID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid swap ID")
		return
	}

	if err := h.swapService.Decline(r.Context(), userID, swapID); err != nil {
		h.writeLifecycleError(w, "decline", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *SwapHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	swapID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid swap ID")
		return
	}

	if err := h.swapService.Cancel(r.Context(), userID, swapID); err != nil {
		h.writeLifecycleError(w, "cancel", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *SwapHandler) Claim(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	swapID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid swap ID")
		return
	}

	swap, err := h.swapService.Claim(r.Context(), userID, swapID)
	if err != nil {
		h.writeLifecycleError(w, "claim", err)
		return
	}

	writeJSON(w, http.StatusOK, swap)
}

func (h *SwapHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	swapID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid swap ID")
		return
	}

	if err := h.swapService.Complete(r.Context(), userID, swapID); err != nil {
		h.writeLifecycleError(w, "complete", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *SwapHandler) writeLifecycleError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrSwapNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Swap not found")
	case errors.Is(err, domain.ErrNotRecipient):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "Only the recipient can do this")
	case errors.Is(err, domain.ErrNotRequester):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "Only the requester can do this")
	case errors.Is(err, domain.ErrNotParticipant):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "Only a participant can do this")
	case errors.Is(err, domain.ErrOwnSwap):
		writeError(w, http.StatusBadRequest, "OWN_SWAP", "Cannot claim your own swap")
	case errors.Is(err, domain.ErrInvalidState):
		writeError(w, http.StatusConflict, "INVALID_STATE", "Swap is not in a state that allows this")
	case errors.Is(err, service.ErrSwapConflict):
		writeError(w, http.StatusConflict, "CONFLICT", "Swap was already transitioned, refresh and try again")
	default:
		log.Printf("ERROR %s swap: %v", op, err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}
