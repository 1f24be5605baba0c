package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/skillswap/backend/internal/service"
	"github.com/skillswap/backend/internal/transport/http/middleware"
)

type ConversationHandler struct {
	convService *service.ConversationService
}

func NewConversationHandler(convService *service.ConversationService) *ConversationHandler {
	return &ConversationHandler{convService: convService}
}

func (h *ConversationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	convs, err := h.convService.List(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR list conversations: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, convs)
}

func (h *ConversationHandler) ForSwap(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	swapID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid swap ID")
		return
	}

	conv, err := h.convService.ForSwap(r.Context(), userID, swapID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSwapNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Swap not found")
		case errors.Is(err, service.ErrNotConvParticipant):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "You are not part of this swap")
		case errors.Is(err, service.ErrConversationLocked):
			writeError(w, http.StatusConflict, "NOT_AVAILABLE", "Chat unlocks once the swap is accepted")
		default:
			log.Printf("ERROR conversation for swap: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, conv)
}

func (h *ConversationHandler) Messages(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	convID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid conversation ID")
		return
	}

	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		limit, _ = strconv.Atoi(l)
	}

	msgs, err := h.convService.Messages(r.Context(), userID, convID, limit)
	if err != nil {
		h.writeConvError(w, "list messages", err)
		return
	}

	writeJSON(w, http.StatusOK, msgs)
}

func (h *ConversationHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	convID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid conversation ID")
		return
	}

	var input struct {
		Body string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	msg, err := h.convService.Send(r.Context(), userID, convID, input.Body)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			writeError(w, http.StatusBadRequest, "EMPTY_MESSAGE", "Message body is required")
			return
		}
		h.writeConvError(w, "send message", err)
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}

func (h *ConversationHandler) writeConvError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrConversationNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Conversation not found")
	case errors.Is(err, service.ErrNotConvParticipant):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "You are not part of this conversation")
	default:
		log.Printf("ERROR %s: %v", op, err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}
