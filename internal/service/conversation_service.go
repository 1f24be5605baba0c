package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/skillswap/backend/internal/domain"
	"github.com/skillswap/backend/internal/repository"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotConvParticipant   = errors.New("you are not a participant of this conversation")
	ErrEmptyMessage         = errors.New("message body is empty")
	ErrConversationLocked   = errors.New("conversation is not available for this swap")
)

// Notifier broadcasts real-time events to connected clients.
type Notifier interface {
	NotifyNewMessage(msg *domain.Message)
}

type ConversationService struct {
	convRepo    repository.ConversationRepository
	messageRepo repository.MessageRepository
	swapRepo    repository.SwapRepository
	notifier    Notifier
}

func NewConversationService(
	convRepo repository.ConversationRepository,
	messageRepo repository.MessageRepository,
	swapRepo repository.SwapRepository,
) *ConversationService {
	return &ConversationService{
		convRepo:    convRepo,
		messageRepo: messageRepo,
		swapRepo:    swapRepo,
	}
}

func (s *ConversationService) SetNotifier(n Notifier) {
	s.notifier = n
}

// List returns the caller's inbox.
func (s *ConversationService) List(ctx context.Context, userID uuid.UUID) ([]domain.Conversation, error) {
	convs, err := s.convRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if convs == nil {
		convs = []domain.Conversation{}
	}
	return convs, nil
}

// ForSwap returns the conversation belonging to a swap, creating it if the
// accept committed but the conversation insert never did. Accept and
// conversation creation are two separate writes, so a crash between them is
// healed here, on read, by re-running the idempotent upsert.
func (s *ConversationService) ForSwap(ctx context.Context, userID, swapID uuid.UUID) (*domain.Conversation, error) {
	swap, err := s.swapRepo.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}
	if swap == nil {
		return nil, ErrSwapNotFound
	}
	if !swap.IsParticipant(userID) {
		return nil, ErrNotConvParticipant
	}

	switch swap.Status {
	case domain.SwapAccepted, domain.SwapCompleted:
	default:
		return nil, ErrConversationLocked
	}

	conv, err := s.convRepo.GetBySwapID(ctx, swap.ID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		conv, err = s.convRepo.Upsert(ctx, swap.ID)
		if err != nil {
			return nil, fmt.Errorf("ensuring conversation: %w", err)
		}
	}
	return conv, nil
}

// CanAccess reports whether the user participates in the conversation's
// swap. The realtime transport uses it to gate subscriptions, so the push
// path enforces the same read rule as the REST path.
func (s *ConversationService) CanAccess(ctx context.Context, userID, conversationID uuid.UUID) (bool, error) {
	_, err := s.checkParticipant(ctx, userID, conversationID)
	if err != nil {
		if errors.Is(err, ErrConversationNotFound) || errors.Is(err, ErrNotConvParticipant) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Messages returns the thread in chronological order. Only swap
// participants may read it.
func (s *ConversationService) Messages(ctx context.Context, userID, conversationID uuid.UUID, limit int) ([]domain.Message, error) {
	if _, err := s.checkParticipant(ctx, userID, conversationID); err != nil {
		return nil, err
	}

	if limit <= 0 || limit > 500 {
		limit = 200
	}

	msgs, err := s.messageRepo.ListByConversation(ctx, conversationID, limit)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}
	return msgs, nil
}

// Send appends a message to the thread. Messages are immutable once
// created; there is no edit or delete.
func (s *ConversationService) Send(ctx context.Context, userID, conversationID uuid.UUID, body string) (*domain.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyMessage
	}

	if _, err := s.checkParticipant(ctx, userID, conversationID); err != nil {
		return nil, err
	}

	msg := &domain.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       userID,
		Body:           body,
		CreatedAt:      time.Now(),
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("creating message: %w", err)
	}

	full, err := s.messageRepo.GetByID(ctx, msg.ID)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyNewMessage(full)
	}

	return full, nil
}

func (s *ConversationService) checkParticipant(ctx context.Context, userID, conversationID uuid.UUID) (*domain.Conversation, error) {
	conv, err := s.convRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, ErrConversationNotFound
	}

	swap, err := s.swapRepo.GetByID(ctx, conv.SwapID)
	if err != nil {
		return nil, err
	}
	if swap == nil || !swap.IsParticipant(userID) {
		return nil, ErrNotConvParticipant
	}

	return conv, nil
}
