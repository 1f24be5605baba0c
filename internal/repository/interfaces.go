package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/skillswap/backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	List(ctx context.Context, exclude uuid.UUID) ([]domain.Profile, error)
}

// SwapRepository persists swaps. Every lifecycle mutation is a conditional
// update whose WHERE clause repeats the transition guard; the boolean result
// reports whether the update applied (matched a row). False means the swap
// was already transitioned by a racing actor, not an error.
type SwapRepository interface {
	Create(ctx context.Context, swap *domain.Swap) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Swap, error)
	ListOpenPublic(ctx context.Context) ([]domain.Swap, error)
	ListIncoming(ctx context.Context, userID uuid.UUID) ([]domain.Swap, error)
	ListOutgoing(ctx context.Context, userID uuid.UUID) ([]domain.Swap, error)
	// Accept and Decline require recipient=userID and status=pending.
	UpdateStatusAsRecipient(ctx context.Context, swapID, userID uuid.UUID, to domain.SwapStatus) (bool, error)
	// Cancel requires requester=userID and status in (open, pending).
	Cancel(ctx context.Context, swapID, userID uuid.UUID) (bool, error)
	// Claim converts an open public swap with no recipient into a direct
	// pending swap addressed to userID, refusing the requester's own swap.
	Claim(ctx context.Context, swapID, userID uuid.UUID) (bool, error)
	// Complete requires userID to be a participant and status in
	// (pending, accepted).
	Complete(ctx context.Context, swapID, userID uuid.UUID) (bool, error)
}

type ConversationRepository interface {
	// Upsert creates the conversation for a swap if none exists and returns
	// the canonical row either way (idempotent on swap_id).
	Upsert(ctx context.Context, swapID uuid.UUID) (*domain.Conversation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Conversation, error)
	GetBySwapID(ctx context.Context, swapID uuid.UUID) (*domain.Conversation, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Conversation, error)
}

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	ListByConversation(ctx context.Context, conversationID uuid.UUID, limit int) ([]domain.Message, error)
}

type FeedRepository interface {
	Create(ctx context.Context, entry *domain.FeedEntry) error
	ListRecent(ctx context.Context, limit int) ([]domain.FeedEntry, error)
}
