package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/skillswap/backend/internal/domain"
	"github.com/skillswap/backend/internal/repository"
)

var (
	ErrSwapNotFound      = errors.New("swap not found")
	ErrSkillsRequired    = errors.New("offer and want skills are required")
	ErrRecipientRequired = errors.New("direct swaps require a recipient")
	ErrSelfSwap          = errors.New("cannot propose a swap to yourself")
	ErrRecipientUnknown  = errors.New("recipient does not exist")
	// ErrSwapConflict means a guarded update matched zero rows: the swap was
	// transitioned by someone else first. Callers should re-fetch state.
	ErrSwapConflict = errors.New("swap was already transitioned")
)

type SwapService struct {
	swapRepo    repository.SwapRepository
	convRepo    repository.ConversationRepository
	feedRepo    repository.FeedRepository
	profileRepo repository.ProfileRepository
}

func NewSwapService(
	swapRepo repository.SwapRepository,
	convRepo repository.ConversationRepository,
	feedRepo repository.FeedRepository,
	profileRepo repository.ProfileRepository,
) *SwapService {
	return &SwapService{
		swapRepo:    swapRepo,
		convRepo:    convRepo,
		feedRepo:    feedRepo,
		profileRepo: profileRepo,
	}
}

type CreateSwapInput struct {
	Kind        domain.SwapKind `json:"kind"`
	RecipientID *uuid.UUID      `json:"recipient_id,omitempty"`
	OfferSkill  string          `json:"offer_skill"`
	WantSkill   string          `json:"want_skill"`
	Note        string          `json:"note"`
}

// Create makes a new swap. Public swaps start open with no recipient;
// direct swaps start pending and must name a recipient other than the
// requester.
func (s *SwapService) Create(ctx context.Context, requesterID uuid.UUID, input CreateSwapInput) (*domain.Swap, error) {
	offer := strings.TrimSpace(input.OfferSkill)
	want := strings.TrimSpace(input.WantSkill)
	if offer == "" || want == "" {
		return nil, ErrSkillsRequired
	}

	swap := &domain.Swap{
		ID:          uuid.New(),
		RequesterID: requesterID,
		Kind:        input.Kind,
		OfferSkill:  offer,
		WantSkill:   want,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if note := strings.TrimSpace(input.Note); note != "" {
		swap.Note = &note
	}

	switch input.Kind {
	case domain.KindDirect:
		if input.RecipientID == nil || *input.RecipientID == uuid.Nil {
			return nil, ErrRecipientRequired
		}
		if *input.RecipientID == requesterID {
			return nil, ErrSelfSwap
		}
		recipient, err := s.profileRepo.GetByID(ctx, *input.RecipientID)
		if err != nil {
			return nil, err
		}
		if recipient == nil {
			return nil, ErrRecipientUnknown
		}
		swap.RecipientID = input.RecipientID
		swap.Status = domain.SwapPending

	case domain.KindPublic:
		swap.RecipientID = nil
		swap.Status = domain.SwapOpen

	default:
		return nil, fmt.Errorf("unknown swap kind %q", input.Kind)
	}

	if err := s.swapRepo.Create(ctx, swap); err != nil {
		return nil, fmt.Errorf("creating swap: %w", err)
	}

	return swap, nil
}

// Discover lists the open public swaps visible to everyone.
func (s *SwapService) Discover(ctx context.Context) ([]domain.Swap, error) {
	return s.list(s.swapRepo.ListOpenPublic(ctx))
}

// Incoming lists direct pending swaps addressed to the user.
func (s *SwapService) Incoming(ctx context.Context, userID uuid.UUID) ([]domain.Swap, error) {
	return s.list(s.swapRepo.ListIncoming(ctx, userID))
}

// Outgoing lists everything the user created, any kind, any status,
// newest first.
func (s *SwapService) Outgoing(ctx context.Context, userID uuid.UUID) ([]domain.Swap, error) {
	return s.list(s.swapRepo.ListOutgoing(ctx, userID))
}

// Accept moves a pending direct swap to accepted and makes sure its
// conversation exists. The conversation upsert is keyed on the swap id, so
// racing or repeated accepts converge on a single conversation.
func (s *SwapService) Accept(ctx context.Context, userID, swapID uuid.UUID) (*domain.Conversation, error) {
	swap, err := s.guard(ctx, swapID, domain.ActionAccept, userID)
	if err != nil {
		return nil, err
	}

	applied, err := s.swapRepo.UpdateStatusAsRecipient(ctx, swap.ID, userID, domain.ActionAccept.Target())
	if err != nil {
		return nil, fmt.Errorf("accepting swap: %w", err)
	}
	if !applied {
		return nil, ErrSwapConflict
	}

	conv, err := s.convRepo.Upsert(ctx, swap.ID)
	if err != nil {
		// The accept already committed; the conversation will be re-ensured
		// lazily on the next read. Surface the error anyway.
		return nil, fmt.Errorf("creating conversation: %w", err)
	}

	return conv, nil
}

func (s *SwapService) Decline(ctx context.Context, userID, swapID uuid.UUID) error {
	swap, err := s.guard(ctx, swapID, domain.ActionDecline, userID)
	if err != nil {
		return err
	}

	applied, err := s.swapRepo.UpdateStatusAsRecipient(ctx, swap.ID, userID, domain.ActionDecline.Target())
	if err != nil {
		return fmt.Errorf("declining swap: %w", err)
	}
	if !applied {
		return ErrSwapConflict
	}
	return nil
}

// Cancel is the only supported "delete": swaps are soft-cancelled so
// history and references stay valid.
func (s *SwapService) Cancel(ctx context.Context, userID, swapID uuid.UUID) error {
	swap, err := s.guard(ctx, swapID, domain.ActionCancel, userID)
	if err != nil {
		return err
	}

	applied, err := s.swapRepo.Cancel(ctx, swap.ID, userID)
	if err != nil {
		return fmt.Errorf("cancelling swap: %w", err)
	}
	if !applied {
		return ErrSwapConflict
	}
	return nil
}

// Claim converts an open public swap into a direct pending request with the
// caller as recipient. Under concurrent claimants the row filter lets exactly
// one through; the loser gets ErrSwapConflict and should re-fetch.
func (s *SwapService) Claim(ctx context.Context, userID, swapID uuid.UUID) (*domain.Swap, error) {
	swap, err := s.guard(ctx, swapID, domain.ActionClaim, userID)
	if err != nil {
		return nil, err
	}

	applied, err := s.swapRepo.Claim(ctx, swap.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("claiming swap: %w", err)
	}
	if !applied {
		return nil, ErrSwapConflict
	}

	claimed, err := s.swapRepo.GetByID(ctx, swap.ID)
	if err != nil {
		return nil, err
	}
	return claimed, nil
}

// Complete finishes a swap and posts it to the public activity feed. The
// guarded update fires at most once per swap, so the feed never gets a
// duplicate entry for the same completion.
func (s *SwapService) Complete(ctx context.Context, userID, swapID uuid.UUID) error {
	swap, err := s.guard(ctx, swapID, domain.ActionComplete, userID)
	if err != nil {
		return err
	}

	applied, err := s.swapRepo.Complete(ctx, swap.ID, userID)
	if err != nil {
		return fmt.Errorf("completing swap: %w", err)
	}
	if !applied {
		return ErrSwapConflict
	}

	if err := s.feedRepo.Create(ctx, domain.NewFeedEntry(swap)); err != nil {
		// The completion committed; a missing board entry is not worth
		// failing the request over.
		log.Printf("feed entry for swap %s: %v", swap.ID, err)
	}

	return nil
}

// guard loads the swap and runs the in-memory transition check. The check
// gives precise rejection reasons up front; the conditional update repeats
// the same guard at the row level for race safety.
func (s *SwapService) guard(ctx context.Context, swapID uuid.UUID, action domain.SwapAction, actor uuid.UUID) (*domain.Swap, error) {
	swap, err := s.swapRepo.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}
	if swap == nil {
		return nil, ErrSwapNotFound
	}
	if err := swap.Transition(action, actor); err != nil {
		return nil, err
	}
	return swap, nil
}

func (s *SwapService) list(swaps []domain.Swap, err error) ([]domain.Swap, error) {
	if err != nil {
		return nil, err
	}
	if swaps == nil {
		swaps = []domain.Swap{}
	}
	return swaps, nil
}
