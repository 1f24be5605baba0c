package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type SwapStatus string

const (
	SwapOpen      SwapStatus = "open"
	SwapPending   SwapStatus = "pending"
	SwapAccepted  SwapStatus = "accepted"
	SwapDeclined  SwapStatus = "declined"
	SwapCancelled SwapStatus = "cancelled"
	SwapCompleted SwapStatus = "completed"
)

type SwapKind string

const (
	KindPublic SwapKind = "public"
	KindDirect SwapKind = "direct"
)

// SwapAction is a lifecycle transition requested by an actor.
type SwapAction string

const (
	ActionAccept   SwapAction = "accept"
	ActionDecline  SwapAction = "decline"
	ActionCancel   SwapAction = "cancel"
	ActionClaim    SwapAction = "claim"
	ActionComplete SwapAction = "complete"
)

// Transition rejection reasons. The repository layer re-enforces the same
// guards as conditional-update filters, so a racing actor that passes the
// in-memory check still cannot apply a stale transition.
var (
	ErrNotRecipient   = errors.New("only the recipient may perform this action")
	ErrNotRequester   = errors.New("only the requester may perform this action")
	ErrNotParticipant = errors.New("only a participant may perform this action")
	ErrOwnSwap        = errors.New("cannot claim your own swap")
	ErrInvalidState   = errors.New("swap is not in a state that allows this action")
)

type Swap struct {
	ID          uuid.UUID  `json:"id"`
	RequesterID uuid.UUID  `json:"requester_id"`
	RecipientID *uuid.UUID `json:"recipient_id,omitempty"`
	Kind        SwapKind   `json:"kind"`
	OfferSkill  string     `json:"offer_skill"`
	WantSkill   string     `json:"want_skill"`
	Note        *string    `json:"note,omitempty"`
	Status      SwapStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	// Joined fields
	RequesterName string `json:"requester_name,omitempty"`
	RecipientName string `json:"recipient_name,omitempty"`
}

// IsParticipant reports whether uid is the requester or the recipient.
func (s *Swap) IsParticipant(uid uuid.UUID) bool {
	if s.RequesterID == uid {
		return true
	}
	return s.RecipientID != nil && *s.RecipientID == uid
}

// Transition checks whether actor may apply action to the swap in its
// current state. It returns nil when the transition is allowed, or the
// reason it is rejected. The swap itself is not mutated; the actual state
// change happens as a guarded database update.
func (s *Swap) Transition(action SwapAction, actor uuid.UUID) error {
	switch action {
	case ActionAccept, ActionDecline:
		if s.RecipientID == nil || *s.RecipientID != actor {
			return ErrNotRecipient
		}
		if s.Status != SwapPending {
			return ErrInvalidState
		}
		return nil

	case ActionCancel:
		if s.RequesterID != actor {
			return ErrNotRequester
		}
		if s.Status != SwapOpen && s.Status != SwapPending {
			return ErrInvalidState
		}
		return nil

	case ActionClaim:
		if s.RequesterID == actor {
			return ErrOwnSwap
		}
		if s.Kind != KindPublic || s.Status != SwapOpen || s.RecipientID != nil {
			return ErrInvalidState
		}
		return nil

	case ActionComplete:
		if !s.IsParticipant(actor) {
			return ErrNotParticipant
		}
		if s.Status != SwapPending && s.Status != SwapAccepted {
			return ErrInvalidState
		}
		return nil

	default:
		return ErrInvalidState
	}
}

// Target returns the status an action transitions to.
func (a SwapAction) Target() SwapStatus {
	switch a {
	case ActionAccept:
		return SwapAccepted
	case ActionDecline:
		return SwapDeclined
	case ActionCancel:
		return SwapCancelled
	case ActionClaim:
		return SwapPending
	case ActionComplete:
		return SwapCompleted
	}
	return ""
}
