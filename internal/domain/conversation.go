package domain

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is the message thread unlocked once a swap is accepted.
// There is at most one per swap (unique swap_id).
type Conversation struct {
	ID        uuid.UUID `json:"id"`
	SwapID    uuid.UUID `json:"swap_id"`
	CreatedAt time.Time `json:"created_at"`
	// Joined fields for the inbox view
	SwapStatus     SwapStatus `json:"swap_status,omitempty"`
	OfferSkill     string     `json:"offer_skill,omitempty"`
	WantSkill      string     `json:"want_skill,omitempty"`
	OtherUserID    uuid.UUID  `json:"other_user_id,omitempty"`
	OtherUserName  string     `json:"other_user_name,omitempty"`
	LastMessage    *string    `json:"last_message,omitempty"`
	LastMessageAt  *time.Time `json:"last_message_at,omitempty"`
}

type Message struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
	// Joined fields
	SenderName string `json:"sender_name,omitempty"`
}
