package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillswap/backend/internal/domain"
)

type ConversationRepo struct {
	pool *pgxpool.Pool
}

func NewConversationRepo(pool *pgxpool.Pool) *ConversationRepo {
	return &ConversationRepo{pool: pool}
}

// Upsert creates the conversation for a swap if it does not exist yet.
// The unique index on swap_id makes concurrent accepts converge on a single
// row; whoever loses the insert simply reads the winner's row back.
func (r *ConversationRepo) Upsert(ctx context.Context, swapID uuid.UUID) (*domain.Conversation, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO conversations (id, swap_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (swap_id) DO NOTHING`,
		uuid.New(), swapID,
	)
	if err != nil {
		return nil, err
	}
	return r.GetBySwapID(ctx, swapID)
}

func (r *ConversationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Conversation, error) {
	return r.scanConversation(ctx, `
		SELECT id, swap_id, created_at FROM conversations WHERE id = $1`, id)
}

func (r *ConversationRepo) GetBySwapID(ctx context.Context, swapID uuid.UUID) (*domain.Conversation, error) {
	return r.scanConversation(ctx, `
		SELECT id, swap_id, created_at FROM conversations WHERE swap_id = $1`, swapID)
}

// ListByUser returns the inbox: every conversation whose swap involves the
// user, with swap summary, counterpart name and last message preview.
func (r *ConversationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Conversation, error) {
	query := `
		SELECT c.id, c.swap_id, c.created_at,
			s.status, s.offer_skill, s.want_skill,
			CASE WHEN s.requester_id = $1 THEN s.recipient_id ELSE s.requester_id END AS other_user_id,
			CASE WHEN s.requester_id = $1 THEN rec.name ELSE req.name END AS other_user_name,
			m.body, m.created_at
		FROM conversations c
		JOIN swaps s ON c.swap_id = s.id
		JOIN profiles req ON s.requester_id = req.id
		LEFT JOIN profiles rec ON s.recipient_id = rec.id
		LEFT JOIN LATERAL (
			SELECT body, created_at FROM messages
			WHERE conversation_id = c.id
			ORDER BY created_at DESC
			LIMIT 1
		) m ON true
		WHERE s.requester_id = $1 OR s.recipient_id = $1
		ORDER BY COALESCE(m.created_at, c.created_at) DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var convs []domain.Conversation
	for rows.Next() {
		var c domain.Conversation
		var otherName *string
		if err := rows.Scan(
			&c.ID, &c.SwapID, &c.CreatedAt,
			&c.SwapStatus, &c.OfferSkill, &c.WantSkill,
			&c.OtherUserID, &otherName,
			&c.LastMessage, &c.LastMessageAt,
		); err != nil {
			return nil, err
		}
		if otherName != nil {
			c.OtherUserName = *otherName
		}
		convs = append(convs, c)
	}
	return convs, rows.Err()
}

func (r *ConversationRepo) scanConversation(ctx context.Context, query string, arg any) (*domain.Conversation, error) {
	var c domain.Conversation
	err := r.pool.QueryRow(ctx, query, arg).Scan(&c.ID, &c.SwapID, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &c, err
}
