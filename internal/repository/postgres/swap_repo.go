package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillswap/backend/internal/domain"
)

type SwapRepo struct {
	pool *pgxpool.Pool
}

func NewSwapRepo(pool *pgxpool.Pool) *SwapRepo {
	return &SwapRepo{pool: pool}
}

const swapColumns = `s.id, s.requester_id, s.recipient_id, s.kind, s.offer_skill, s.want_skill,
	s.note, s.status, s.created_at, s.updated_at,
	req.name, COALESCE(rec.name, '')`

const swapJoins = `
	FROM swaps s
	JOIN profiles req ON s.requester_id = req.id
	LEFT JOIN profiles rec ON s.recipient_id = rec.id`

func (r *SwapRepo) Create(ctx context.Context, swap *domain.Swap) error {
	query := `
		INSERT INTO swaps (id, requester_id, recipient_id, kind, offer_skill, want_skill, note, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		swap.ID, swap.RequesterID, swap.RecipientID, swap.Kind,
		swap.OfferSkill, swap.WantSkill, swap.Note, swap.Status,
		swap.CreatedAt, swap.UpdatedAt,
	)
	return err
}

func (r *SwapRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Swap, error) {
	query := `SELECT ` + swapColumns + swapJoins + ` WHERE s.id = $1`

	var s domain.Swap
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.RequesterID, &s.RecipientID, &s.Kind, &s.OfferSkill, &s.WantSkill,
		&s.Note, &s.Status, &s.CreatedAt, &s.UpdatedAt,
		&s.RequesterName, &s.RecipientName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &s, err
}

func (r *SwapRepo) ListOpenPublic(ctx context.Context) ([]domain.Swap, error) {
	query := `SELECT ` + swapColumns + swapJoins + `
		WHERE s.kind = 'public' AND s.status = 'open'
		ORDER BY s.created_at DESC`
	return r.listSwaps(ctx, query)
}

func (r *SwapRepo) ListIncoming(ctx context.Context, userID uuid.UUID) ([]domain.Swap, error) {
	query := `SELECT ` + swapColumns + swapJoins + `
		WHERE s.kind = 'direct' AND s.recipient_id = $1 AND s.status = 'pending'
		ORDER BY s.created_at DESC`
	return r.listSwaps(ctx, query, userID)
}

func (r *SwapRepo) ListOutgoing(ctx context.Context, userID uuid.UUID) ([]domain.Swap, error) {
	query := `SELECT ` + swapColumns + swapJoins + `
		WHERE s.requester_id = $1
		ORDER BY s.created_at DESC`
	return r.listSwaps(ctx, query, userID)
}

// UpdateStatusAsRecipient moves a pending swap to the given status, but only
// when userID is its recipient. Zero rows affected means the caller lost the
// race or was never authorized; both read the same from out here.
func (r *SwapRepo) UpdateStatusAsRecipient(ctx context.Context, swapID, userID uuid.UUID, to domain.SwapStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE swaps
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND recipient_id = $2 AND status = 'pending'`,
		swapID, userID, to,
	)
	return tag.RowsAffected() > 0, err
}

func (r *SwapRepo) Cancel(ctx context.Context, swapID, userID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE swaps
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND requester_id = $2 AND status IN ('open', 'pending')`,
		swapID, userID,
	)
	return tag.RowsAffected() > 0, err
}

func (r *SwapRepo) Claim(ctx context.Context, swapID, userID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE swaps
		SET kind = 'direct', recipient_id = $2, status = 'pending', updated_at = NOW()
		WHERE id = $1 AND kind = 'public' AND status = 'open'
			AND recipient_id IS NULL AND requester_id <> $2`,
		swapID, userID,
	)
	return tag.RowsAffected() > 0, err
}

func (r *SwapRepo) Complete(ctx context.Context, swapID, userID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE swaps
		SET status = 'completed', updated_at = NOW()
		WHERE id = $1 AND (requester_id = $2 OR recipient_id = $2)
			AND status IN ('pending', 'accepted')`,
		swapID, userID,
	)
	return tag.RowsAffected() > 0, err
}

func (r *SwapRepo) listSwaps(ctx context.Context, query string, args ...any) ([]domain.Swap, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var swaps []domain.Swap
	for rows.Next() {
		var s domain.Swap
		if err := rows.Scan(
			&s.ID, &s.RequesterID, &s.RecipientID, &s.Kind, &s.OfferSkill, &s.WantSkill,
			&s.Note, &s.Status, &s.CreatedAt, &s.UpdatedAt,
			&s.RequesterName, &s.RecipientName,
		); err != nil {
			return nil, err
		}
		swaps = append(swaps, s)
	}
	return swaps, rows.Err()
}
