package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillswap/backend/internal/domain"
)

type FeedRepo struct {
	pool *pgxpool.Pool
}

func NewFeedRepo(pool *pgxpool.Pool) *FeedRepo {
	return &FeedRepo{pool: pool}
}

func (r *FeedRepo) Create(ctx context.Context, entry *domain.FeedEntry) error {
	query := `
		INSERT INTO activity_feed (id, swap_id, text, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query, entry.ID, entry.SwapID, entry.Text, entry.CreatedAt)
	return err
}

func (r *FeedRepo) ListRecent(ctx context.Context, limit int) ([]domain.FeedEntry, error) {
	query := `
		SELECT id, swap_id, text, created_at
		FROM activity_feed
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.FeedEntry
	for rows.Next() {
		var e domain.FeedEntry
		if err := rows.Scan(&e.ID, &e.SwapID, &e.Text, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
