package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillswap/backend/internal/domain"
)

type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

func (r *ProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (id, name, city, online_only, bio, teach_skills, learn_skills, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		profile.ID, profile.Name, profile.City, profile.OnlineOnly, profile.Bio,
		profile.TeachSkills, profile.LearnSkills, profile.CreatedAt, profile.UpdatedAt,
	)
	return err
}

func (r *ProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := `
		SELECT id, name, city, online_only, bio, teach_skills, learn_skills, created_at, updated_at
		FROM profiles
		WHERE id = $1`

	var p domain.Profile
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.City, &p.OnlineOnly, &p.Bio,
		&p.TeachSkills, &p.LearnSkills, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &p, err
}

func (r *ProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET name = $2, city = $3, online_only = $4, bio = $5,
			teach_skills = $6, learn_skills = $7, updated_at = NOW()
		WHERE id = $1`

	_, err := r.pool.Exec(ctx, query,
		profile.ID, profile.Name, profile.City, profile.OnlineOnly, profile.Bio,
		profile.TeachSkills, profile.LearnSkills,
	)
	return err
}

func (r *ProfileRepo) List(ctx context.Context, exclude uuid.UUID) ([]domain.Profile, error) {
	query := `
		SELECT id, name, city, online_only, bio, teach_skills, learn_skills, created_at, updated_at
		FROM profiles
		WHERE id <> $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, exclude)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(
			&p.ID, &p.Name, &p.City, &p.OnlineOnly, &p.Bio,
			&p.TeachSkills, &p.LearnSkills, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
