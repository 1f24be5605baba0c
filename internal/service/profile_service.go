package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/skillswap/backend/internal/domain"
	"github.com/skillswap/backend/internal/repository"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

type UpdateProfileInput struct {
	Name       string `json:"name"`
	City       string `json:"city"`
	OnlineOnly bool   `json:"online_only"`
	Bio        string `json:"bio"`
	// Teach and Learn are comma-separated skill text, as entered in the form.
	Teach string `json:"teach"`
	Learn string `json:"learn"`
}

func (s *ProfileService) Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// Update overwrites the caller's own profile. Only the owner ever reaches
// this path; the id comes from the session, never from the payload.
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	profile.Name = strings.TrimSpace(input.Name)
	profile.City = strings.TrimSpace(input.City)
	profile.OnlineOnly = input.OnlineOnly
	profile.Bio = strings.TrimSpace(input.Bio)
	profile.TeachSkills = domain.ParseSkills(input.Teach)
	profile.LearnSkills = domain.ParseSkills(input.Learn)

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	return profile, nil
}

// List returns the directory for the explore view: everyone but the viewer,
// newest first, optionally narrowed by a free-text query.
func (s *ProfileService) List(ctx context.Context, viewerID uuid.UUID, query string) ([]domain.Profile, error) {
	profiles, err := s.profileRepo.List(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(query) != "" {
		filtered := profiles[:0]
		for _, p := range profiles {
			if p.MatchesQuery(query) {
				filtered = append(filtered, p)
			}
		}
		profiles = filtered
	}

	if profiles == nil {
		profiles = []domain.Profile{}
	}
	return profiles, nil
}
