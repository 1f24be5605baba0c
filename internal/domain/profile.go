package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxSkills caps the teach/learn lists per profile.
const MaxSkills = 20

// Profile is the public face of a user. Its ID is the owning user's ID;
// it is created on registration and only ever mutated by its owner.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	City        string    `json:"city"`
	OnlineOnly  bool      `json:"online_only"`
	Bio         string    `json:"bio"`
	TeachSkills []string  `json:"teach_skills"`
	LearnSkills []string  `json:"learn_skills"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ParseSkills turns comma-separated text into a skill list: entries are
// trimmed, empty ones dropped, duplicates removed case-insensitively, and
// the result capped at MaxSkills. Order of first appearance is kept.
func ParseSkills(text string) []string {
	parts := strings.Split(text, ",")
	skills := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, p := range parts {
		s := strings.TrimSpace(p)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		skills = append(skills, s)
		if len(skills) == MaxSkills {
			break
		}
	}

	return skills
}

// MatchesQuery reports whether the free-text query matches the profile's
// name, city, bio or any skill. An empty query matches everything.
func (p *Profile) MatchesQuery(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}

	blob := strings.ToLower(strings.Join(append(append(
		[]string{p.Name, p.City, p.Bio}, p.TeachSkills...), p.LearnSkills...), " "))
	return strings.Contains(blob, q)
}
