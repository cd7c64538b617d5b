package views

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/studyhub/internal/common"
	"github.com/dmitrijs2005/studyhub/internal/models"
)

// SortStrategy names a post ordering.
type SortStrategy string

const (
	SortRecent   SortStrategy = "recent"
	SortPopular  SortStrategy = "popular"
	SortTrending SortStrategy = "trending"
)

// ParseSort maps user input onto a strategy. Empty input means recent.
func ParseSort(s string) (SortStrategy, error) {
	switch SortStrategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortRecent:
		return SortRecent, nil
	case SortPopular:
		return SortPopular, nil
	case SortTrending:
		return SortTrending, nil
	}
	return "", common.NewValidationError("sort", "unknown strategy "+s)
}

// TrendingPolicy decides the sign of the age term of the trending score.
type TrendingPolicy int

const (
	// TrendingAgeBonus adds age in ms / 1e6 to likes, ranking older posts
	// higher at equal likes.
	TrendingAgeBonus TrendingPolicy = iota
	// TrendingAgePenalty subtracts the same term.
	TrendingAgePenalty
)

// TrendingScore is likes ± (now - createdAt in ms) / 1e6 depending on policy.
func TrendingScore(p models.Post, now time.Time, policy TrendingPolicy) float64 {
	age := float64(now.Sub(p.CreatedAt).Milliseconds()) / 1_000_000
	if policy == TrendingAgePenalty {
		age = -age
	}
	return float64(p.Likes) + age
}

// Sorter orders posts. The zero value uses TrendingAgeBonus and time.Now.
type Sorter struct {
	Policy TrendingPolicy
	Now    func() time.Time
}

// Sort returns a sorted copy of posts; the input is left untouched. Ties keep
// collection order.
func (s Sorter) Sort(posts []models.Post, strategy SortStrategy) ([]models.Post, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	var less func(a, b models.Post) int
	switch strategy {
	case SortRecent:
		less = func(a, b models.Post) int { return b.CreatedAt.Compare(a.CreatedAt) }
	case SortPopular:
		less = func(a, b models.Post) int { return cmp.Compare(b.Likes, a.Likes) }
	case SortTrending:
		t := now()
		less = func(a, b models.Post) int {
			return cmp.Compare(TrendingScore(b, t, s.Policy), TrendingScore(a, t, s.Policy))
		}
	default:
		return nil, common.NewValidationError("sort", "unknown strategy "+string(strategy))
	}

	out := slices.Clone(posts)
	if out == nil {
		out = []models.Post{}
	}
	slices.SortStableFunc(out, less)
	return out, nil
}
