package entity

import "github.com/picolepixel/rank-day-bot/internal/domain"

// Rank is the two-variant rating of a day: either unranked (the prompt is
// still pending, or the day was reopened) or ranked with a value in [0,5].
// The zero value is unranked.
type Rank struct {
	value  int
	ranked bool
}

// Unranked returns the absent rank.
func Unranked() Rank {
	return Rank{}
}

// Ranked returns a rank carrying v, or ErrRankOutOfRange when v is outside
// the 0-5 scale.
func Ranked(v int) (Rank, error) {
	if v < domain.MinRank || v > domain.MaxRank {
		return Rank{}, domain.ErrRankOutOfRange
	}
	return Rank{value: v, ranked: true}, nil
}

// Value returns the rank value and whether it is present.
func (r Rank) Value() (int, bool) {
	return r.value, r.ranked
}

// IsRanked reports whether a value is present.
func (r Rank) IsRanked() bool {
	return r.ranked
}
