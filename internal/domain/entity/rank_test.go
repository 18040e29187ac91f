package entity

import (
	"testing"

	"github.com/picolepixel/rank-day-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRanked(t *testing.T) {
	t.Run("should accept every value on the scale", func(t *testing.T) {
		for v := domain.MinRank; v <= domain.MaxRank; v++ {
			rank, err := Ranked(v)

			require.NoError(t, err)
			got, ok := rank.Value()
			assert.True(t, ok)
			assert.Equal(t, v, got)
		}
	})

	t.Run("should reject values outside the scale", func(t *testing.T) {
		_, err := Ranked(-1)
		assert.ErrorIs(t, err, domain.ErrRankOutOfRange)

		_, err = Ranked(6)
		assert.ErrorIs(t, err, domain.ErrRankOutOfRange)
	})
}

func TestUnranked(t *testing.T) {
	rank := Unranked()

	assert.False(t, rank.IsRanked())
	_, ok := rank.Value()
	assert.False(t, ok)

	// The zero value is the absent rank.
	var zero Rank
	assert.Equal(t, zero, rank)
}
