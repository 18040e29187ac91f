package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/picolepixel/rank-day-bot/internal/domain/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestInteraction(m allMocks) *interactionService {
	return newInteraction(m.mockDataManager, m.mockDispatcher, zap.NewNop(), testParams())
}

func Test_interaction_HandleRank(t *testing.T) {
	recordTime := time.Date(2024, 3, 15, 22, 0, 0, 0, time.UTC)

	t.Run("should persist rank and replace prompt with confirmation", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newTestInteraction(m)

		ranked3, err := entity.Ranked(3)
		require.NoError(t, err)

		m.mockRankDayRepo.EXPECT().
			GetTimeByHandle(int64(1), 77).
			Return(&recordTime, nil)
		m.mockRankDayRepo.EXPECT().
			SetRank(int64(1), 77, ranked3).
			Return(nil)
		m.mockDispatcher.EXPECT().
			SendResult(gomock.Any(), int64(1), 77, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, _ int, text string) error {
				require.True(t, strings.Contains(text, "3"))
				require.True(t, strings.Contains(text, "15 March 2024"))
				return nil
			})

		s.HandleRank(context.Background(), 1, 77, "3")
	})

	t.Run("should ignore malformed payload", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newTestInteraction(m)

		// No repository or dispatcher calls.
		s.HandleRank(context.Background(), 1, 77, "banana")
	})

	t.Run("should ignore out of range rank", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newTestInteraction(m)

		s.HandleRank(context.Background(), 1, 77, "6")
		s.HandleRank(context.Background(), 1, 77, "-1")
	})

	t.Run("should ignore stale handle", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newTestInteraction(m)

		m.mockRankDayRepo.EXPECT().
			GetTimeByHandle(int64(1), 77).
			Return(nil, nil)

		s.HandleRank(context.Background(), 1, 77, "3")
	})

	t.Run("should not dispatch when persistence fails", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newTestInteraction(m)

		ranked2, err := entity.Ranked(2)
		require.NoError(t, err)

		m.mockRankDayRepo.EXPECT().
			GetTimeByHandle(int64(1), 77).
			Return(&recordTime, nil)
		m.mockRankDayRepo.EXPECT().
			SetRank(int64(1), 77, ranked2).
			Return(errors.New("disk full"))

		s.HandleRank(context.Background(), 1, 77, "2")
	})
}

func Test_interaction_HandleEdit(t *testing.T) {
	recordTime := time.Date(2024, 3, 15, 22, 0, 0, 0, time.UTC)

	t.Run("should clear rank and redisplay keyboard at the same handle", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newTestInteraction(m)

		m.mockRankDayRepo.EXPECT().
			GetTimeByHandle(int64(1), 77).
			Return(&recordTime, nil)
		m.mockRankDayRepo.EXPECT().
			SetRank(int64(1), 77, entity.Unranked()).
			Return(nil)
		m.mockDispatcher.EXPECT().
			EditPrompt(gomock.Any(), int64(1), 77, gomock.Any()).
			Return(nil)

		s.HandleEdit(context.Background(), 1, 77)
	})

	t.Run("should ignore stale handle", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newTestInteraction(m)

		m.mockRankDayRepo.EXPECT().
			GetTimeByHandle(int64(1), 77).
			Return(nil, nil)

		s.HandleEdit(context.Background(), 1, 77)
	})

	t.Run("should swallow transport failure", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newTestInteraction(m)

		m.mockRankDayRepo.EXPECT().
			GetTimeByHandle(int64(1), 77).
			Return(&recordTime, nil)
		m.mockRankDayRepo.EXPECT().
			SetRank(int64(1), 77, entity.Unranked()).
			Return(nil)
		m.mockDispatcher.EXPECT().
			EditPrompt(gomock.Any(), int64(1), 77, gomock.Any()).
			Return(errors.New("telegram unavailable"))

		s.HandleEdit(context.Background(), 1, 77)
	})
}

func Test_interaction_HandleAddComment(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestInteraction(m)

	// Reserved hook: no repository or dispatcher calls.
	s.HandleAddComment(context.Background(), 1, 77)
}

func Test_interaction_rankThenEditRoundTrip(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestInteraction(m)

	recordTime := time.Date(2024, 3, 15, 22, 0, 0, 0, time.UTC)
	ranked4, err := entity.Ranked(4)
	require.NoError(t, err)

	gomock.InOrder(
		m.mockRankDayRepo.EXPECT().
			GetTimeByHandle(int64(1), 77).
			Return(&recordTime, nil),
		m.mockRankDayRepo.EXPECT().
			SetRank(int64(1), 77, ranked4).
			Return(nil),
		m.mockDispatcher.EXPECT().
			SendResult(gomock.Any(), int64(1), 77, gomock.Any()).
			Return(nil),
		m.mockRankDayRepo.EXPECT().
			GetTimeByHandle(int64(1), 77).
			Return(&recordTime, nil),
		m.mockRankDayRepo.EXPECT().
			SetRank(int64(1), 77, entity.Unranked()).
			Return(nil),
		m.mockDispatcher.EXPECT().
			EditPrompt(gomock.Any(), int64(1), 77, gomock.Any()).
			Return(nil),
	)

	s.HandleRank(context.Background(), 1, 77, "4")
	s.HandleEdit(context.Background(), 1, 77)
}
