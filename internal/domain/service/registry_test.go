package service

import (
	"errors"
	"testing"

	"github.com/picolepixel/rank-day-bot/internal/domain"
	"github.com/picolepixel/rank-day-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func Test_registry_Register(t *testing.T) {
	t.Run("should register new user with default hour", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newRegistry(m.mockDataManager, zap.NewNop())

		m.mockUserRepo.EXPECT().
			Upsert(&entity.User{ChatID: 1, Username: "alice", Hour: domain.DefaultHour}).
			Return(false, nil)

		existed, err := s.Register(1, "alice")

		require.NoError(t, err)
		assert.False(t, existed)
	})

	t.Run("should report existing user", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newRegistry(m.mockDataManager, zap.NewNop())

		m.mockUserRepo.EXPECT().
			Upsert(&entity.User{ChatID: 1, Username: "alice", Hour: domain.DefaultHour}).
			Return(true, nil)

		existed, err := s.Register(1, "alice")

		require.NoError(t, err)
		assert.True(t, existed)
	})

	t.Run("should propagate storage error", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newRegistry(m.mockDataManager, zap.NewNop())

		m.mockUserRepo.EXPECT().
			Upsert(&entity.User{ChatID: 1, Username: "alice", Hour: domain.DefaultHour}).
			Return(false, errors.New("db gone"))

		_, err := s.Register(1, "alice")

		assert.Error(t, err)
	})
}

func Test_registry_SetHour(t *testing.T) {
	t.Run("should pass valid hour through", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newRegistry(m.mockDataManager, zap.NewNop())

		m.mockUserRepo.EXPECT().SetHour(int64(1), 7).Return(nil)

		err := s.SetHour(1, 7)

		require.NoError(t, err)
	})

	t.Run("should reject invalid hour before touching storage", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newRegistry(m.mockDataManager, zap.NewNop())

		assert.ErrorIs(t, s.SetHour(1, 24), domain.ErrInvalidHour)
		assert.ErrorIs(t, s.SetHour(1, -1), domain.ErrInvalidHour)
	})

	t.Run("should surface unknown user", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newRegistry(m.mockDataManager, zap.NewNop())

		m.mockUserRepo.EXPECT().SetHour(int64(1), 7).Return(domain.ErrUserNotFound)

		assert.ErrorIs(t, s.SetHour(1, 7), domain.ErrUserNotFound)
	})
}
