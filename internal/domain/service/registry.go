package service

import (
	"github.com/picolepixel/rank-day-bot/internal/domain"
	"github.com/picolepixel/rank-day-bot/internal/domain/contract"
	"github.com/picolepixel/rank-day-bot/internal/domain/entity"
	"go.uber.org/zap"
)

// registryService manages user registrations and notification preferences.
type registryService struct {
	dm  contract.DataManager
	log *zap.Logger
}

func newRegistry(dm contract.DataManager, log *zap.Logger) *registryService {
	return &registryService{dm: dm, log: log}
}

// Register creates the user with the default hour or, for a known chat,
// refreshes the stored username. It reports whether the user already
// existed.
func (s *registryService) Register(chatID int64, username string) (bool, error) {
	user := &entity.User{
		ChatID:   chatID,
		Username: username,
		Hour:     domain.DefaultHour,
	}

	existed, err := s.dm.User().Upsert(user)
	if err != nil {
		return false, err
	}

	s.log.Info("user registered",
		zap.Int64("chatID", chatID), zap.Bool("existed", existed))
	return existed, nil
}

// SetHour updates the preferred notification hour. Returns
// domain.ErrInvalidHour for values outside 0-23 and domain.ErrUserNotFound
// for unregistered chats.
func (s *registryService) SetHour(chatID int64, hour int) error {
	if !domain.ValidHour(hour) {
		return domain.ErrInvalidHour
	}
	return s.dm.User().SetHour(chatID, hour)
}
