package contract

import (
	"context"
	"time"

	"github.com/picolepixel/rank-day-bot/internal/domain/entity"
)

//go:generate mockgen -destination=../../../mocks/contract_mocks.go -package=mocks github.com/picolepixel/rank-day-bot/internal/domain/contract DataManager,UserRepo,RankDayRepo,Dispatcher

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	User() UserRepo
	RankDay() RankDayRepo
}

// UserRepo defines the contract for the user registry
type UserRepo interface {
	// Upsert inserts the user or, when the chat is already registered,
	// refreshes its username. It reports whether the user already existed.
	Upsert(user *entity.User) (existed bool, err error)
	GetByChatID(chatID int64) (*entity.User, error)
	SetHour(chatID int64, hour int) error
	// ListUsersWithHour returns a snapshot of (chat, preferred hour) pairs
	// ordered by chat id, read once per scheduler tick.
	ListUsersWithHour() ([]entity.UserHour, error)
}

// RankDayRepo defines the contract for the rank-day log. All lookups and
// mutations are keyed by (chat, message handle) so interactions on an old
// day's prompt never touch a newer record.
type RankDayRepo interface {
	// Create inserts a pending record for the prompt dispatched to chatID
	// with the given message handle. Returns domain.ErrUserNotFound when
	// the chat is not registered.
	Create(chatID int64, t time.Time, messageID int) error
	// GetTimeByHandle returns the creation time of the record matching
	// (chatID, messageID), or (nil, nil) when no such record exists.
	GetTimeByHandle(chatID int64, messageID int) (*time.Time, error)
	// SetRank overwrites the rank of the matching record. An unranked
	// value reopens the day. Unknown handles are a silent no-op.
	SetRank(chatID int64, messageID int, rank entity.Rank) error
	// GetRank returns the current rank of the matching record, or
	// (nil, nil) when no such record exists.
	GetRank(chatID int64, messageID int) (*entity.Rank, error)
}
