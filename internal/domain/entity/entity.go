package entity

import "time"

// User is a registered chat and its notification preference.
type User struct {
	ID        int64
	ChatID    int64
	Username  string
	Hour      int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RankDay is one daily evaluation record. MessageID is the handle of the
// dispatched prompt and, together with the owning chat, uniquely identifies
// the record for later rank updates.
type RankDay struct {
	ID        int64
	UserID    int64
	Time      time.Time
	MessageID int
	Rank      Rank
}

// UserHour is the (chat, preferred hour) pair the scheduler scans on each
// tick.
type UserHour struct {
	ChatID int64
	Hour   int
}
