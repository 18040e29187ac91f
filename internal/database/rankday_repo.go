package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/picolepixel/rank-day-bot/internal/domain"
	"github.com/picolepixel/rank-day-bot/internal/domain/contract"
	"github.com/picolepixel/rank-day-bot/internal/domain/entity"
)

type rankDayRepo struct {
	db dbConn
}

func newRankDayRepo(db dbConn) contract.RankDayRepo {
	return &rankDayRepo{db: db}
}

func (r *rankDayRepo) Create(chatID int64, t time.Time, messageID int) error {
	var userID int64
	err := r.db.QueryRow(`SELECT id FROM users WHERE chat_id = ?`, chatID).Scan(&userID)
	if err == sql.ErrNoRows {
		return domain.ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to resolve user: %w", err)
	}

	query := `
		INSERT INTO rank_days (user_id, time, message_id, rank)
		VALUES (?, ?, ?, NULL)
	`

	// Stored as whole epoch seconds; sub-second precision is dropped.
	if _, err := r.db.Exec(query, userID, t.UTC().Unix(), messageID); err != nil {
		return fmt.Errorf("failed to create rank day: %w", err)
	}

	return nil
}

func (r *rankDayRepo) GetTimeByHandle(chatID int64, messageID int) (*time.Time, error) {
	query := `
		SELECT rank_days.time
		FROM rank_days
		JOIN users ON users.id = rank_days.user_id
		WHERE users.chat_id = ? AND rank_days.message_id = ?
	`

	var epoch int64
	err := r.db.QueryRow(query, chatID, messageID).Scan(&epoch)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rank day time: %w", err)
	}

	t := time.Unix(epoch, 0).UTC()
	return &t, nil
}

func (r *rankDayRepo) SetRank(chatID int64, messageID int, rank entity.Rank) error {
	query := `
		UPDATE rank_days
		SET rank = ?
		FROM users
		WHERE users.id = rank_days.user_id
			AND users.chat_id = ?
			AND rank_days.message_id = ?
	`

	var value sql.NullInt64
	if v, ok := rank.Value(); ok {
		value = sql.NullInt64{Int64: int64(v), Valid: true}
	}

	if _, err := r.db.Exec(query, value, chatID, messageID); err != nil {
		return fmt.Errorf("failed to set rank: %w", err)
	}

	return nil
}

func (r *rankDayRepo) GetRank(chatID int64, messageID int) (*entity.Rank, error) {
	query := `
		SELECT rank_days.rank
		FROM rank_days
		JOIN users ON users.id = rank_days.user_id
		WHERE users.chat_id = ? AND rank_days.message_id = ?
	`

	var value sql.NullInt64
	err := r.db.QueryRow(query, chatID, messageID).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rank: %w", err)
	}

	if !value.Valid {
		rank := entity.Unranked()
		return &rank, nil
	}

	rank, err := entity.Ranked(int(value.Int64))
	if err != nil {
		return nil, fmt.Errorf("stored rank %d: %w", value.Int64, err)
	}
	return &rank, nil
}
