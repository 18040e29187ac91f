package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/picolepixel/rank-day-bot/internal/domain"
	"github.com/picolepixel/rank-day-bot/internal/domain/contract"
	"github.com/picolepixel/rank-day-bot/internal/domain/entity"
)

type userRepo struct {
	db dbConn
}

func newUserRepo(db dbConn) contract.UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) Upsert(user *entity.User) (bool, error) {
	existing, err := r.GetByChatID(user.ChatID)
	if err != nil {
		return false, fmt.Errorf("failed to check existing user: %w", err)
	}

	if existing != nil {
		// Re-registration only refreshes the display name; the preferred
		// hour the user may have tuned is kept.
		query := `UPDATE users SET username = ?, updated_at = ? WHERE id = ?`

		if _, err := r.db.Exec(query, user.Username, time.Now().UTC(), existing.ID); err != nil {
			return false, fmt.Errorf("failed to update user: %w", err)
		}

		user.ID = existing.ID
		user.Hour = existing.Hour
		return true, nil
	}

	if !domain.ValidHour(user.Hour) {
		user.Hour = domain.DefaultHour
	}

	query := `INSERT INTO users (chat_id, username, hour) VALUES (?, ?, ?)`

	result, err := r.db.Exec(query, user.ChatID, user.Username, user.Hour)
	if err != nil {
		return false, fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("failed to get last insert id: %w", err)
	}

	user.ID = id
	return false, nil
}

func (r *userRepo) GetByChatID(chatID int64) (*entity.User, error) {
	user := &entity.User{}
	query := `
		SELECT id, chat_id, username, hour, created_at, updated_at
		FROM users
		WHERE chat_id = ?
	`

	err := r.db.QueryRow(query, chatID).Scan(
		&user.ID,
		&user.ChatID,
		&user.Username,
		&user.Hour,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (r *userRepo) SetHour(chatID int64, hour int) error {
	if !domain.ValidHour(hour) {
		return domain.ErrInvalidHour
	}

	query := `UPDATE users SET hour = ?, updated_at = ? WHERE chat_id = ?`

	result, err := r.db.Exec(query, hour, time.Now().UTC(), chatID)
	if err != nil {
		return fmt.Errorf("failed to set hour: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func (r *userRepo) ListUsersWithHour() ([]entity.UserHour, error) {
	query := `SELECT chat_id, hour FROM users ORDER BY chat_id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []entity.UserHour
	for rows.Next() {
		var uh entity.UserHour
		if err := rows.Scan(&uh.ChatID, &uh.Hour); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, uh)
	}

	return users, rows.Err()
}
