package database

import (
	"context"
	"fmt"

	"github.com/picolepixel/rank-day-bot/internal/domain/contract"
)

// instance implements the DataManager interface
type instance struct {
	db          *DB
	userRepo    contract.UserRepo
	rankDayRepo contract.RankDayRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		db:          db,
		userRepo:    newUserRepo(db.conn),
		rankDayRepo: newRankDayRepo(db.conn),
	}
}

// repoInstancesWithConn creates repository instances with a custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		userRepo:    newUserRepo(db),
		rankDayRepo: newRankDayRepo(db),
	}
}

// User returns the user repository
func (i *instance) User() contract.UserRepo {
	return i.userRepo
}

// RankDay returns the rank-day repository
func (i *instance) RankDay() contract.RankDayRepo {
	return i.rankDayRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
