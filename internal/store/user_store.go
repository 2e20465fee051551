package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kalistajoy/crm-workspace/internal/model"
)

// SeedUsers inserts or replaces the fixed user registry.
func (s *SQLiteStore) SeedUsers(ctx context.Context, users []model.User) error {
	if len(users) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx,
		"INSERT OR REPLACE INTO users (name, avatar) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("preparing user seed statement: %w", err)
	}
	defer stmt.Close()

	for _, u := range users {
		if _, err := stmt.ExecContext(ctx, u.Name, u.Avatar); err != nil {
			return fmt.Errorf("seeding user %s: %w", u.Name, err)
		}
	}

	return tx.Commit()
}

// GetUsers returns the registry ordered by name.
func (s *SQLiteStore) GetUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := s.db.SelectContext(ctx, &users, "SELECT name, avatar FROM users ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	return users, nil
}

// GetUserByName returns a single user, or nil when no such user exists.
func (s *SQLiteStore) GetUserByName(ctx context.Context, name string) (*model.User, error) {
	var u model.User
	err := s.db.GetContext(ctx, &u, "SELECT name, avatar FROM users WHERE name = ?", name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user %s: %w", name, err)
	}
	return &u, nil
}
