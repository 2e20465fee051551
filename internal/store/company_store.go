package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kalistajoy/crm-workspace/internal/model"
)

// companyRow is the flat table shape; user references are stored by name
// and rehydrated from the users table on read.
type companyRow struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Icon         string `db:"icon"`
	URL          string `db:"url"`
	CreatedBy    string `db:"created_by"`
	Address      string `db:"address"`
	AccountOwner string `db:"account_owner"`
	IsICP        bool   `db:"is_icp"`
	ARR          string `db:"arr"`
	Linkedin     string `db:"linkedin"`
}

// SeedCompanies inserts or replaces the fixed company table.
func (s *SQLiteStore) SeedCompanies(ctx context.Context, companies []model.Company) error {
	if len(companies) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	const query = `
		INSERT OR REPLACE INTO companies (
			id, name, icon, url, created_by,
			address, account_owner, is_icp, arr, linkedin
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := tx.PreparexContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing company seed statement: %w", err)
	}
	defer stmt.Close()

	for _, c := range companies {
		_, err := stmt.ExecContext(ctx,
			c.ID, c.Name, c.Icon, c.URL, c.CreatedBy.Name,
			c.Address, c.AccountOwner.Name, c.IsICP, c.ARR, c.Linkedin,
		)
		if err != nil {
			return fmt.Errorf("seeding company %s: %w", c.ID, err)
		}
	}

	return tx.Commit()
}

// GetCompanies returns all companies in rowid (seed) order.
func (s *SQLiteStore) GetCompanies(ctx context.Context) ([]model.Company, error) {
	var rows []companyRow
	err := s.db.SelectContext(ctx, &rows, "SELECT * FROM companies ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("querying companies: %w", err)
	}

	users, err := s.userIndex(ctx)
	if err != nil {
		return nil, err
	}

	companies := make([]model.Company, len(rows))
	for i, r := range rows {
		companies[i] = r.toCompany(users)
	}
	return companies, nil
}

// GetCompanyByID returns a single company, or nil when no such id exists.
func (s *SQLiteStore) GetCompanyByID(ctx context.Context, id string) (*model.Company, error) {
	var r companyRow
	err := s.db.GetContext(ctx, &r, "SELECT * FROM companies WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting company %s: %w", id, err)
	}

	users, err := s.userIndex(ctx)
	if err != nil {
		return nil, err
	}

	c := r.toCompany(users)
	return &c, nil
}

func (r companyRow) toCompany(users map[string]model.User) model.Company {
	return model.Company{
		ID:           r.ID,
		Name:         r.Name,
		Icon:         r.Icon,
		URL:          r.URL,
		CreatedBy:    users[r.CreatedBy],
		Address:      r.Address,
		AccountOwner: users[r.AccountOwner],
		IsICP:        r.IsICP,
		ARR:          r.ARR,
		Linkedin:     r.Linkedin,
	}
}

// userIndex loads the user registry keyed by name for rehydrating
// name references on rows.
func (s *SQLiteStore) userIndex(ctx context.Context) (map[string]model.User, error) {
	var users []model.User
	err := s.db.SelectContext(ctx, &users, "SELECT name, avatar FROM users")
	if err != nil {
		return nil, fmt.Errorf("loading user index: %w", err)
	}

	index := make(map[string]model.User, len(users))
	for _, u := range users {
		index[u.Name] = u
	}
	return index, nil
}
