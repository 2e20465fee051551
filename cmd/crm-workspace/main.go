package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kalistajoy/crm-workspace/internal/app"
	"github.com/kalistajoy/crm-workspace/internal/config"
	"github.com/kalistajoy/crm-workspace/internal/fixtures"
	"github.com/kalistajoy/crm-workspace/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening store at %s: %w", cfg.Database.Path, err)
	}
	defer db.Close()

	if err := seed(db); err != nil {
		return fmt.Errorf("seeding fixtures: %w", err)
	}

	m, err := app.New(db, cfg)
	if err != nil {
		return fmt.Errorf("initializing app: %w", err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// seed loads the demo dataset. Seeds are idempotent upserts, so a
// persistent database keeps task edits from earlier sessions.
func seed(s store.Store) error {
	ctx := context.Background()

	if err := s.SeedUsers(ctx, fixtures.Users()); err != nil {
		return err
	}
	if err := s.SeedCompanies(ctx, fixtures.Companies()); err != nil {
		return err
	}
	return s.SeedTasks(ctx, fixtures.SeedTasks())
}
