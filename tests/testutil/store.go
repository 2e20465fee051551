// Package testutil provides helpers shared by store-backed tests.
package testutil

import (
	"context"
	"testing"

	"github.com/kalistajoy/crm-workspace/internal/fixtures"
	"github.com/kalistajoy/crm-workspace/internal/store"
)

// NewTestStore creates an in-memory SQLiteStore with all migrations applied.
// It automatically closes the store when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// NewSeededStore returns a test store preloaded with the demo dataset.
func NewSeededStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s := NewTestStore(t)
	ctx := context.Background()

	if err := s.SeedUsers(ctx, fixtures.Users()); err != nil {
		t.Fatalf("seeding users: %v", err)
	}
	if err := s.SeedCompanies(ctx, fixtures.Companies()); err != nil {
		t.Fatalf("seeding companies: %v", err)
	}
	if err := s.SeedTasks(ctx, fixtures.SeedTasks()); err != nil {
		t.Fatalf("seeding tasks: %v", err)
	}

	return s
}
