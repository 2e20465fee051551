package store

import (
	"context"

	"github.com/kalistajoy/crm-workspace/internal/model"
)

// TaskFilter controls filtering for task queries. Results always come back
// in seed (insertion) order.
type TaskFilter struct {
	// Assignee keeps only tasks assigned to the named user.
	Assignee *string

	// ExcludeDone drops tasks whose status is done.
	ExcludeDone bool

	// Query matches title or description, case-insensitive substring.
	Query *string
}

// Store defines the persistence interface for the demo workspace: the
// seeded registries, the task table, and the notification audit log.
type Store interface {
	// === Users ===

	SeedUsers(ctx context.Context, users []model.User) error
	GetUsers(ctx context.Context) ([]model.User, error)
	GetUserByName(ctx context.Context, name string) (*model.User, error)

	// === Companies ===

	SeedCompanies(ctx context.Context, companies []model.Company) error
	GetCompanies(ctx context.Context) ([]model.Company, error)
	GetCompanyByID(ctx context.Context, id string) (*model.Company, error)

	// === Tasks ===

	SeedTasks(ctx context.Context, tasks []model.Task) error
	ReplaceTask(ctx context.Context, task model.Task) error
	GetTasks(ctx context.Context, filter TaskFilter) ([]model.Task, error)
	GetTaskByID(ctx context.Context, id string) (*model.Task, error)

	// === Notifications ===

	CreateNotification(ctx context.Context, n model.Notification) error
	GetUnreadNotifications(ctx context.Context) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
}
