package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kalistajoy/crm-workspace/internal/model"
)

// CreateNotification inserts a notification. A missing ID gets a new UUID
// and a zero CreatedAt defaults to now.
func (s *SQLiteStore) CreateNotification(ctx context.Context, n model.Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO notifications (id, task_id, message, read, created_at) VALUES (?, ?, ?, ?, ?)",
		n.ID, n.TaskID, n.Message, n.Read, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating notification: %w", err)
	}
	return nil
}

// GetUnreadNotifications returns unread notifications, newest first.
func (s *SQLiteStore) GetUnreadNotifications(ctx context.Context) ([]model.Notification, error) {
	var out []model.Notification
	err := s.db.SelectContext(ctx, &out,
		"SELECT * FROM notifications WHERE read = 0 ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("querying notifications: %w", err)
	}
	return out, nil
}

// MarkNotificationRead marks a single notification as read.
func (s *SQLiteStore) MarkNotificationRead(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "UPDATE notifications SET read = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("marking notification %s read: %w", id, err)
	}
	return nil
}
