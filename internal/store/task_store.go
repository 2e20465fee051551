package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/kalistajoy/crm-workspace/internal/model"
)

// taskRow is the flat table shape for tasks. assigned_to is a nullable
// user-name reference; assigned_by is a name or '' for system-assigned.
type taskRow struct {
	ID                string         `db:"id"`
	Seq               int            `db:"seq"`
	Title             string         `db:"title"`
	Description       string         `db:"description"`
	RelatedRecord     string         `db:"related_record"`
	RelatedRecordID   string         `db:"related_record_id"`
	AssignedTo        sql.NullString `db:"assigned_to"`
	Status            int            `db:"status"`
	DueDate           string         `db:"due_date"`
	Type              int            `db:"type"`
	AssignedBy        string         `db:"assigned_by"`
	CreatedAtRelative string         `db:"created_at_relative"`
}

// SeedTasks inserts or replaces the seed task list, assigning sequence
// numbers so reads come back in insertion order.
func (s *SQLiteStore) SeedTasks(ctx context.Context, tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, upsertTaskQuery)
	if err != nil {
		return fmt.Errorf("preparing task seed statement: %w", err)
	}
	defer stmt.Close()

	for i, t := range tasks {
		if _, err := stmt.ExecContext(ctx, taskArgs(t, i)...); err != nil {
			return fmt.Errorf("seeding task %s: %w", t.ID, err)
		}
	}

	return tx.Commit()
}

// ReplaceTask swaps the stored row matching task.ID with the full new
// object, preserving the row's sequence number. A missing id is a no-op.
func (s *SQLiteStore) ReplaceTask(ctx context.Context, task model.Task) error {
	var seq int
	err := s.db.GetContext(ctx, &seq, "SELECT seq FROM tasks WHERE id = ?", task.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("looking up task %s: %w", task.ID, err)
	}

	if _, err := s.db.ExecContext(ctx, upsertTaskQuery, taskArgs(task, seq)...); err != nil {
		return fmt.Errorf("replacing task %s: %w", task.ID, err)
	}
	return nil
}

const upsertTaskQuery = `
	INSERT OR REPLACE INTO tasks (
		id, seq, title, description,
		related_record, related_record_id, assigned_to,
		status, due_date, type, assigned_by, created_at_relative
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

func taskArgs(t model.Task, seq int) []interface{} {
	var assignedTo interface{}
	if t.AssignedTo != nil {
		assignedTo = t.AssignedTo.Name
	}

	assignedBy := ""
	if u, ok := t.AssignedBy.User(); ok {
		assignedBy = u.Name
	}

	return []interface{}{
		t.ID, seq, t.Title, t.Description,
		t.RelatedRecord, t.RelatedRecordID, assignedTo,
		int(t.Status), t.DueDate, int(t.Type), assignedBy, t.CreatedAtRelative,
	}
}

// GetTasks retrieves tasks matching the filter, in seed order.
func (s *SQLiteStore) GetTasks(ctx context.Context, filter TaskFilter) ([]model.Task, error) {
	var conditions []string
	var args []interface{}

	if filter.Assignee != nil {
		conditions = append(conditions, "assigned_to = ?")
		args = append(args, *filter.Assignee)
	}
	if filter.ExcludeDone {
		conditions = append(conditions, "status != ?")
		args = append(args, int(model.StatusDone))
	}
	if filter.Query != nil && *filter.Query != "" {
		conditions = append(conditions, "(title LIKE ? OR description LIKE ?)")
		q := "%" + *filter.Query + "%"
		args = append(args, q, q)
	}

	query := "SELECT * FROM tasks"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY seq"

	var rows []taskRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}

	users, err := s.userIndex(ctx)
	if err != nil {
		return nil, err
	}

	tasks := make([]model.Task, len(rows))
	for i, r := range rows {
		tasks[i] = r.toTask(users)
	}
	return tasks, nil
}

// GetTaskByID retrieves a single task, or nil when no such id exists.
func (s *SQLiteStore) GetTaskByID(ctx context.Context, id string) (*model.Task, error) {
	var r taskRow
	err := s.db.GetContext(ctx, &r, "SELECT * FROM tasks WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting task %s: %w", id, err)
	}

	users, err := s.userIndex(ctx)
	if err != nil {
		return nil, err
	}

	t := r.toTask(users)
	return &t, nil
}

func (r taskRow) toTask(users map[string]model.User) model.Task {
	t := model.Task{
		ID:                r.ID,
		Title:             r.Title,
		Description:       r.Description,
		RelatedRecord:     r.RelatedRecord,
		RelatedRecordID:   r.RelatedRecordID,
		Status:            model.TaskStatus(r.Status),
		DueDate:           r.DueDate,
		Type:              model.TaskType(r.Type),
		AssignedBy:        model.BySystem(),
		CreatedAtRelative: r.CreatedAtRelative,
	}

	if r.AssignedTo.Valid {
		if u, ok := users[r.AssignedTo.String]; ok {
			t.AssignedTo = &u
		} else {
			t.AssignedTo = &model.User{Name: r.AssignedTo.String}
		}
	}
	if r.AssignedBy != "" {
		if u, ok := users[r.AssignedBy]; ok {
			t.AssignedBy = model.ByUser(u)
		} else {
			t.AssignedBy = model.ByUser(model.User{Name: r.AssignedBy})
		}
	}

	return t
}
