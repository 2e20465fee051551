package app

import (
	"context"

	"github.com/kalistajoy/crm-workspace/internal/model"
	"github.com/kalistajoy/crm-workspace/internal/store"
)

// storeRecorder writes coordinator mutations through to the fixture store.
// Writes are best-effort: the in-memory state is authoritative for the
// session, so store errors are dropped.
type storeRecorder struct {
	s store.Store
}

func (r storeRecorder) ReplaceTask(task model.Task) {
	_ = r.s.ReplaceTask(context.Background(), task)
}

func (r storeRecorder) Notify(taskID, message string) {
	_ = r.s.CreateNotification(context.Background(), model.Notification{
		TaskID:  taskID,
		Message: message,
	})
}
