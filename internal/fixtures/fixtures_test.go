package fixtures

import (
	"testing"

	"github.com/kalistajoy/crm-workspace/internal/model"
)

func TestSeedTasksReferentialIntegrity(t *testing.T) {
	for _, task := range SeedTasks() {
		if _, ok := CompanyByID(task.RelatedRecordID); !ok {
			t.Errorf("task %s references unknown company %q", task.ID, task.RelatedRecordID)
		}
		if c, _ := CompanyByID(task.RelatedRecordID); c.Name != task.RelatedRecord {
			t.Errorf("task %s record label %q does not match company %q", task.ID, task.RelatedRecord, c.Name)
		}
		if task.AssignedTo != nil {
			if _, ok := UserByName(task.AssignedTo.Name); !ok {
				t.Errorf("task %s assigned to unknown user %q", task.ID, task.AssignedTo.Name)
			}
		}
		if by, ok := task.AssignedBy.User(); ok {
			if _, found := UserByName(by.Name); !found {
				t.Errorf("task %s assigned by unknown user %q", task.ID, by.Name)
			}
		}
	}
}

func TestCompanyOwnersExist(t *testing.T) {
	for _, c := range Companies() {
		if c.AccountOwner.Name == "" {
			t.Errorf("company %s has no account owner", c.ID)
			continue
		}
		if _, ok := UserByName(c.AccountOwner.Name); !ok {
			t.Errorf("company %s owned by unknown user %q", c.ID, c.AccountOwner.Name)
		}
	}
}

func TestInboxTaskShape(t *testing.T) {
	task, found := taskByID(InboxTaskID)
	if !found {
		t.Fatalf("seed list is missing %s", InboxTaskID)
	}
	if task.Status != model.StatusToDo {
		t.Errorf("status = %v, want to-do", task.Status)
	}
	if task.Type != model.TypeEmail {
		t.Errorf("type = %v, want email", task.Type)
	}
	if task.AssigneeName() != UserAlex {
		t.Errorf("assignee = %q, want %q", task.AssigneeName(), UserAlex)
	}
	if _, ok := task.AssignedBy.User(); ok {
		t.Error("the inbox task should be system-assigned")
	}
}

func taskByID(id string) (model.Task, bool) {
	for _, t := range SeedTasks() {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}
