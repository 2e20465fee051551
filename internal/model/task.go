package model

// TaskStatus is the closed set of workflow statuses a task can hold.
type TaskStatus int

const (
	// StatusNone marks a task that has not entered the workflow yet.
	StatusNone TaskStatus = iota
	StatusToDo
	StatusInProgress
	StatusInReview
	StatusDone
)

// String returns the display label for the status.
func (s TaskStatus) String() string {
	switch s {
	case StatusToDo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusInReview:
		return "In Review"
	case StatusDone:
		return "Done"
	default:
		return ""
	}
}

// TaskType is the optional category tag attached to a task.
type TaskType int

const (
	TypeNone TaskType = iota
	TypeEmail
	TypeApproval
	TypeRenewal
	TypeMention
)

// String returns the display label for the type tag.
func (t TaskType) String() string {
	switch t {
	case TypeEmail:
		return "Email"
	case TypeApproval:
		return "Approval"
	case TypeRenewal:
		return "Renewal"
	case TypeMention:
		return "Mention"
	default:
		return ""
	}
}

// Assigner records who handed a task out: either the system itself or a
// concrete user. The zero value means system-assigned.
type Assigner struct {
	user *User
}

// BySystem returns the system assigner.
func BySystem() Assigner {
	return Assigner{}
}

// ByUser returns an assigner for the given user.
func ByUser(u User) Assigner {
	return Assigner{user: &u}
}

// User returns the assigning user and true, or false for a system assigner.
func (a Assigner) User() (User, bool) {
	if a.user == nil {
		return User{}, false
	}
	return *a.user, true
}

// DisplayName returns the assigner's name, or "System".
func (a Assigner) DisplayName() string {
	if a.user == nil {
		return "System"
	}
	return a.user.Name
}

// Task is a notification inbox item tied to a company record. Tasks are
// seeded once at startup and then replaced whole, keyed by ID; individual
// field edits always write back the full object.
type Task struct {
	// ID is the unique, stable identifier for this task.
	ID string `json:"id" db:"id"`

	// Title is the editable one-line summary.
	Title string `json:"title" db:"title"`

	// Description is the full body text.
	Description string `json:"description" db:"description"`

	// RelatedRecord is the display name of the company this task belongs to.
	RelatedRecord string `json:"related_record" db:"related_record"`

	// RelatedRecordID is the company's identifier for lookups.
	RelatedRecordID string `json:"related_record_id" db:"related_record_id"`

	// AssignedTo is the assignee, or nil when the task is unassigned.
	AssignedTo *User `json:"assigned_to,omitempty" db:"-"`

	// Status is the workflow status (StatusNone when not yet triaged).
	Status TaskStatus `json:"status" db:"status"`

	// DueDate is a free-form date label, empty when unset.
	DueDate string `json:"due_date" db:"due_date"`

	// Type is the optional category tag.
	Type TaskType `json:"type" db:"type"`

	// AssignedBy records who handed the task out.
	AssignedBy Assigner `json:"-" db:"-"`

	// CreatedAtRelative is a display-only relative timestamp label.
	CreatedAtRelative string `json:"created_at_relative" db:"created_at_relative"`
}

// AssigneeName returns the assignee's name, or "" when unassigned.
func (t Task) AssigneeName() string {
	if t.AssignedTo == nil {
		return ""
	}
	return t.AssignedTo.Name
}
