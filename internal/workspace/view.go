package workspace

// View identifies the active top-level view.
type View int

const (
	ViewCompanies View = iota
	ViewRecord
	ViewNotifications
)

// String returns the display label for the view.
func (v View) String() string {
	switch v {
	case ViewCompanies:
		return "Companies"
	case ViewRecord:
		return "Record"
	case ViewNotifications:
		return "Notifications"
	default:
		return ""
	}
}

// WorkflowMode selects what the workflow panel shows.
type WorkflowMode int

const (
	// ModeInput shows the editable pricing form.
	ModeInput WorkflowMode = iota
	// ModeOverview shows the read-only run summary.
	ModeOverview
	// ModeReview shows the pre-filled form awaiting approval.
	ModeReview
)

// String returns the display label for the mode.
func (m WorkflowMode) String() string {
	switch m {
	case ModeInput:
		return "Input"
	case ModeOverview:
		return "Overview"
	case ModeReview:
		return "Review"
	default:
		return ""
	}
}

// WorkflowStatus is the run state shown in the overview badge.
type WorkflowStatus int

const (
	RunRunning WorkflowStatus = iota
	RunCompleted
)

// String returns the display label for the run status.
func (s WorkflowStatus) String() string {
	if s == RunCompleted {
		return "Completed"
	}
	return "Running"
}
