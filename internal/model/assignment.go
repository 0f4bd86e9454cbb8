package model

// AssignmentStatus is the progress state of an assignment.
type AssignmentStatus string

const (
	AssignmentStatusPending    AssignmentStatus = "pending"
	AssignmentStatusInProgress AssignmentStatus = "in-progress"
	AssignmentStatusCompleted  AssignmentStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentStatusPending, AssignmentStatusInProgress, AssignmentStatusCompleted:
		return true
	}
	return false
}

// DueDateLayout is the wire format of Assignment.DueDate.
const DueDateLayout = "2006-01-02"

// Assignment is an upcoming piece of coursework. Course is a display label,
// not a reference to Course.ID.
type Assignment struct {
	ID      int              `json:"id" mapstructure:"id"`
	Title   string           `json:"title" mapstructure:"title"`
	Course  string           `json:"course" mapstructure:"course"`
	DueDate string           `json:"dueDate" mapstructure:"dueDate"`
	Status  AssignmentStatus `json:"status" mapstructure:"status"`
}
