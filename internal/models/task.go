package models

import "time"

const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusPending    = "pending"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusTodo, StatusInProgress, StatusCompleted, StatusPending:
		return true
	}
	return false
}

func ValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          string
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     time.Time
	// AssignedBy is the creator and is set once at creation time.
	AssignedBy string
	// AssignedTo is empty when the task has no assignee.
	AssignedTo string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Member reports whether userID is the creator or the assignee.
func (t *Task) Member(userID string) bool {
	return t.AssignedBy == userID || (t.AssignedTo != "" && t.AssignedTo == userID)
}
