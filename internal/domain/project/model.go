package project

import "time"

// Priority classifies how urgent a project is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Status is derived from progress, never stored upstream.
type Status string

const (
	StatusActive    Status = "active"
	StatusPlanning  Status = "planning"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPlanning, StatusCompleted:
		return true
	}
	return false
}

// Project is a raw project as served by the upstream collection.
// Immutable as fetched; identity key is ID.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags"`
	ManagerID   string    `json:"managerId"`
	Members     []string  `json:"members"`
	Priority    Priority  `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Member is a project participant resolved against the user collection.
type Member struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

// Enriched is the board-ready view of a project: raw fields joined with
// resolved members plus presentation metrics. The metrics are placeholders
// derived from the project ID, not authoritative task data.
type Enriched struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Tags           []string  `json:"tags,omitempty"`
	Priority       Priority  `json:"priority"`
	CreatedAt      time.Time `json:"createdAt"`
	Members        []Member  `json:"members"`
	Progress       int       `json:"progress"`
	TotalTasks     int       `json:"totalTasks"`
	CompletedTasks int       `json:"completedTasks"`
	OverdueTasks   int       `json:"overdueTasks"`
	DueDate        string    `json:"dueDate"`
	LastActivity   string    `json:"lastActivity"`
	Status         Status    `json:"status"`
}

// StatusForProgress derives status from a progress percentage.
// Exactly 100 is completed, below 20 is still planning.
func StatusForProgress(progress int) Status {
	if progress == 100 {
		return StatusCompleted
	}
	if progress < 20 {
		return StatusPlanning
	}
	return StatusActive
}
