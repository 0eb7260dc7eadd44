package domain

import "time"

type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "open"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusBlocked    TaskStatus = "blocked"
	TaskStatusClosed     TaskStatus = "closed"
)

// legacyTaskStatuses maps the retired Kanban vocabulary onto the canonical
// enum. Accepted on input only; stored and returned values are canonical.
var legacyTaskStatuses = map[string]TaskStatus{
	"todo":       TaskStatusOpen,
	"inprogress": TaskStatusInProgress,
	"done":       TaskStatusClosed,
}

// NormalizeTaskStatus resolves s to a canonical status, translating legacy
// values. The second return reports whether s was recognized at all.
func NormalizeTaskStatus(s string) (TaskStatus, bool) {
	status := TaskStatus(s)
	if status.Valid() {
		return status, true
	}
	if canonical, ok := legacyTaskStatuses[s]; ok {
		return canonical, true
	}
	return "", false
}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusBlocked, TaskStatusClosed:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}

type Task struct {
	ID            uint64
	Title         string
	Description   *string
	Content       *string
	Status        TaskStatus
	Priority      TaskPriority
	ProjectID     *uint64
	ApplicationID *uint64
	Assignee      *string
	DueDate       *time.Time
	Progress      int
	Tags          []string
	Dependencies  []uint64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (t Task) Closed() bool {
	return t.Status == TaskStatusClosed
}

type CreateTaskInput struct {
	Title         string
	Description   *string
	Content       *string
	Status        TaskStatus
	Priority      TaskPriority
	ProjectID     *uint64
	ApplicationID *uint64
	Assignee      *string
	DueDate       *time.Time
	Progress      int
	Tags          []string
	Dependencies  []uint64
}

// UpdateTaskInput carries a partial patch. The *Set flags distinguish "field
// absent" from "field explicitly set to null" for clearable columns.
type UpdateTaskInput struct {
	Title            *string
	Description      *string
	DescriptionSet   bool
	Content          *string
	ContentSet       bool
	Status           *TaskStatus
	Priority         *TaskPriority
	ProjectID        *uint64
	ProjectIDSet     bool
	ApplicationID    *uint64
	ApplicationIDSet bool
	Assignee         *string
	AssigneeSet      bool
	DueDate          *time.Time
	DueDateSet       bool
	Progress         *int
	Tags             []string
	TagsSet          bool
	Dependencies     []uint64
	DependenciesSet  bool
}

// TaskFilter holds the optional, conjunctive list filters. Query is the
// free-text search term; when present it supersedes the structured filters.
type TaskFilter struct {
	ProjectID     *uint64
	ApplicationID *uint64
	Status        *TaskStatus
	Priority      *TaskPriority
	Assignee      *string
	Query         string
}
