package domain

import "time"

type NotificationType string

const (
	NotificationTaskAssigned        NotificationType = "task_assigned"
	NotificationDeadlineApproaching NotificationType = "deadline_approaching"
	NotificationTaskCompleted       NotificationType = "task_completed"
	NotificationCommentAdded        NotificationType = "comment_added"
)

// Notification is surfaced to exactly one user; the only mutation it ever
// receives is flipping IsRead.
type Notification struct {
	ID        uint64
	UserID    uint64
	Title     string
	Message   string
	Type      NotificationType
	IsRead    bool
	TaskID    *uint64
	ProjectID *uint64
	CreatedAt time.Time
}

type CreateNotificationInput struct {
	UserID    uint64
	Title     string
	Message   string
	Type      NotificationType
	TaskID    *uint64
	ProjectID *uint64
}
