package domain

import (
	"encoding/json"
	"time"
)

type ActivityType string

const (
	ActivityCreated           ActivityType = "created"
	ActivityUpdated           ActivityType = "updated"
	ActivityCompleted         ActivityType = "completed"
	ActivityCommented         ActivityType = "commented"
	ActivityAssigned          ActivityType = "assigned"
	ActivityDeadlineChanged   ActivityType = "deadline_changed"
	ActivityLinked            ActivityType = "linked"
	ActivityUnlinked          ActivityType = "unlinked"
	ActivityPermissionChanged ActivityType = "permission_changed"
)

// Activity is an append-only audit record. Metadata is opaque JSON the
// emitting workflow attaches; readers must not rely on its shape.
type Activity struct {
	ID          uint64
	Type        ActivityType
	Description string
	TaskID      *uint64
	ProjectID   *uint64
	User        string
	Metadata    json.RawMessage
	CreatedAt   time.Time
}

type CreateActivityInput struct {
	Type        ActivityType
	Description string
	TaskID      *uint64
	ProjectID   *uint64
	User        string
	Metadata    json.RawMessage
}

type ActivityFilter struct {
	ProjectID *uint64
	TaskID    *uint64
	Limit     int
	Offset    int
}
