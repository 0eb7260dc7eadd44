package dto

import "encoding/json"

type ActivityItem struct {
	ID          uint64          `json:"id"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	TaskID      *uint64         `json:"task_id,omitempty"`
	ProjectID   *uint64         `json:"project_id,omitempty"`
	User        string          `json:"user"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	CreatedAt   string          `json:"created_at"`
}
