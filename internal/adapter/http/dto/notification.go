package dto

type NotificationItem struct {
	ID        uint64  `json:"id"`
	UserID    uint64  `json:"user_id"`
	Title     string  `json:"title"`
	Message   string  `json:"message"`
	Type      string  `json:"type"`
	IsRead    bool    `json:"is_read"`
	TaskID    *uint64 `json:"task_id,omitempty"`
	ProjectID *uint64 `json:"project_id,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}
