package domain

import "time"

// Comment is an append-only rich-text note on a task. Comments are listed
// oldest-first and never updated or deleted individually; they go away only
// when their task is deleted.
type Comment struct {
	ID        uint64
	TaskID    uint64
	Content   string
	Author    string
	CreatedAt time.Time
}

type CreateCommentInput struct {
	Content string
	Author  string
}
