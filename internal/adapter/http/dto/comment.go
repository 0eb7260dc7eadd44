package dto

type CommentItem struct {
	ID        uint64 `json:"id"`
	TaskID    uint64 `json:"task_id"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}
