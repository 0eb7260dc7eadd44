package mapper

import (
	"time"

	"workdeck/internal/adapter/http/dto"
	"workdeck/internal/core/domain"
)

func ToCommentItems(comments []domain.Comment) []dto.CommentItem {
	items := make([]dto.CommentItem, 0, len(comments))
	for _, comment := range comments {
		items = append(items, ToCommentItem(comment))
	}
	return items
}

func ToCommentItem(comment domain.Comment) dto.CommentItem {
	return dto.CommentItem{
		ID:        comment.ID,
		TaskID:    comment.TaskID,
		Content:   comment.Content,
		Author:    comment.Author,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
	}
}
