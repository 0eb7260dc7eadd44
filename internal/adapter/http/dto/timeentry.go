package dto

type TimeEntryItem struct {
	ID          uint64  `json:"id"`
	TaskID      uint64  `json:"task_id"`
	UserID      uint64  `json:"user_id"`
	Description *string `json:"description,omitempty"`
	Minutes     int     `json:"minutes"`
	Date        string  `json:"date"`
	CreatedAt   string  `json:"created_at"`
}

type CreateTimeEntryRequest struct {
	Description *string `json:"description" binding:"omitempty,max=512"`
	Minutes     int     `json:"minutes" binding:"required,gt=0"`
	Date        *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}
