package dto

type TaskItem struct {
	ID            uint64   `json:"id"`
	Title         string   `json:"title"`
	Description   *string  `json:"description,omitempty"`
	Content       *string  `json:"content,omitempty"`
	Status        string   `json:"status"`
	Priority      string   `json:"priority"`
	ProjectID     *uint64  `json:"project_id,omitempty"`
	ApplicationID *uint64  `json:"application_id,omitempty"`
	Assignee      *string  `json:"assignee,omitempty"`
	DueDate       *string  `json:"due_date,omitempty"`
	Progress      int      `json:"progress"`
	Tags          []string `json:"tags"`
	Dependencies  []uint64 `json:"dependencies"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title         string   `json:"title" binding:"required,max=255"`
	Description   *string  `json:"description" binding:"omitempty,max=65535"`
	Content       *string  `json:"content" binding:"omitempty"`
	Status        *string  `json:"status" binding:"omitempty,taskstatus"`
	Priority      *string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	ProjectID     *uint64  `json:"project_id" binding:"omitempty,gt=0"`
	ApplicationID *uint64  `json:"application_id" binding:"omitempty,gt=0"`
	Assignee      *string  `json:"assignee" binding:"omitempty,max=255"`
	DueDate       *string  `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Progress      *int     `json:"progress" binding:"omitempty,gte=0,lte=100"`
	Tags          []string `json:"tags" binding:"omitempty,dive,max=64"`
	Dependencies  []uint64 `json:"dependencies" binding:"omitempty,dive,gt=0"`
}

type UpdateTaskRequest struct {
	Title         *string  `json:"title" binding:"omitempty,max=255"`
	Description   *string  `json:"description" binding:"omitempty,max=65535"`
	Content       *string  `json:"content" binding:"omitempty"`
	Status        *string  `json:"status" binding:"omitempty,taskstatus"`
	Priority      *string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	ProjectID     *uint64  `json:"project_id" binding:"omitempty,gt=0"`
	ApplicationID *uint64  `json:"application_id" binding:"omitempty,gt=0"`
	Assignee      *string  `json:"assignee" binding:"omitempty,max=255"`
	DueDate       *string  `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Progress      *int     `json:"progress" binding:"omitempty,gte=0,lte=100"`
	Tags          []string `json:"tags" binding:"omitempty,dive,max=64"`
	Dependencies  []uint64 `json:"dependencies" binding:"omitempty,dive,gt=0"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,taskstatus"`
}
