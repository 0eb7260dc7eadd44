package dto

type ProjectItem struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	ClientID    *uint64  `json:"client_id,omitempty"`
	Color       string   `json:"color"`
	Status      string   `json:"status"`
	StartDate   *string  `json:"start_date,omitempty"`
	EndDate     *string  `json:"end_date,omitempty"`
	Assignees   []string `json:"assignees"`
	Tags        []string `json:"tags"`
	Progress    int      `json:"progress"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

type CreateProjectRequest struct {
	Name           string   `json:"name" binding:"required,max=255"`
	Description    *string  `json:"description" binding:"omitempty,max=65535"`
	ClientID       *uint64  `json:"client_id" binding:"omitempty,gt=0"`
	Color          *string  `json:"color" binding:"omitempty,hexcolor"`
	Status         *string  `json:"status" binding:"omitempty,oneof=active paused completed archived"`
	StartDate      *string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate        *string  `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Assignees      []string `json:"assignees" binding:"omitempty,dive,max=255"`
	Tags           []string `json:"tags" binding:"omitempty,dive,max=64"`
	ApplicationIDs []uint64 `json:"application_ids" binding:"omitempty,dive,gt=0"`
}

type UpdateProjectRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=65535"`
	ClientID    *uint64  `json:"client_id" binding:"omitempty,gt=0"`
	Color       *string  `json:"color" binding:"omitempty,hexcolor"`
	Status      *string  `json:"status" binding:"omitempty,oneof=active paused completed archived"`
	StartDate   *string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string  `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Assignees   []string `json:"assignees" binding:"omitempty,dive,max=255"`
	Tags        []string `json:"tags" binding:"omitempty,dive,max=64"`
}
