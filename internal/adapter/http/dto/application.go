package dto

type ApplicationItem struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Color     string `json:"color"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type CreateApplicationRequest struct {
	Name   string  `json:"name" binding:"required,max=255"`
	Type   string  `json:"type" binding:"required,oneof=Web Mobile Watch"`
	Color  *string `json:"color" binding:"omitempty,hexcolor"`
	Status *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateApplicationRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=255"`
	Type   *string `json:"type" binding:"omitempty,oneof=Web Mobile Watch"`
	Color  *string `json:"color" binding:"omitempty,hexcolor"`
	Status *string `json:"status" binding:"omitempty,oneof=active inactive"`
}
