package dto

type ClientItem struct {
	ID        uint64   `json:"id"`
	Name      string   `json:"name"`
	Email     *string  `json:"email,omitempty"`
	Phone     *string  `json:"phone,omitempty"`
	Company   *string  `json:"company,omitempty"`
	Status    string   `json:"status"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type CreateClientRequest struct {
	Name    string   `json:"name" binding:"required,max=255"`
	Email   *string  `json:"email" binding:"omitempty,email"`
	Phone   *string  `json:"phone" binding:"omitempty,max=64"`
	Company *string  `json:"company" binding:"omitempty,max=255"`
	Status  *string  `json:"status" binding:"omitempty,oneof=active inactive"`
	Tags    []string `json:"tags" binding:"omitempty,dive,max=64"`
}

type UpdateClientRequest struct {
	Name    *string  `json:"name" binding:"omitempty,max=255"`
	Email   *string  `json:"email" binding:"omitempty,email"`
	Phone   *string  `json:"phone" binding:"omitempty,max=64"`
	Company *string  `json:"company" binding:"omitempty,max=255"`
	Status  *string  `json:"status" binding:"omitempty,oneof=active inactive"`
	Tags    []string `json:"tags" binding:"omitempty,dive,max=64"`
}
