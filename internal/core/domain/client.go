package domain

import "time"

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
)

func (s ClientStatus) Valid() bool {
	return s == ClientStatusActive || s == ClientStatusInactive
}

// Client is a tenant owning projects. Deleting a client cascades its
// permission rows and detaches its projects.
type Client struct {
	ID        uint64
	Name      string
	Email     *string
	Phone     *string
	Company   *string
	Status    ClientStatus
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateClientInput struct {
	Name    string
	Email   *string
	Phone   *string
	Company *string
	Status  ClientStatus
	Tags    []string
}

type UpdateClientInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
	Status  *ClientStatus
	Tags    []string
	TagsSet bool
}

type ClientFilter struct {
	Status *ClientStatus
	Query  string
}
