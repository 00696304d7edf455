package models

import (
	"github.com/google/uuid"

	"github.com/lucasmrqs/EAS-BookingService/internal/domain"
)

// ResolveClientRequest carries the contact details as typed by the client.
type ResolveClientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// ClientResponse is the outward client shape.
type ClientResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
	Email string    `json:"email"`
}

// ClientListResponse wraps a listing.
type ClientListResponse struct {
	Clients []*ClientResponse `json:"clients"`
	Total   int               `json:"total"`
}

// FromDomainClient converts a domain client.
func FromDomainClient(c *domain.Client) *ClientResponse {
	return &ClientResponse{
		ID:    c.ID,
		Name:  c.Name,
		Phone: c.Phone,
		Email: c.Email,
	}
}

// FromDomainClientList converts a domain client slice.
func FromDomainClientList(list []*domain.Client) *ClientListResponse {
	out := make([]*ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromDomainClient(c))
	}
	return &ClientListResponse{Clients: out, Total: len(out)}
}
