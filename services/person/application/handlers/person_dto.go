package handlers

import (
	"time"

	"github.com/ghuser/orderdesk/services/person/application/services"
	"github.com/ghuser/orderdesk/services/person/domain/models"
)

// PersonRequest is the request body for POST and PUT /persons.
type PersonRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100" example:"Ana"`
	LastName  string `json:"last_name"  validate:"required,max=100" example:"Gomez"`
	Email     string `json:"email"      validate:"required,email,max=255" example:"ana@example.com"`
} // @name PersonRequest

// PersonResponse is the JSON representation of a Person.
type PersonResponse struct {
	ID        int64      `json:"id"         example:"1"`
	FirstName string     `json:"first_name" example:"Ana"`
	LastName  string     `json:"last_name"  example:"Gomez"`
	Email     string     `json:"email"      example:"ana@example.com"`
	CreatedAt time.Time  `json:"created_at" example:"2024-01-15T10:30:00Z"`
	UpdatedAt *time.Time `json:"updated_at" example:"2024-01-16T08:00:00Z"`
} // @name PersonResponse

// SessionRequest is the request body for POST /session.
type SessionRequest struct {
	Email string `json:"email" validate:"required,email" example:"ana@example.com"`
} // @name SessionRequest

func (r PersonRequest) toInput() services.PersonInput {
	return services.PersonInput{FirstName: r.FirstName, LastName: r.LastName, Email: r.Email}
}

func toPersonResponse(p *models.Person) PersonResponse {
	return PersonResponse{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
