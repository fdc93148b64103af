package model

import "time"

// Estados posibles de un lead en el embudo comercial.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusConverted = "converted"
	LeadStatusLost      = "lost"
)

// Lead representa un contacto comercial todavía no convertido en cliente.
type Lead struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone,omitempty"`
	Email  string `json:"email,omitempty"`
	Source string `json:"source,omitempty"` // "instagram", "whatsapp", "referral", ...
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`

	// EventDate fecha tentativa del evento por el que consultó.
	EventDate *time.Time `json:"event_date,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

func (l Lead) EntityID() string { return l.ID }

// LeadPatch contiene los campos actualizables de un lead.
type LeadPatch struct {
	Name      *string    `json:"name,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	Email     *string    `json:"email,omitempty"`
	Source    *string    `json:"source,omitempty"`
	Status    *string    `json:"status,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	EventDate *time.Time `json:"event_date,omitempty"`
}
