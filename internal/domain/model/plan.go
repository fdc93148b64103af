package model

import "time"

// Plan representa un plan comercial ofrecido a los clientes.
type Plan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Features    []string `json:"features,omitempty"`

	Active   bool `json:"active"`
	Archived bool `json:"archived"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

func (p Plan) EntityID() string { return p.ID }
func (p Plan) IsActive() bool   { return p.Active && !p.Archived }

// PlanPatch contiene los campos actualizables de un plan.
type PlanPatch struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Features    *[]string `json:"features,omitempty"`
	Active      *bool     `json:"active,omitempty"`
	Archived    *bool     `json:"archived,omitempty"`
}
