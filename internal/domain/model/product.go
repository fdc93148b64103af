package model

import "time"

// Product representa un producto vendible (no alquilable, a diferencia de Kit).
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`

	Active   bool `json:"active"`
	Archived bool `json:"archived"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

func (p Product) EntityID() string { return p.ID }
func (p Product) IsActive() bool   { return p.Active && !p.Archived }

// ProductPatch contiene los campos actualizables de un producto.
type ProductPatch struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Active      *bool    `json:"active,omitempty"`
	Archived    *bool    `json:"archived,omitempty"`
}
