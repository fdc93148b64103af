package model

import "time"

// Kit representa un kit de decoración alquilable.
type Kit struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Items       []string `json:"items,omitempty"`

	// TimesRented cuenta cuántas veces se alquiló el kit.
	// El nombre JSON es legacy: los datos existentes lo serializan así.
	TimesRented int `json:"vezes_alugado"`

	Active   bool `json:"active"`
	Archived bool `json:"archived"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

func (k Kit) EntityID() string { return k.ID }
func (k Kit) IsActive() bool   { return k.Active && !k.Archived }

// KitPatch contiene los campos actualizables de un kit.
type KitPatch struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Items       *[]string `json:"items,omitempty"`
	TimesRented *int      `json:"vezes_alugado,omitempty"`
	Active      *bool     `json:"active,omitempty"`
	Archived    *bool     `json:"archived,omitempty"`
}
