package model

import "time"

// Client representa un cliente (o ex-lead convertido) del negocio.
type Client struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Document string `json:"document,omitempty"` // CPF/CNPJ
	Address  string `json:"address,omitempty"`
	Notes    string `json:"notes,omitempty"`

	Active   bool `json:"active"`
	Archived bool `json:"archived"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

func (c Client) EntityID() string { return c.ID }
func (c Client) IsActive() bool   { return c.Active && !c.Archived }

// ClientPatch contiene los campos actualizables de un cliente.
type ClientPatch struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Document *string `json:"document,omitempty"`
	Address  *string `json:"address,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	Active   *bool   `json:"active,omitempty"`
	Archived *bool   `json:"archived,omitempty"`
}
