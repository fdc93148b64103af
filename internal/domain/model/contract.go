package model

import "time"

// Estados posibles de un contrato.
const (
	ContractStatusDraft  = "draft"
	ContractStatusSent   = "sent"
	ContractStatusSigned = "signed"
	ContractStatusVoided = "voided"
)

// Contract representa un contrato generado para un cliente.
// El cuerpo ya viene renderizado: la sustitución de variables de template
// ocurre fuera de este core.
type Contract struct {
	ID       string  `json:"id"`
	ClientID string  `json:"client_id"`
	Title    string  `json:"title"`
	Body     string  `json:"body,omitempty"`
	Value    float64 `json:"value"`
	Status   string  `json:"status"`

	SignedAt *time.Time `json:"signed_at,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

func (c Contract) EntityID() string { return c.ID }

// ContractPatch contiene los campos actualizables de un contrato.
type ContractPatch struct {
	Title    *string    `json:"title,omitempty"`
	Body     *string    `json:"body,omitempty"`
	Value    *float64   `json:"value,omitempty"`
	Status   *string    `json:"status,omitempty"`
	SignedAt *time.Time `json:"signed_at,omitempty"`
}
