package model

import "time"

// Theme representa un tema de fiesta compuesto por uno o más kits.
//
// Forma persistida vs forma en memoria: en el backend solo viajan los ids
// (KitIDs); la lista Kits hidratada se arma en el service layer y nunca se
// serializa. Ver ThemeService.Hydrate/Dehydrate.
type Theme struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// KitIDs referencias a kits (forma persistida).
	KitIDs []string `json:"kits_ids"`

	// Kits forma hidratada, solo en memoria.
	Kits []Kit `json:"-"`

	Active   bool `json:"active"`
	Archived bool `json:"archived"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

func (t Theme) EntityID() string { return t.ID }
func (t Theme) IsActive() bool   { return t.Active && !t.Archived }

// ThemePatch contiene los campos actualizables de un tema.
type ThemePatch struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	KitIDs      *[]string `json:"kits_ids,omitempty"`
	Active      *bool     `json:"active,omitempty"`
	Archived    *bool     `json:"archived,omitempty"`
}
