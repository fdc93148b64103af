package storage

import (
	"encoding/json"
	"fmt"
)

// DefaultIDField es el nombre del campo identificador en el JSON persistido.
const DefaultIDField = "id"

// WithID retorna una copia del item con el campo identificador asignado.
// Opera vía round-trip JSON para respetar el nombre configurable del campo
// (algunos backends legacy usan "_id" en lugar de "id").
func WithID[T Entity](item T, idField, id string) (T, error) {
	var zero T
	if idField == "" {
		idField = DefaultIDField
	}

	raw, err := json.Marshal(item)
	if err != nil {
		return zero, fmt.Errorf("marshal item: %w", err)
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return zero, fmt.Errorf("unmarshal item: %w", err)
	}
	m[idField] = id

	raw, err = json.Marshal(m)
	if err != nil {
		return zero, fmt.Errorf("marshal item with id: %w", err)
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, fmt.Errorf("unmarshal item with id: %w", err)
	}
	return out, nil
}

// ApplyPatch mergea un patch sobre un registro existente a nivel de campo.
// Solo los campos presentes en el JSON del patch (campos puntero no-nil)
// sobreescriben; el resto del registro queda intacto.
func ApplyPatch[T Entity, P any](rec T, patch P) (T, error) {
	raw, err := json.Marshal(patch)
	if err != nil {
		return rec, fmt.Errorf("marshal patch: %w", err)
	}
	if err := json.Unmarshal(raw, &rec); err != nil {
		return rec, fmt.Errorf("apply patch: %w", err)
	}
	return rec, nil
}

// PatchJSON serializa un patch a JSON (solo campos presentes).
// Lo usan los adapters que delegan el merge al backend (REST, Postgres).
func PatchJSON[P any](patch P) ([]byte, error) {
	raw, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("marshal patch: %w", err)
	}
	return raw, nil
}
