package storage

import "errors"

// Errores sentinela del data layer. Los adapters atrapan todo error crudo del
// backend y lo traducen a uno de estos (envuelto con %w); nunca dejan escapar
// errores de transporte sin clasificar.
var (
	// ErrNotFound indica que el registro solicitado no existe.
	ErrNotFound = errors.New("storage: not found")

	// ErrConflict indica violación de unicidad u otro conflicto no fatal.
	ErrConflict = errors.New("storage: conflict")

	// ErrUnavailable indica fallo de transporte o backend caído.
	ErrUnavailable = errors.New("storage: backend unavailable")

	// ErrUnknownBackend indica un Kind no reconocido en la configuración.
	ErrUnknownBackend = errors.New("storage: unknown backend kind")

	// ErrInvalidConfig indica una configuración incompleta para la variante.
	ErrInvalidConfig = errors.New("storage: invalid config")
)

// IsNotFound verifica si el error es ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict verifica si el error es ErrConflict.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

// IsUnavailable verifica si el error es ErrUnavailable.
func IsUnavailable(err error) bool { return errors.Is(err, ErrUnavailable) }
