package http

import (
	"encoding/json"
	"net/http"

	"github.com/dropDatabas3/eventkit/internal/storage"
)

// APIError es el cuerpo de error uniforme del API.
type APIError struct {
	Status int    `json:"-"`
	Code   string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func (e APIError) Error() string { return e.Code + ": " + e.Detail }

// WithDetail retorna una copia con detalle adicional.
func (e APIError) WithDetail(detail string) APIError {
	e.Detail = detail
	return e
}

// Errores comunes del API.
var (
	ErrBadRequest  = APIError{Status: http.StatusBadRequest, Code: "bad_request"}
	ErrInvalidJSON = APIError{Status: http.StatusBadRequest, Code: "invalid_json"}
	ErrNotFoundAPI = APIError{Status: http.StatusNotFound, Code: "not_found"}
	ErrConflictAPI = APIError{Status: http.StatusConflict, Code: "conflict"}
	ErrUpstream    = APIError{Status: http.StatusBadGateway, Code: "storage_unavailable"}
	ErrInternal    = APIError{Status: http.StatusInternalServerError, Code: "internal"}
)

// WriteError serializa un APIError.
func WriteError(w http.ResponseWriter, e APIError) {
	writeJSON(w, e.Status, e)
}

// mapStorageErr traduce los sentinels del data layer a errores HTTP.
func mapStorageErr(err error) APIError {
	switch {
	case storage.IsNotFound(err):
		return ErrNotFoundAPI
	case storage.IsConflict(err):
		return ErrConflictAPI
	case storage.IsUnavailable(err):
		return ErrUpstream
	default:
		return ErrInternal.WithDetail(err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
