package service

import (
	"context"
	"time"

	"github.com/dropDatabas3/eventkit/internal/domain/model"
	"github.com/dropDatabas3/eventkit/internal/storage"
	"github.com/dropDatabas3/eventkit/internal/storage/crud"
)

// LeadService maneja el embudo de leads.
type LeadService struct {
	crud *crud.Service[model.Lead, model.LeadPatch]
}

func NewLeadService(store storage.Crud[model.Lead, model.LeadPatch]) *LeadService {
	return &LeadService{crud: crud.New(store)}
}

func (s *LeadService) GetAll(ctx context.Context, page, limit int) (storage.PaginatedResponse[model.Lead], error) {
	return s.crud.GetAll(ctx, page, limit)
}

func (s *LeadService) GetByID(ctx context.Context, id string) (model.Lead, error) {
	return s.crud.GetByID(ctx, id)
}

// Create persiste un lead; sin estado explícito entra como "new".
func (s *LeadService) Create(ctx context.Context, lead model.Lead) (model.Lead, error) {
	if lead.Status == "" {
		lead.Status = model.LeadStatusNew
	}
	return s.crud.Create(ctx, lead)
}

func (s *LeadService) Update(ctx context.Context, id string, patch model.LeadPatch) (model.Lead, error) {
	return s.crud.Update(ctx, id, patch)
}

func (s *LeadService) Delete(ctx context.Context, id string) (bool, error) {
	return s.crud.Delete(ctx, id)
}

// GetByStatus filtra client-side por estado del embudo.
func (s *LeadService) GetByStatus(ctx context.Context, status string) ([]model.Lead, error) {
	all, err := s.crud.GetAllPages(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Lead, 0, len(all))
	for _, l := range all {
		if l.Status == status {
			out = append(out, l)
		}
	}
	return out, nil
}

// UpdateStatus mueve el lead a otro estado del embudo.
func (s *LeadService) UpdateStatus(ctx context.Context, id, status string) (model.Lead, error) {
	return s.crud.Update(ctx, id, model.LeadPatch{Status: &status})
}

// MarkConverted marca el lead como convertido y retorna el Client equivalente
// listo para crear en ClientService. La creación del cliente queda en manos
// del caller: son dos colecciones distintas y no hay transacción entre ambas.
func (s *LeadService) MarkConverted(ctx context.Context, id string) (model.Client, error) {
	lead, err := s.UpdateStatus(ctx, id, model.LeadStatusConverted)
	if err != nil {
		return model.Client{}, err
	}
	return model.Client{
		Name:      lead.Name,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Notes:     lead.Notes,
		Active:    true,
		CreatedAt: time.Now(),
	}, nil
}

// ImportBatch crea leads secuencialmente; retorna cuántos entraron.
func (s *LeadService) ImportBatch(ctx context.Context, leads []model.Lead) (int, error) {
	return importBatch(ctx, s.crud, leads)
}

// Backend expone el backend físico activo.
func (s *LeadService) Backend() storage.BackendKind { return s.crud.Kind() }
