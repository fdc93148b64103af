package service

import (
	"context"
	"time"

	"github.com/dropDatabas3/eventkit/internal/domain/model"
	"github.com/dropDatabas3/eventkit/internal/storage"
	"github.com/dropDatabas3/eventkit/internal/storage/crud"
)

// ContractService maneja los contratos generados para clientes.
type ContractService struct {
	crud *crud.Service[model.Contract, model.ContractPatch]
}

func NewContractService(store storage.Crud[model.Contract, model.ContractPatch]) *ContractService {
	return &ContractService{crud: crud.New(store)}
}

func (s *ContractService) GetAll(ctx context.Context, page, limit int) (storage.PaginatedResponse[model.Contract], error) {
	return s.crud.GetAll(ctx, page, limit)
}

func (s *ContractService) GetByID(ctx context.Context, id string) (model.Contract, error) {
	return s.crud.GetByID(ctx, id)
}

// Create persiste un contrato; sin estado explícito entra como borrador.
func (s *ContractService) Create(ctx context.Context, c model.Contract) (model.Contract, error) {
	if c.Status == "" {
		c.Status = model.ContractStatusDraft
	}
	return s.crud.Create(ctx, c)
}

func (s *ContractService) Update(ctx context.Context, id string, patch model.ContractPatch) (model.Contract, error) {
	return s.crud.Update(ctx, id, patch)
}

func (s *ContractService) Delete(ctx context.Context, id string) (bool, error) {
	return s.crud.Delete(ctx, id)
}

// GetByClient filtra client-side los contratos de un cliente.
func (s *ContractService) GetByClient(ctx context.Context, clientID string) ([]model.Contract, error) {
	all, err := s.crud.GetAllPages(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Contract, 0, len(all))
	for _, c := range all {
		if c.ClientID == clientID {
			out = append(out, c)
		}
	}
	return out, nil
}

// MarkSigned marca el contrato como firmado con timestamp de firma.
func (s *ContractService) MarkSigned(ctx context.Context, id string) (model.Contract, error) {
	status := model.ContractStatusSigned
	now := time.Now().UTC()
	return s.crud.Update(ctx, id, model.ContractPatch{Status: &status, SignedAt: &now})
}

// ImportBatch crea contratos secuencialmente; retorna cuántos entraron.
func (s *ContractService) ImportBatch(ctx context.Context, contracts []model.Contract) (int, error) {
	return importBatch(ctx, s.crud, contracts)
}

// Backend expone el backend físico activo.
func (s *ContractService) Backend() storage.BackendKind { return s.crud.Kind() }
