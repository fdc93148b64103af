package service

import (
	"context"

	"github.com/dropDatabas3/eventkit/internal/domain/model"
	"github.com/dropDatabas3/eventkit/internal/storage"
	"github.com/dropDatabas3/eventkit/internal/storage/crud"
)

// ClientService maneja la cartera de clientes.
type ClientService struct {
	crud *crud.Service[model.Client, model.ClientPatch]
}

func NewClientService(store storage.Crud[model.Client, model.ClientPatch]) *ClientService {
	return &ClientService{crud: crud.New(store)}
}

func (s *ClientService) GetAll(ctx context.Context, page, limit int) (storage.PaginatedResponse[model.Client], error) {
	return s.crud.GetAll(ctx, page, limit)
}

func (s *ClientService) GetByID(ctx context.Context, id string) (model.Client, error) {
	return s.crud.GetByID(ctx, id)
}

func (s *ClientService) Create(ctx context.Context, c model.Client) (model.Client, error) {
	return s.crud.Create(ctx, c)
}

func (s *ClientService) Update(ctx context.Context, id string, patch model.ClientPatch) (model.Client, error) {
	return s.crud.Update(ctx, id, patch)
}

func (s *ClientService) Delete(ctx context.Context, id string) (bool, error) {
	return s.crud.Delete(ctx, id)
}

// GetActive retorna los clientes activos y no archivados.
func (s *ClientService) GetActive(ctx context.Context) ([]model.Client, error) {
	return getActive(ctx, s.crud)
}

// ToggleStatus activa o desactiva un cliente.
func (s *ClientService) ToggleStatus(ctx context.Context, id string, active bool) (model.Client, error) {
	return s.crud.Update(ctx, id, model.ClientPatch{Active: &active})
}

// Archive archiva un cliente.
func (s *ClientService) Archive(ctx context.Context, id string) (model.Client, error) {
	archived := true
	return s.crud.Update(ctx, id, model.ClientPatch{Archived: &archived})
}

// ImportBatch crea clientes secuencialmente; retorna cuántos entraron.
func (s *ClientService) ImportBatch(ctx context.Context, clients []model.Client) (int, error) {
	return importBatch(ctx, s.crud, clients)
}

// Backend expone el backend físico activo.
func (s *ClientService) Backend() storage.BackendKind { return s.crud.Kind() }
