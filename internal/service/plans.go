package service

import (
	"context"

	"github.com/dropDatabas3/eventkit/internal/domain/model"
	"github.com/dropDatabas3/eventkit/internal/storage"
	"github.com/dropDatabas3/eventkit/internal/storage/crud"
)

// PlanService maneja los planes comerciales.
type PlanService struct {
	crud *crud.Service[model.Plan, model.PlanPatch]
}

func NewPlanService(store storage.Crud[model.Plan, model.PlanPatch]) *PlanService {
	return &PlanService{crud: crud.New(store)}
}

func (s *PlanService) GetAll(ctx context.Context, page, limit int) (storage.PaginatedResponse[model.Plan], error) {
	return s.crud.GetAll(ctx, page, limit)
}

func (s *PlanService) GetByID(ctx context.Context, id string) (model.Plan, error) {
	return s.crud.GetByID(ctx, id)
}

func (s *PlanService) Create(ctx context.Context, p model.Plan) (model.Plan, error) {
	return s.crud.Create(ctx, p)
}

func (s *PlanService) Update(ctx context.Context, id string, patch model.PlanPatch) (model.Plan, error) {
	return s.crud.Update(ctx, id, patch)
}

func (s *PlanService) Delete(ctx context.Context, id string) (bool, error) {
	return s.crud.Delete(ctx, id)
}

// GetActive retorna los planes activos y no archivados.
func (s *PlanService) GetActive(ctx context.Context) ([]model.Plan, error) {
	return getActive(ctx, s.crud)
}

// ToggleStatus activa o desactiva un plan.
func (s *PlanService) ToggleStatus(ctx context.Context, id string, active bool) (model.Plan, error) {
	return s.crud.Update(ctx, id, model.PlanPatch{Active: &active})
}

// Archive archiva un plan.
func (s *PlanService) Archive(ctx context.Context, id string) (model.Plan, error) {
	archived := true
	return s.crud.Update(ctx, id, model.PlanPatch{Archived: &archived})
}

// ImportBatch crea planes secuencialmente; retorna cuántos entraron.
func (s *PlanService) ImportBatch(ctx context.Context, plans []model.Plan) (int, error) {
	return importBatch(ctx, s.crud, plans)
}

// Backend expone el backend físico activo.
func (s *PlanService) Backend() storage.BackendKind { return s.crud.Kind() }
