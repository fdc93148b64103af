package service

import (
	"context"
	"fmt"

	"github.com/dropDatabas3/eventkit/internal/domain/model"
	"github.com/dropDatabas3/eventkit/internal/storage"
	"github.com/dropDatabas3/eventkit/internal/storage/crud"
)

// KitService maneja el catálogo de kits.
type KitService struct {
	crud *crud.Service[model.Kit, model.KitPatch]
}

// NewKitService crea el service sobre un adapter ya construido.
func NewKitService(store storage.Crud[model.Kit, model.KitPatch]) *KitService {
	return &KitService{crud: crud.New(store)}
}

func (s *KitService) GetAll(ctx context.Context, page, limit int) (storage.PaginatedResponse[model.Kit], error) {
	return s.crud.GetAll(ctx, page, limit)
}

func (s *KitService) GetByID(ctx context.Context, id string) (model.Kit, error) {
	return s.crud.GetByID(ctx, id)
}

func (s *KitService) Create(ctx context.Context, kit model.Kit) (model.Kit, error) {
	return s.crud.Create(ctx, kit)
}

func (s *KitService) Update(ctx context.Context, id string, patch model.KitPatch) (model.Kit, error) {
	return s.crud.Update(ctx, id, patch)
}

func (s *KitService) Delete(ctx context.Context, id string) (bool, error) {
	return s.crud.Delete(ctx, id)
}

// GetActive retorna los kits activos y no archivados.
func (s *KitService) GetActive(ctx context.Context) ([]model.Kit, error) {
	return getActive(ctx, s.crud)
}

// ToggleStatus activa o desactiva un kit.
func (s *KitService) ToggleStatus(ctx context.Context, id string, active bool) (model.Kit, error) {
	return s.crud.Update(ctx, id, model.KitPatch{Active: &active})
}

// Archive archiva un kit (lo excluye de GetActive sin borrarlo).
func (s *KitService) Archive(ctx context.Context, id string) (model.Kit, error) {
	archived := true
	return s.crud.Update(ctx, id, model.KitPatch{Archived: &archived})
}

// IncrementTimesRented suma 1 al contador de alquileres.
//
// Es un read-then-write sin garantía de atomicidad: dos incrementos
// concurrentes pueden perder uno. Comportamiento conocido y mantenido a
// propósito; el contador es estadístico, no contable.
func (s *KitService) IncrementTimesRented(ctx context.Context, id string) (model.Kit, error) {
	kit, err := s.crud.GetByID(ctx, id)
	if err != nil {
		return model.Kit{}, fmt.Errorf("increment: %w", err)
	}
	next := kit.TimesRented + 1
	return s.crud.Update(ctx, id, model.KitPatch{TimesRented: &next})
}

// ImportBatch crea kits secuencialmente; retorna cuántos entraron.
func (s *KitService) ImportBatch(ctx context.Context, kits []model.Kit) (int, error) {
	return importBatch(ctx, s.crud, kits)
}

// Backend expone el backend físico activo, para diagnóstico.
func (s *KitService) Backend() storage.BackendKind { return s.crud.Kind() }
