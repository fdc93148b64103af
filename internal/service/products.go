package service

import (
	"context"
	"fmt"

	"github.com/dropDatabas3/eventkit/internal/domain/model"
	"github.com/dropDatabas3/eventkit/internal/storage"
	"github.com/dropDatabas3/eventkit/internal/storage/crud"
)

// ProductService maneja el catálogo de productos vendibles.
type ProductService struct {
	crud *crud.Service[model.Product, model.ProductPatch]
}

func NewProductService(store storage.Crud[model.Product, model.ProductPatch]) *ProductService {
	return &ProductService{crud: crud.New(store)}
}

func (s *ProductService) GetAll(ctx context.Context, page, limit int) (storage.PaginatedResponse[model.Product], error) {
	return s.crud.GetAll(ctx, page, limit)
}

func (s *ProductService) GetByID(ctx context.Context, id string) (model.Product, error) {
	return s.crud.GetByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, p model.Product) (model.Product, error) {
	return s.crud.Create(ctx, p)
}

func (s *ProductService) Update(ctx context.Context, id string, patch model.ProductPatch) (model.Product, error) {
	return s.crud.Update(ctx, id, patch)
}

func (s *ProductService) Delete(ctx context.Context, id string) (bool, error) {
	return s.crud.Delete(ctx, id)
}

// GetActive retorna los productos activos y no archivados.
func (s *ProductService) GetActive(ctx context.Context) ([]model.Product, error) {
	return getActive(ctx, s.crud)
}

// ToggleStatus activa o desactiva un producto.
func (s *ProductService) ToggleStatus(ctx context.Context, id string, active bool) (model.Product, error) {
	return s.crud.Update(ctx, id, model.ProductPatch{Active: &active})
}

// Archive archiva un producto.
func (s *ProductService) Archive(ctx context.Context, id string) (model.Product, error) {
	archived := true
	return s.crud.Update(ctx, id, model.ProductPatch{Archived: &archived})
}

// AdjustStock suma delta al stock (read-then-write, misma salvedad de
// concurrencia que IncrementTimesRented).
func (s *ProductService) AdjustStock(ctx context.Context, id string, delta int) (model.Product, error) {
	p, err := s.crud.GetByID(ctx, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("adjust stock: %w", err)
	}
	next := p.Stock + delta
	if next < 0 {
		next = 0
	}
	return s.crud.Update(ctx, id, model.ProductPatch{Stock: &next})
}

// ImportBatch crea productos secuencialmente; retorna cuántos entraron.
func (s *ProductService) ImportBatch(ctx context.Context, products []model.Product) (int, error) {
	return importBatch(ctx, s.crud, products)
}

// Backend expone el backend físico activo.
func (s *ProductService) Backend() storage.BackendKind { return s.crud.Kind() }
