package service

import (
	"context"
	"fmt"

	"github.com/dropDatabas3/eventkit/internal/domain/model"
	"github.com/dropDatabas3/eventkit/internal/observability/logger"
	"github.com/dropDatabas3/eventkit/internal/storage"
	"github.com/dropDatabas3/eventkit/internal/storage/crud"
)

// ThemeService maneja los temas de fiesta.
//
// Los temas referencian kits. La traducción entre la forma persistida
// (kits_ids) y la forma hidratada (lista de Kit embebida) ocurre acá, nunca
// en el adapter: el contrato CRUD es agnóstico del backend y de relaciones.
type ThemeService struct {
	crud *crud.Service[model.Theme, model.ThemePatch]
	kits *KitService
}

func NewThemeService(store storage.Crud[model.Theme, model.ThemePatch], kits *KitService) *ThemeService {
	return &ThemeService{crud: crud.New(store), kits: kits}
}

func (s *ThemeService) GetAll(ctx context.Context, page, limit int) (storage.PaginatedResponse[model.Theme], error) {
	return s.crud.GetAll(ctx, page, limit)
}

func (s *ThemeService) GetByID(ctx context.Context, id string) (model.Theme, error) {
	return s.crud.GetByID(ctx, id)
}

// Create persiste el tema. Si llega en forma hidratada (Kits embebidos) se
// deshidrata primero: al backend solo viajan los ids.
func (s *ThemeService) Create(ctx context.Context, theme model.Theme) (model.Theme, error) {
	return s.crud.Create(ctx, Dehydrate(theme))
}

func (s *ThemeService) Update(ctx context.Context, id string, patch model.ThemePatch) (model.Theme, error) {
	return s.crud.Update(ctx, id, patch)
}

func (s *ThemeService) Delete(ctx context.Context, id string) (bool, error) {
	return s.crud.Delete(ctx, id)
}

// GetActive retorna los temas activos y no archivados.
func (s *ThemeService) GetActive(ctx context.Context) ([]model.Theme, error) {
	return getActive(ctx, s.crud)
}

// ToggleStatus activa o desactiva un tema.
func (s *ThemeService) ToggleStatus(ctx context.Context, id string, active bool) (model.Theme, error) {
	return s.crud.Update(ctx, id, model.ThemePatch{Active: &active})
}

// Archive archiva un tema.
func (s *ThemeService) Archive(ctx context.Context, id string) (model.Theme, error) {
	archived := true
	return s.crud.Update(ctx, id, model.ThemePatch{Archived: &archived})
}

// ImportBatch crea temas secuencialmente (deshidratados); retorna cuántos entraron.
func (s *ThemeService) ImportBatch(ctx context.Context, themes []model.Theme) (int, error) {
	for i := range themes {
		themes[i] = Dehydrate(themes[i])
	}
	return importBatch(ctx, s.crud, themes)
}

// GetByIDHydrated retorna el tema con sus kits resueltos a objetos completos.
// Un kit referenciado que ya no existe se omite (con warning); no es fatal.
func (s *ThemeService) GetByIDHydrated(ctx context.Context, id string) (model.Theme, error) {
	theme, err := s.crud.GetByID(ctx, id)
	if err != nil {
		return model.Theme{}, err
	}
	return s.hydrate(ctx, theme)
}

// GetActiveHydrated retorna los temas activos, hidratados.
func (s *ThemeService) GetActiveHydrated(ctx context.Context) ([]model.Theme, error) {
	themes, err := s.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	for i := range themes {
		themes[i], err = s.hydrate(ctx, themes[i])
		if err != nil {
			return nil, err
		}
	}
	return themes, nil
}

func (s *ThemeService) hydrate(ctx context.Context, theme model.Theme) (model.Theme, error) {
	theme.Kits = make([]model.Kit, 0, len(theme.KitIDs))
	for _, kitID := range theme.KitIDs {
		kit, err := s.kits.GetByID(ctx, kitID)
		if err != nil {
			if storage.IsNotFound(err) {
				logger.From(ctx).Named("themes").Warn("referenced kit missing",
					logger.RecordID(theme.ID), logger.String("kit_id", kitID))
				continue
			}
			return model.Theme{}, fmt.Errorf("hydrate theme %s: %w", theme.ID, err)
		}
		theme.Kits = append(theme.Kits, kit)
	}
	return theme, nil
}

// Dehydrate convierte la forma hidratada en la forma persistida: deja solo
// los ids de kit y descarta los objetos embebidos.
func Dehydrate(theme model.Theme) model.Theme {
	if len(theme.Kits) > 0 {
		ids := make([]string, 0, len(theme.Kits))
		for _, k := range theme.Kits {
			ids = append(ids, k.ID)
		}
		theme.KitIDs = ids
	}
	theme.Kits = nil
	return theme
}

// Backend expone el backend físico activo.
func (s *ThemeService) Backend() storage.BackendKind { return s.crud.Kind() }
