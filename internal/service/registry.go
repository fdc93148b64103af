package service

import (
	"context"
	"fmt"

	"github.com/dropDatabas3/eventkit/internal/domain/model"
	"github.com/dropDatabas3/eventkit/internal/storage"
	"github.com/dropDatabas3/eventkit/internal/storage/factory"
)

// Nombres lógicos de las colecciones. Cada uno es a la vez storage key,
// resource REST y tabla Postgres.
const (
	EntityClients   = "clients"
	EntityKits      = "kits"
	EntityThemes    = "themes"
	EntityPlans     = "plans"
	EntityProducts  = "products"
	EntityLeads     = "leads"
	EntityContracts = "contracts"
)

// Entities lista todas las entidades registradas, en orden estable.
var Entities = []string{
	EntityClients, EntityKits, EntityThemes, EntityPlans,
	EntityProducts, EntityLeads, EntityContracts,
}

// Registry agrupa todos los services de entidad ya construidos.
// Cada service posee exactamente un adapter, seleccionado por la factory a
// partir de la config resuelta; ninguna entidad tiene dos adapters activos.
type Registry struct {
	Clients   *ClientService
	Kits      *KitService
	Themes    *ThemeService
	Plans     *PlanService
	Products  *ProductService
	Leads     *LeadService
	Contracts *ContractService

	backends map[string]storage.BackendKind
}

// NewRegistry construye los adapters de todas las entidades vía la factory.
func NewRegistry(ctx context.Context, r *Resolver) (*Registry, error) {
	backends := make(map[string]storage.BackendKind, len(Entities))
	for _, e := range Entities {
		kind, err := factory.Kind(r.ConfigFor(e))
		if err != nil {
			return nil, fmt.Errorf("registry: %s: %w", e, err)
		}
		backends[e] = kind
	}

	clientStore, err := factory.Open[model.Client, model.ClientPatch](ctx, r.ConfigFor(EntityClients))
	if err != nil {
		return nil, fmt.Errorf("registry: open clients: %w", err)
	}
	kitStore, err := factory.Open[model.Kit, model.KitPatch](ctx, r.ConfigFor(EntityKits))
	if err != nil {
		return nil, fmt.Errorf("registry: open kits: %w", err)
	}
	themeStore, err := factory.Open[model.Theme, model.ThemePatch](ctx, r.ConfigFor(EntityThemes))
	if err != nil {
		return nil, fmt.Errorf("registry: open themes: %w", err)
	}
	planStore, err := factory.Open[model.Plan, model.PlanPatch](ctx, r.ConfigFor(EntityPlans))
	if err != nil {
		return nil, fmt.Errorf("registry: open plans: %w", err)
	}
	productStore, err := factory.Open[model.Product, model.ProductPatch](ctx, r.ConfigFor(EntityProducts))
	if err != nil {
		return nil, fmt.Errorf("registry: open products: %w", err)
	}
	leadStore, err := factory.Open[model.Lead, model.LeadPatch](ctx, r.ConfigFor(EntityLeads))
	if err != nil {
		return nil, fmt.Errorf("registry: open leads: %w", err)
	}
	contractStore, err := factory.Open[model.Contract, model.ContractPatch](ctx, r.ConfigFor(EntityContracts))
	if err != nil {
		return nil, fmt.Errorf("registry: open contracts: %w", err)
	}

	kits := NewKitService(kitStore)

	return &Registry{
		Clients:   NewClientService(clientStore),
		Kits:      kits,
		Themes:    NewThemeService(themeStore, kits),
		Plans:     NewPlanService(planStore),
		Products:  NewProductService(productStore),
		Leads:     NewLeadService(leadStore),
		Contracts: NewContractService(contractStore),
		backends:  backends,
	}, nil
}

// Backends retorna el backend activo por entidad, para el endpoint de
// diagnóstico. Viene de la misma función de selección que usó la factory.
func (r *Registry) Backends() map[string]storage.BackendKind {
	out := make(map[string]storage.BackendKind, len(r.backends))
	for k, v := range r.backends {
		out[k] = v
	}
	return out
}
