package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dropDatabas3/eventkit/internal/cache"
	"github.com/dropDatabas3/eventkit/internal/domain/model"
	"github.com/dropDatabas3/eventkit/internal/service"
)

// NewRouter arma el router del API con todos los recursos del registry.
func NewRouter(reg *service.Registry, c cache.Client, cacheTTL time.Duration) http.Handler {
	if c == nil {
		c = cache.Nop{}
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logging)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		mount(r, service.EntityClients, NewResource[model.Client, model.ClientPatch](service.EntityClients, reg.Clients, c, cacheTTL))
		mount(r, service.EntityKits, NewResource[model.Kit, model.KitPatch](service.EntityKits, reg.Kits, c, cacheTTL))
		mount(r, service.EntityThemes, NewResource[model.Theme, model.ThemePatch](service.EntityThemes, reg.Themes, c, cacheTTL))
		mount(r, service.EntityPlans, NewResource[model.Plan, model.PlanPatch](service.EntityPlans, reg.Plans, c, cacheTTL))
		mount(r, service.EntityProducts, NewResource[model.Product, model.ProductPatch](service.EntityProducts, reg.Products, c, cacheTTL))
		mount(r, service.EntityLeads, NewResource[model.Lead, model.LeadPatch](service.EntityLeads, reg.Leads, c, cacheTTL))
		mount(r, service.EntityContracts, NewResource[model.Contract, model.ContractPatch](service.EntityContracts, reg.Contracts, c, cacheTTL))

		// Diagnóstico: qué backend físico sirve a cada entidad.
		r.Get("/storage", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, reg.Backends())
		})
	})

	return r
}

// registrable es lo que mount necesita de un Resource, sin sus type params.
type registrable interface {
	Register(r chi.Router)
}

func mount(r chi.Router, name string, res registrable) {
	r.Group(func(g chi.Router) {
		g.Use(func(next http.Handler) http.Handler {
			return Instrument(name, next)
		})
		res.Register(g)
	})
}
