// Carga datos de demo en el backend configurado. Pensado para dev: apuntado
// al store local arma un data/ navegable; apuntado a Postgres puebla las
// tablas documento.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/dropDatabas3/eventkit/internal/app"
	"github.com/dropDatabas3/eventkit/internal/config"
	"github.com/dropDatabas3/eventkit/internal/domain/model"
	"github.com/dropDatabas3/eventkit/internal/observability/logger"
)

func main() {
	configPath := flag.String("config", "", "Path al YAML de configuración (opcional)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, ServiceName: "eventkit-seed"})
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	a, err := app.New(ctx, cfg)
	if err != nil {
		logger.L().Fatal("bootstrap", logger.Err(err))
	}
	defer a.Close()

	reg := a.Registry
	report := func(entity string, n int, err error) {
		if err != nil {
			logger.L().Fatal("seed falló",
				logger.String("entity", entity), logger.Count(n), logger.Err(err))
		}
		logger.L().Info("seed ok", logger.String("entity", entity), logger.Count(n))
	}

	n, err := reg.Kits.ImportBatch(ctx, []model.Kit{
		{Name: "Kit Jardín Encantado", Price: 1200, Items: []string{"arco floral", "mesa dulce", "paneles verdes"}, Active: true},
		{Name: "Kit Superhéroes", Price: 950, Items: []string{"backdrop ciudad", "globos", "cake stand"}, Active: true},
		{Name: "Kit Princesas", Price: 1100, Items: []string{"castillo", "alfombra", "columnas"}, Active: true},
	})
	report("kits", n, err)

	kits, err := reg.Kits.GetActive(ctx)
	if err != nil {
		logger.L().Fatal("leer kits", logger.Err(err))
	}
	var kitIDs []string
	for _, k := range kits {
		kitIDs = append(kitIDs, k.ID)
	}

	n, err = reg.Themes.ImportBatch(ctx, []model.Theme{
		{Name: "Bosque", Description: "Ambientación natural", KitIDs: kitIDs[:1], Active: true},
		{Name: "Comics", KitIDs: kitIDs, Active: true},
	})
	report("themes", n, err)

	n, err = reg.Plans.ImportBatch(ctx, []model.Plan{
		{Name: "Básico", Price: 500, Features: []string{"4 horas", "1 kit"}, Active: true},
		{Name: "Premium", Price: 1500, Features: []string{"8 horas", "kits ilimitados", "fotografía"}, Active: true},
	})
	report("plans", n, err)

	n, err = reg.Products.ImportBatch(ctx, []model.Product{
		{Name: "Piñata grande", Price: 80, Stock: 15, Active: true},
		{Name: "Centro de mesa", Price: 35, Stock: 40, Active: true},
	})
	report("products", n, err)

	n, err = reg.Clients.ImportBatch(ctx, []model.Client{
		{Name: "María Fernández", Email: "maria@example.com", Phone: "+54 11 5555-0101", Active: true},
		{Name: "Grupo Eventos SRL", Email: "contacto@grupoeventos.example", Document: "30-11111111-7", Active: true},
	})
	report("clients", n, err)

	n, err = reg.Leads.ImportBatch(ctx, []model.Lead{
		{Name: "Lucía Torres", Phone: "+54 11 5555-0202", Source: "instagram", Status: model.LeadStatusNew},
		{Name: "Pedro Gómez", Email: "pedro@example.com", Source: "referral", Status: model.LeadStatusContacted},
	})
	report("leads", n, err)

	logger.L().Info("seed completo")
}
