package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/cykj40/padre-ginos-fem-sub000/configs"
	"github.com/cykj40/padre-ginos-fem-sub000/middlewares"
	"github.com/cykj40/padre-ginos-fem-sub000/pkg/logger"
	"github.com/cykj40/padre-ginos-fem-sub000/routes"
)

func main() {
	cfg := configs.LoadConfig()

	lg := logger.New(logger.Options{
		Service: "padre-ginos-api",
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
	})

	// Prices go out as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

	// DB
	if err := configs.ConnectDatabases(cfg); err != nil {
		log.Fatalf("connect databases: %v", err)
	}
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := configs.SeedCatalog(); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	// HTTP
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigin))

	routes.RegisterRoutes(r, configs.CatalogDB(), configs.CartDB(), cfg, lg)

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	lg.Info("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
