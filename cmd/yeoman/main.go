package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"yeoman/internal/auth"
	"yeoman/internal/config"
	"yeoman/internal/graph"
	"yeoman/internal/logging"
	"yeoman/internal/metrics"
	"yeoman/internal/server"
	"yeoman/internal/store"
)

func main() {
	logger := logging.NewLoggerWithService("yeoman")
	config.LoadEnv(logger)

	secret := []byte(config.RequireEnv("JWT_SECRET"))
	adminName := config.GetEnv("ADMIN_NAME", "admin")

	dbConfig := store.DefaultConfig()
	dbConfig.URL = config.RequireEnv("DATABASE_URL")
	db := store.MustConnect(dbConfig, logger)
	defer db.Close()

	st := store.New(db, logger)
	guard := auth.NewGuard(secret, adminName, st)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	graphqlMetrics := metrics.NewGraphQLMetrics(registry)

	resolver := graph.NewResolver(st, guard, secret, logger, graphqlMetrics)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		logger.WithError(err).Fatal("Failed to build GraphQL schema")
	}

	router := server.SetupRouter(schema, registry, logger)

	if err := server.Start(server.DefaultConfig(), router, logger); err != nil {
		logger.WithError(err).Fatal("Server exited with error")
	}
}
