// migrate aplica o revierte las migraciones embebidas del esquema de cobranzas.
//
// Uso:
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down [n]   (n omitido revierte todas)
//	go run ./cmd/migrate version
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jhoicas/cobranzas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/cobranzas-api/pkg/config"
	"github.com/jhoicas/cobranzas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name}).Component("migrate")

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	dsn := cfg.DB.ConnectionString()

	switch cmd {
	case "up":
		if err := postgres.Migrate(dsn); err != nil {
			log.Fatal().Err(err).Msg("migrate up")
		}
	case "down":
		n := 0
		if len(os.Args) > 2 {
			if n, err = strconv.Atoi(os.Args[2]); err != nil || n < 0 {
				log.Fatal().Str("n", os.Args[2]).Msg("n debe ser un entero no negativo")
			}
		}
		if err := postgres.MigrateDown(dsn, n); err != nil {
			log.Fatal().Err(err).Msg("migrate down")
		}
	case "version":
	default:
		fmt.Fprintf(os.Stderr, "comando desconocido %q (up | down [n] | version)\n", cmd)
		os.Exit(2)
	}

	version, dirty, err := postgres.MigrationVersion(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("migrate version")
	}
	log.Info().Uint("version", version).Bool("dirty", dirty).Str("cmd", cmd).Msg("migraciones")
}
