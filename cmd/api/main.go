package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	_ "time/tzdata"

	_ "construction_console/docs"
	"construction_console/internal/config"
)

// @title           Construction Estimate Console API
// @version         1.0
// @description     Estimates, catalog, customers and follow-ups for a construction firm, kept in sync with a remote store.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		config.LogError(config.GetLogger(), "main", "main", "failed to load config", nil, err)
		os.Exit(1)
	}
	config.ConfigureLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		config.LogError(config.GetLogger(), "main", "run", "console stopped with error", nil, err)
		os.Exit(1)
	}
	config.Module("main").Info("console stopped")
}
