package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/inventario-local/internal/bootstrap"
	"github.com/jhoicas/inventario-local/internal/interfaces/cli"
	"github.com/jhoicas/inventario-local/pkg/config"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

func main() {
	open := func(ctx context.Context) (*bootstrap.Services, func(), error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, nil, fmt.Errorf("cargar configuración: %w", err)
		}
		// stdout queda libre para la salida de los comandos.
		log := logger.New(logger.Config{
			Env:    cfg.App.Env,
			Level:  cfg.App.LogLevel,
			Output: os.Stderr,
		})
		return bootstrap.New(ctx, cfg, log)
	}

	if err := cli.NewRootCommand(open).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
