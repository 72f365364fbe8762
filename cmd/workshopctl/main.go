package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"workshop_xpto/internal/cli"
	"workshop_xpto/internal/config"
	"workshop_xpto/internal/logger"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	var (
		once sync.Once
		app  *cli.App
		err  error
	)
	load := func(ctx context.Context) (*cli.App, error) {
		once.Do(func() {
			var cfg *config.Configuration
			cfg, err = config.NewConfig()
			if err != nil {
				return
			}
			var log *logger.Logger
			log, err = logger.NewLogger(cfg.Logging.Level)
			if err != nil {
				return
			}
			logger.L = log
			app, err = cli.NewApp(ctx, cfg, log)
		})
		return app, err
	}

	code := 0
	if err := cli.NewRootCmd(load).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		code = 1
	}
	if app != nil {
		app.Close()
	}
	os.Exit(code)
}
