// Command cli is the interactive todomini client.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/todomini/internal/client/cli"
	"github.com/dmitrijs2005/todomini/internal/client/config"
	"github.com/dmitrijs2005/todomini/internal/client/storage"
	"github.com/dmitrijs2005/todomini/internal/client/store"
	"github.com/dmitrijs2005/todomini/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("%v", err)
	}

}

func run(ctx context.Context, cfg *config.Config) error {
	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}
	if z, ok := logger.(*logging.ZapLogger); ok {
		defer z.Sync()
	}

	st, err := storage.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("storage init error: %w", err)
	}
	defer st.Close()

	s := store.New(st.Repo, cfg.StorageKey, logger)
	res, err := s.Hydrate(ctx)
	if err != nil {
		return fmt.Errorf("loading data: %w", err)
	}
	if res.Outcome == store.HydrationRecovered {
		fmt.Fprintln(os.Stderr, "Stored data could not be read, starting with an empty store.")
	}

	cli.NewApp(s, logger, os.Stdin, os.Stdout).Run(ctx)
	return nil
}
