package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"simorgh/internal/config"
	appctx "simorgh/internal/core/context"
	"simorgh/internal/domain/holding"
	"simorgh/internal/infrastructure/storage"
	"simorgh/pkg/logger"
)

type rootOptions struct {
	envFiles []string
	driver   string
	verbose  bool
}

// session is an opened storage backend plus the store over it.
type session struct {
	ctx     context.Context
	log     *logger.Logger
	backend *storage.Backend
	store   *holding.Store
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "holdingctl",
		Short:         "Manage the stored holding document",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", []string{".env"}, "env files to load")
	cmd.PersistentFlags().StringVar(&opts.driver, "driver", "", "override STORAGE_DRIVER")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log storage activity")

	cmd.AddCommand(
		newSeedCmd(opts),
		newExportCmd(opts),
		newImportCmd(opts),
		newTreeCmd(opts),
		newHistoryCmd(opts),
	)
	return cmd
}

// open loads configuration and connects the configured storage.
func (o *rootOptions) open(ctx context.Context) (*session, error) {
	cfg, err := config.Load(o.envFiles...)
	if err != nil {
		return nil, err
	}
	if o.driver != "" {
		cfg.Storage.Driver = o.driver
	}

	log := logger.Nop()
	if o.verbose {
		if log, err = logger.New(logger.Config{Level: "debug", Development: true, OutputPaths: []string{"stderr"}}); err != nil {
			return nil, err
		}
	}
	ctx = logger.WithLogger(appctx.WithTrace(ctx, appctx.NewTraceContext()), log)

	backend, err := storage.Open(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", cfg.Storage.Driver, err)
	}
	return &session{
		ctx:     ctx,
		log:     log,
		backend: backend,
		store:   holding.NewStore(backend.Storage, log),
	}, nil
}

func (s *session) Close() {
	s.backend.Close()
}
