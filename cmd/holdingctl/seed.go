package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"simorgh/internal/domain/holding"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the bundled default document to storage",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			if !force {
				_, err := s.backend.Storage.Read(s.ctx)
				if err == nil {
					return errors.New("storage already holds a document; use --force to overwrite it")
				}
				if !errors.Is(err, holding.ErrNoDocument) {
					return err
				}
			}

			if err := s.backend.Storage.Write(s.ctx, holding.Dehydrate(holding.Default())); err != nil {
				return fmt.Errorf("write default document: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %s storage with the default document\n", s.backend.Driver)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing document")
	return cmd
}
