package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"simorgh/internal/core/apperror"
	"simorgh/internal/domain/holding"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Validate a JSON document and replace the stored one with it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := readSnapshot(args[0])
			if err != nil {
				return err
			}
			snap = holding.Dehydrate(holding.Hydrate(snap))
			if err := holding.Validate(snap); err != nil {
				return describe(err)
			}

			s, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.backend.Storage.Write(s.ctx, snap); err != nil {
				return fmt.Errorf("write document: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %s into %s storage\n", args[0], s.backend.Driver)
			return nil
		},
	}
	return cmd
}

// readSnapshot reads a document from path; "-" reads stdin.
func readSnapshot(path string) (holding.Snapshot, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return holding.Snapshot{}, err
		}
		defer f.Close()
		r = f
	}

	var snap holding.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return holding.Snapshot{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return snap, nil
}

// describe turns an AppError into a message that shows its details.
func describe(err error) error {
	appErr, ok := apperror.AsAppError(err)
	if !ok || len(appErr.Details) == 0 {
		return err
	}
	details, _ := json.Marshal(appErr.Details)
	return fmt.Errorf("%s: %s", appErr.Message, details)
}
