package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"simorgh/internal/domain/department"
	"simorgh/internal/domain/orgchart"
)

func newTreeCmd(opts *rootOptions) *cobra.Command {
	var slug string

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print an organizational chart as an indented tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			snap, err := s.backend.Storage.Read(s.ctx)
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}
			s.store.Adopt(*snap)
			forest, err := orgchart.NewService(s.store).Forest(slug)
			if err != nil {
				return describe(err)
			}
			printForest(cmd.OutOrStdout(), forest)
			return nil
		},
	}
	cmd.Flags().StringVar(&slug, "company", orgchart.HoldingChart, "subsidiary slug; empty for the holding chart")
	return cmd
}

func printForest(w io.Writer, forest department.Forest) {
	if forest.Size() == 0 {
		fmt.Fprintln(w, "(empty chart)")
		return
	}
	for _, n := range department.Flatten(forest) {
		line := strings.Repeat("  ", n.Level) + n.Department.Name
		if n.Department.Manager != "" {
			line += " (" + n.Department.Manager + ")"
		}
		fmt.Fprintln(w, line)
	}
}
