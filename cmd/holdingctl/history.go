package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var (
		limit   uint64
		patches bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved revisions (postgres storage only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			if s.backend.History == nil {
				return errors.New("the " + s.backend.Driver + " storage keeps no history")
			}
			revisions, err := s.backend.History.History(s.ctx, limit)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "REVISION\tSAVED\tOPERATIONS\tSTORED")
			for _, r := range revisions {
				fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", r.Revision, r.CreatedAt.Format(time.RFC3339), r.Operations, r.CompressionAlgo)
				if patches {
					fmt.Fprintf(tw, "\t%s\n", r.Patch)
				}
			}
			return tw.Flush()
		},
	}
	cmd.Flags().Uint64Var(&limit, "limit", 20, "number of revisions to show; 0 for all")
	cmd.Flags().BoolVar(&patches, "patches", false, "print the reverse patch of every revision")
	return cmd
}
