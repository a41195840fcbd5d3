package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"interviewcoach/internal/core/version"
)

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build and lexicon versions",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			b := version.Info()
			b.Service = app
			return c.print(b.WithLexicon(strconv.Itoa(c.res.Version)))
		},
	}
}
