package main

import (
	"github.com/spf13/cobra"

	"interviewcoach/internal/services/api/roles/domain"
	rolessvc "interviewcoach/internal/services/api/roles/service"
)

func (c *cli) rolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roles [name]",
		Short: "List job roles or print the keywords of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := rolessvc.New(c.res, domain.SourceEmbedded, nil, nil, c.log)
			if len(args) == 0 {
				l, err := svc.List(cmd.Context())
				if err != nil {
					return err
				}
				return c.print(l)
			}
			k, err := svc.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.print(k)
		},
	}
}
