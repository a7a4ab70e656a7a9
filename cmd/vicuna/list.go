package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func listCmd(st *state) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List registered conversation templates",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cat, err := st.catalog()
			if err != nil {
				return err
			}
			w := cmd.Root().Writer
			names := cat.Names()
			_, _ = fmt.Fprintf(w, "Templates (%d):\n", len(names))
			for _, name := range names {
				tpl, err := cat.Get(name)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(w, "  %-24s %-20s %3d turns\n", name, tpl.Style, len(tpl.Messages))
			}
			return nil
		},
	}
}
