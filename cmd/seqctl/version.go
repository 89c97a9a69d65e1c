package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/rangekit/version"
)

func newVersionCmd() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			if short {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), info.Short())
				return err
			}
			table := newTable(cmd.OutOrStdout(), nil)
			table.AppendBulk(info.Rows())
			table.Render()
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print only the version string")
	return cmd
}
