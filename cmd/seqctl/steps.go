package main

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/kbukum/rangekit/internal/steps"
)

func newStepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "steps",
		Short: "List the steps and groupers understood by run",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderSteps(cmd.OutOrStdout())
			return nil
		},
	}
}

func renderSteps(w io.Writer) {
	table := newTable(w, []string{"Name", "Args", "Kind", "Summary"})
	for _, def := range steps.Default().List() {
		table.Append([]string{def.Name, def.Args, "step", def.Summary})
	}
	for _, def := range steps.Groupers().List() {
		table.Append([]string{def.Name, def.Args, "group", def.Summary})
	}
	table.Render()
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(true)
	if len(header) > 0 {
		table.SetHeader(header)
	}
	return table
}
