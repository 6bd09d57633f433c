package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"mixer/mixin"
)

func newStrategiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List composition strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Strategy", "Requires existing", "Order", "Awaited"})

			for _, s := range mixin.Strategies() {
				t.AppendRow(table.Row{s.String(), yesNo(s.Override() || s.Hook()), order(s), yesNo(s.Promisify())})
			}

			style := table.StyleLight
			style.Options.DrawBorder = false
			t.SetStyle(style)
			t.Render()

			return nil
		},
	}
}

func order(s mixin.Strategy) string {
	switch {
	case s.Override():
		return "replaces, previous as super"
	case s.Before():
		return "fragment, then previous"
	case s.After():
		return "previous, then fragment"
	default:
		return "new member"
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
