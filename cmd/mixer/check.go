package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mixer/internal/plan"
)

const (
	outputFlag      = "output"
	orderByDepsFlag = "order-by-dependencies"
	outputTable     = "table"
	outputYAML      = "yaml"
)

func (a *app) newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Lint and dry-run plan files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runCheck,
	}

	cmd.Flags().StringP(outputFlag, "o", a.env.Output, "output format: table or yaml")
	cmd.Flags().Bool(orderByDepsFlag, false, "install the members of one mixin in dependency order")

	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString(outputFlag)
	if output != outputTable && output != outputYAML {
		return fmt.Errorf("invalid output format: %s", output)
	}

	cfg := plan.DefaultConfig()
	cfg.OrderByDependencies, _ = cmd.Flags().GetBool(orderByDepsFlag)
	cfg.Logger = a.log

	checker := plan.NewChecker(cfg)
	reports := make([]*plan.Report, 0, len(args))
	failed := 0

	for _, path := range args {
		f, err := plan.LoadFile(path)
		if err != nil {
			return err
		}

		a.log.Info("checking plan", "file", path, "target", f.Target.Name)

		report := checker.Check(f)
		report.File = path

		if err := report.Diagnostics.Error(); err != nil {
			a.log.Warn("plan failed", "file", path, "err", err)

			failed++
		}

		reports = append(reports, report)
	}

	out := cmd.OutOrStdout()

	if output == outputYAML {
		if err := plan.WriteYAML(out, reports); err != nil {
			return err
		}
	} else {
		for _, r := range reports {
			if err := r.WriteTable(out); err != nil {
				return err
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d plan(s) failed", failed, len(reports))
	}

	return nil
}
