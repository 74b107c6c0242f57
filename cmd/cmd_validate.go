package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ResearchSync/internal/content"
	"ResearchSync/internal/service"
	"ResearchSync/internal/validation"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "只校验内嵌的竞争对手新闻，不连库",
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := content.SelectSpecs(content.Catalog, a.cfg.Reconcile.Subjects)
			if err != nil {
				return err
			}
			gate, err := validation.NewGate()
			if err != nil {
				return err
			}
			svc := service.NewReconcileService(nil, nil, content.Embedded(), specs, gate, a.logger)

			results, err := svc.Validate(cmd.Context())
			out := cmd.OutOrStdout()
			for _, r := range results {
				status := "OK"
				if !r.Passed {
					status = "FAILED"
				}
				fmt.Fprintf(out, "%s\t%s\trecords=%d\twarnings=%d\n", r.Ticker, status, r.Records, r.WarningCount())
				for _, v := range r.Violations {
					fmt.Fprintf(out, "  error   %s: %s\n", v.Path, v.Message)
				}
				for _, w := range r.Warnings {
					fmt.Fprintf(out, "  warning %s: %s\n", w.Path, w.Message)
				}
			}
			return err
		},
	}
}
