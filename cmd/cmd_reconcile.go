package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ResearchSync/internal/service"
)

func newReconcileCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "清空并重建所有已登记标的的派生表",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc, closeDB, err := a.openService()
			if err != nil {
				return err
			}
			defer closeDB()

			report, runErr := svc.Run(ctx, service.TriggerCLI)
			if report != nil {
				if err := report.WriteSummary(cmd.OutOrStdout()); err != nil {
					return err
				}
			}
			return runErr
		},
	}
}
