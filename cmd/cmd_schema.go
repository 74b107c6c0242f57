package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ResearchSync/internal/database"
	"ResearchSync/internal/model"
)

func newSchemaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "输出当前驱动下的建表语句",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.DryRun(a.cfg.Database)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			statements, err := model.DDL(db)
			if err != nil {
				return err
			}
			for _, s := range statements {
				fmt.Fprintln(cmd.OutOrStdout(), s)
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
