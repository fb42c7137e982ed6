package main

import (
	"github.com/TundexSki/coursework-backend/internal/export/adapter/driver"
	"github.com/TundexSki/coursework-backend/internal/export/adapter/shell"

	"github.com/spf13/cobra"
)

func newExportCommand(a *app) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export collections from the live database and rewrite the Postman collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()

			strategy, err := a.container.LiveStrategy(source)
			if err != nil {
				return err
			}
			_, err = a.container.Orchestrator().Run(cmd.Context(), strategy)
			return err
		},
	}
	cmd.Flags().StringVar(&source, "source", shell.SourceName,
		"record source: "+shell.SourceName+" (query shell) or "+driver.SourceName+" (native driver)")
	return cmd
}

func newFallbackCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fallback",
		Short: "Copy the existing export files under new timestamped names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()

			_, err := a.container.Orchestrator().Run(cmd.Context(), a.container.FallbackStrategy())
			return err
		},
	}
}
