package main

import (
	"context"
	"time"

	"github.com/TundexSki/coursework-backend/internal/di"
	"github.com/TundexSki/coursework-backend/internal/export/config"
	"github.com/TundexSki/coursework-backend/internal/shared/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const closeTimeout = 10 * time.Second

// app holds what PersistentPreRunE builds for the subcommands
type app struct {
	settings  *config.Settings
	logger    logger.Logger
	container *di.Container

	// flag overrides
	projectRoot string
	logLevel    string
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "coursework-export",
		Short:         "Export the coursework database and API collection",
		Long:          `Snapshots the lessons and orders collections and a deployment-ready Postman collection into timestamped files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.projectRoot, "root", "", "project root directory (overrides EXPORT_PROJECT_ROOT)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides LOG_LEVEL)")

	root.AddCommand(newExportCommand(a))
	root.AddCommand(newFallbackCommand(a))
	root.AddCommand(newSeedCommand(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	// A missing process .env is fine; settings have defaults.
	_ = godotenv.Load()

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if a.projectRoot != "" {
		settings.ProjectRoot = a.projectRoot
	}
	if a.logLevel != "" {
		settings.Log.Level = a.logLevel
	}
	a.settings = settings
	a.logger = logger.New(settings.Log).WithComponent("cli")

	container, err := di.NewContainer(settings, a.logger, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	a.container = container
	return nil
}

func (a *app) close() error {
	if a.container == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	err := a.container.Close(ctx)
	a.container = nil
	return err
}
