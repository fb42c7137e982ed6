package main

import (
	"fmt"

	"github.com/TundexSki/coursework-backend/internal/export/domain/model"

	"github.com/spf13/cobra"
)

func newSeedCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace the lessons collection with the default catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()

			seeder, backend, err := a.container.LessonSeeder(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "🌱 Connected to %s, seeding lessons...\n", backend.DBName)

			n, err := seeder.Seed(cmd.Context(), model.SeedLessons())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "✅ Inserted %d lessons.\n", n)
			return nil
		},
	}
}
