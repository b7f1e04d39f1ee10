package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"gst-rates/services"
	"gst-rates/storage"
)

func newBuildCommand(a *app) *cobra.Command {
	var (
		inputPath string
		csvPath   string
		postgres  bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the HSN lookup table from the extracted JSON",
		Long: `Normalizes HSN codes, parses the rate columns, resolves duplicate codes and
prints a summary of the resulting table. Optionally exports the table.

Example:
  gst-rates build
  gst-rates build --csv ./output/hsn_codes.csv --postgres`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := loadTable(a, inputPath)
			if err != nil {
				return err
			}

			summary := services.NewSummaryService(a.logger).WithOutput(a.out)
			summary.Print(summary.Generate(result))

			var writers []storage.CodeWriter
			defer func() {
				for _, w := range writers {
					_ = w.Close()
				}
			}()

			if csvPath != "" {
				w, err := storage.NewCSVWriter(csvPath)
				if err != nil {
					return err
				}
				writers = append(writers, w)
			}
			if postgres {
				w, err := storage.NewPostgresWriter(cmd.Context(), a.cfg.DSN(), a.logger)
				if err != nil {
					a.logger.Error("Make sure PostgreSQL is reachable (POSTGRES_HOST=%s)", a.cfg.PostgresHost)
					return err
				}
				writers = append(writers, w)
			}

			return exportCodes(cmd.Context(), a, result, writers)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", a.cfg.RatesJSONPath, "extracted JSON file to read")
	cmd.Flags().StringVar(&csvPath, "csv", "", "also export the table to this CSV file")
	cmd.Flags().BoolVar(&postgres, "postgres", false, "also publish the table to PostgreSQL (hsn_codes)")

	return cmd
}

func loadTable(a *app, inputPath string) (*services.BuildResult, error) {
	result, err := services.NewBuilder(a.logger).Load(storage.NewJSONStore(inputPath))
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	return result, nil
}

func exportCodes(ctx context.Context, a *app, result *services.BuildResult, writers []storage.CodeWriter) error {
	codes := result.Table.Codes()
	for _, w := range writers {
		if err := w.WriteCodes(ctx, codes); err != nil {
			return fmt.Errorf("build: export: %w", err)
		}
		a.logger.Info("[build] Exported %d codes via %T", len(codes), w)
	}
	return nil
}
