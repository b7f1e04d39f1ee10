package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"gst-rates/models"
	"gst-rates/scraper/cbic"
	"gst-rates/storage"
)

func newExtractCommand(a *app) *cobra.Command {
	var (
		sourcePath string
		outputPath string
		pageURL    string
		save       bool
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract the goods-rate table from the CBIC rates page into JSON",
		Long: `Reads the saved CBIC rates page (or renders it live with --url), extracts
every row of the goods table and writes them as a JSON array.

Example:
  gst-rates extract --source ./rates.html --output ./data/gst-goods-rates.json
  gst-rates extract --url ` + cbic.DefaultRatesURL + ` --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			extractor := cbic.NewExtractor(a.cfg.TableSelector, a.logger)

			var (
				records []models.RawGoodsRateRecord
				err     error
			)
			if pageURL != "" {
				html, renderErr := cbic.NewFetcher(a.cfg, a.logger).Render(cmd.Context(), pageURL)
				if renderErr != nil {
					return renderErr
				}
				if save {
					if err := saveSnapshot(sourcePath, html); err != nil {
						return err
					}
					a.logger.Info("[extract] Saved rendered page to %s", sourcePath)
				}
				records, err = extractor.Extract(strings.NewReader(html))
			} else {
				a.logger.Debug("[extract] Reading %s", sourcePath)
				records, err = extractor.ExtractFile(sourcePath)
			}
			if err != nil {
				return fmt.Errorf("extract: %w", err)
			}

			if err := storage.NewJSONStore(outputPath).WriteRecords(records); err != nil {
				return fmt.Errorf("extract: %w", err)
			}

			fmt.Fprintf(a.out, "Extracted %d GST goods rate entries to %s\n", len(records), absPath(outputPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&sourcePath, "source", a.cfg.SourceHTMLPath, "saved HTML page to read")
	cmd.Flags().StringVarP(&outputPath, "output", "o", a.cfg.RatesJSONPath, "JSON file to write")
	cmd.Flags().StringVar(&pageURL, "url", a.cfg.SourceURL, "render this page with headless Chrome instead of reading --source")
	cmd.Flags().BoolVar(&save, "save", false, "with --url, also write the rendered HTML to --source")

	return cmd
}

func saveSnapshot(path, html string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("extract: create snapshot dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("extract: save snapshot: %w", err)
	}
	return nil
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
