package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/civicgis/addrmatch/internal/config"
	"github.com/civicgis/addrmatch/internal/source"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "addrmatch",
	Short: "Civic address reconciliation across GIS datasets",
	Long:  "Normalizes municipal, county, and shapefile address exports into one canonical model, then classifies every source address as Matching, Divergent, or Missing against a comparison dataset.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// schemaFor resolves the column-override schema for a dataset: an
// explicit --schema flag wins, otherwise the configured per-source
// file is used. Shapefiles carry county attribute columns.
func schemaFor(flagPath, sourceType string) (source.Schema, error) {
	path := flagPath
	if path == "" {
		switch sourceType {
		case "city":
			path = cfg.Schema.City
		case "county", "shp":
			path = cfg.Schema.County
		}
	}
	return source.LoadSchema(path)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
