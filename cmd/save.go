package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/civicgis/addrmatch/internal/address"
	"github.com/civicgis/addrmatch/internal/source"
	"github.com/civicgis/addrmatch/internal/store"
)

var (
	saveSource      string
	saveSourceType  string
	saveDB          string
	saveSchema      string
	saveStandardize bool
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Persist a normalized dataset to the SQLite store",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		schema, err := schemaFor(saveSchema, "shp")
		if err != nil {
			return err
		}

		zap.L().Info("reading source addresses", zap.String("path", saveSource))
		records, err := source.LoadShapefile(saveSource, schema)
		if err != nil {
			return eris.Wrap(err, "save: load source")
		}
		addrs, dropped := source.GeoAddresses(records)
		zap.L().Info("source records converted",
			zap.Int("converted", len(addrs)),
			zap.Int("dropped", dropped),
		)
		if len(addrs) == 0 {
			zap.L().Warn("all records dropped, aborting save")
			return nil
		}

		if saveStandardize {
			list := make(address.Addresses, len(addrs))
			for i := range addrs {
				list[i] = addrs[i].Address
			}
			list = list.Standardize()
			for i := range addrs {
				addrs[i].Address = list[i]
			}
			zap.L().Info("addresses standardized")
		}

		dbPath := saveDB
		if dbPath == "" {
			dbPath = cfg.Store.Path
		}
		st, err := store.New(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Migrate(ctx); err != nil {
			return err
		}
		id, err := st.SaveDataset(ctx, saveSourceType, saveSource, addrs)
		if err != nil {
			return err
		}
		zap.L().Info("dataset saved",
			zap.String("dataset_id", id),
			zap.String("db", dbPath),
			zap.Int("addresses", len(addrs)),
		)
		return nil
	},
}

func init() {
	saveCmd.Flags().StringVar(&saveSource, "source", "", "path to source point shapefile (required)")
	saveCmd.Flags().StringVar(&saveSourceType, "source-type", "shp", "source dataset type tag recorded with the dataset")
	saveCmd.Flags().StringVar(&saveDB, "db", "", "SQLite database path (default from config)")
	saveCmd.Flags().StringVar(&saveSchema, "schema", "", "YAML column-override file for renamed exports")
	saveCmd.Flags().BoolVar(&saveStandardize, "standardize", false, "fold street and community names to title case before saving")
	_ = saveCmd.MarkFlagRequired("source")
	rootCmd.AddCommand(saveCmd)
}
