package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/civicgis/addrmatch/internal/address"
	"github.com/civicgis/addrmatch/internal/report"
	"github.com/civicgis/addrmatch/internal/source"
)

var (
	duplicatesSource     string
	duplicatesSourceType string
	duplicatesOutput     string
	duplicatesSchema     string
)

var duplicatesCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "Screen one dataset for duplicate address records",
	RunE: func(cmd *cobra.Command, _ []string) error {
		schema, err := schemaFor(duplicatesSchema, duplicatesSourceType)
		if err != nil {
			return err
		}

		records, err := source.Load(duplicatesSource, duplicatesSourceType, schema)
		if err != nil {
			return eris.Wrap(err, "duplicates: load source")
		}
		addrs, dropped := address.FromRecords(records)
		zap.L().Info("source records read",
			zap.Int("converted", len(addrs)),
			zap.Int("dropped", dropped),
		)

		zap.L().Info("screening addresses for duplicate records")
		dupes := addrs.Filter("duplicate")
		zap.L().Info("duplicate records", zap.Int("records", len(dupes)))

		if err := report.WriteAddressCSV(dupes, duplicatesOutput); err != nil {
			return err
		}
		zap.L().Info("output written", zap.String("path", duplicatesOutput))
		return nil
	},
}

func init() {
	duplicatesCmd.Flags().StringVar(&duplicatesSource, "source", "", "path to source dataset (required)")
	duplicatesCmd.Flags().StringVar(&duplicatesSourceType, "source-type", "", "source dataset type: city, county, or shp (required)")
	duplicatesCmd.Flags().StringVar(&duplicatesOutput, "output", "duplicates.csv", "output file path")
	duplicatesCmd.Flags().StringVar(&duplicatesSchema, "schema", "", "YAML column-override file for renamed exports")
	_ = duplicatesCmd.MarkFlagRequired("source")
	_ = duplicatesCmd.MarkFlagRequired("source-type")
	rootCmd.AddCommand(duplicatesCmd)
}
