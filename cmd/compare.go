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
	compareSource         string
	compareSourceType     string
	compareTarget         string
	compareTargetType     string
	compareOutput         string
	compareFormat         string
	compareWorkers        int
	compareIncludeRetired bool
	compareSourceSchema   string
	compareTargetSchema   string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Classify every source address against a comparison dataset",
	Long: `Reads a source and a target dataset, converts both to the canonical
address model, and classifies each source address as Matching,
Divergent (same unit, drifted secondary attributes), or Missing.

Retired source records are excluded by default; pass --include-retired
to classify them too.

Examples:
  addrmatch compare --source city.csv --source-type city \
    --target county.csv --target-type county --output matches.csv

  addrmatch compare --source city.csv --source-type city \
    --target county.csv --target-type county \
    --output matches.xlsx --format xlsx --workers 8`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		srcSchema, err := schemaFor(compareSourceSchema, compareSourceType)
		if err != nil {
			return err
		}
		tgtSchema, err := schemaFor(compareTargetSchema, compareTargetType)
		if err != nil {
			return err
		}

		zap.L().Info("reading source records", zap.String("path", compareSource))
		srcRecords, err := source.Load(compareSource, compareSourceType, srcSchema)
		if err != nil {
			return eris.Wrap(err, "compare: load source")
		}
		srcAddrs, dropped := address.FromRecords(srcRecords)
		zap.L().Info("source records converted",
			zap.Int("converted", len(srcAddrs)),
			zap.Int("dropped", dropped),
		)

		includeRetired := compareIncludeRetired
		if !cmd.Flags().Changed("include-retired") {
			includeRetired = cfg.Compare.IncludeRetired
		}
		if !includeRetired {
			before := len(srcAddrs)
			srcAddrs = srcAddrs.ExcludeRetired()
			zap.L().Info("removed retired addresses from source",
				zap.Int("before", before),
				zap.Int("after", len(srcAddrs)),
			)
		}

		zap.L().Info("reading target records", zap.String("path", compareTarget))
		tgtRecords, err := source.Load(compareTarget, compareTargetType, tgtSchema)
		if err != nil {
			return eris.Wrap(err, "compare: load target")
		}

		workers := compareWorkers
		if workers <= 0 {
			workers = cfg.Compare.Workers
		}
		zap.L().Info("comparing records", zap.Int("workers", workers))
		records := address.Compare(srcAddrs.Records(), tgtRecords, workers)
		zap.L().Info("records categorized",
			zap.Int("records", records.Len()),
			zap.Int("matching", records.Filter("matching").Len()),
			zap.Int("divergent", records.Filter("divergent").Len()),
			zap.Int("missing", records.Filter("missing").Len()),
		)

		if compareFormat == "xlsx" {
			if err := report.WriteMatchXLSX(records, compareOutput); err != nil {
				return err
			}
		} else {
			if err := report.WriteMatchCSV(records, compareOutput); err != nil {
				return err
			}
		}
		zap.L().Info("output written", zap.String("path", compareOutput))
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareSource, "source", "", "path to source dataset (required)")
	compareCmd.Flags().StringVar(&compareSourceType, "source-type", "", "source dataset type: city, county, or shp (required)")
	compareCmd.Flags().StringVar(&compareTarget, "target", "", "path to comparison dataset (required)")
	compareCmd.Flags().StringVar(&compareTargetType, "target-type", "", "comparison dataset type: city, county, or shp (required)")
	compareCmd.Flags().StringVar(&compareOutput, "output", "matches.csv", "output file path")
	compareCmd.Flags().StringVar(&compareFormat, "format", "csv", "output format: csv or xlsx")
	compareCmd.Flags().IntVar(&compareWorkers, "workers", 0, "comparison workers (0 = config default)")
	compareCmd.Flags().BoolVar(&compareIncludeRetired, "include-retired", false, "keep retired source addresses in the comparison")
	compareCmd.Flags().StringVar(&compareSourceSchema, "source-schema", "", "YAML column-override file for the source dataset")
	compareCmd.Flags().StringVar(&compareTargetSchema, "target-schema", "", "YAML column-override file for the comparison dataset")
	_ = compareCmd.MarkFlagRequired("source")
	_ = compareCmd.MarkFlagRequired("source-type")
	_ = compareCmd.MarkFlagRequired("target")
	_ = compareCmd.MarkFlagRequired("target-type")
	rootCmd.AddCommand(compareCmd)
}
