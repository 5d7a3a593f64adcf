package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/civicgis/addrmatch/internal/address"
	"github.com/civicgis/addrmatch/internal/source"
)

var (
	orphansSource       string
	orphansSourceType   string
	orphansTarget       string
	orphansTargetType   string
	orphansSourceSchema string
	orphansTargetSchema string
)

var orphansCmd = &cobra.Command{
	Use:   "orphans",
	Short: "List streets present in the source dataset but absent from the target",
	RunE: func(cmd *cobra.Command, _ []string) error {
		srcSchema, err := schemaFor(orphansSourceSchema, orphansSourceType)
		if err != nil {
			return err
		}
		tgtSchema, err := schemaFor(orphansTargetSchema, orphansTargetType)
		if err != nil {
			return err
		}

		srcRecords, err := source.Load(orphansSource, orphansSourceType, srcSchema)
		if err != nil {
			return eris.Wrap(err, "orphans: load source")
		}
		srcAddrs, dropped := address.FromRecords(srcRecords)
		zap.L().Info("source records read",
			zap.Int("converted", len(srcAddrs)),
			zap.Int("dropped", dropped),
		)

		tgtRecords, err := source.Load(orphansTarget, orphansTargetType, tgtSchema)
		if err != nil {
			return eris.Wrap(err, "orphans: load target")
		}
		tgtAddrs, dropped := address.FromRecords(tgtRecords)
		zap.L().Info("exclusion records read",
			zap.Int("converted", len(tgtAddrs)),
			zap.Int("dropped", dropped),
		)

		orphans := srcAddrs.OrphanStreets(tgtAddrs)
		zap.L().Info("orphan streets found", zap.Int("streets", len(orphans)))
		for _, street := range orphans {
			zap.L().Info("orphan street", zap.String("street", street))
		}
		return nil
	},
}

func init() {
	orphansCmd.Flags().StringVar(&orphansSource, "source", "", "path to source dataset (required)")
	orphansCmd.Flags().StringVar(&orphansSourceType, "source-type", "", "source dataset type: city, county, or shp (required)")
	orphansCmd.Flags().StringVar(&orphansTarget, "target", "", "path to comparison dataset (required)")
	orphansCmd.Flags().StringVar(&orphansTargetType, "target-type", "", "comparison dataset type: city, county, or shp (required)")
	orphansCmd.Flags().StringVar(&orphansSourceSchema, "source-schema", "", "YAML column-override file for the source dataset")
	orphansCmd.Flags().StringVar(&orphansTargetSchema, "target-schema", "", "YAML column-override file for the comparison dataset")
	_ = orphansCmd.MarkFlagRequired("source")
	_ = orphansCmd.MarkFlagRequired("source-type")
	_ = orphansCmd.MarkFlagRequired("target")
	_ = orphansCmd.MarkFlagRequired("target-type")
	rootCmd.AddCommand(orphansCmd)
}
