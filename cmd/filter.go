package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/civicgis/addrmatch/internal/report"
)

var (
	filterInput  string
	filterStatus string
	filterOutput string
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter a match-record file by classification status",
	RunE: func(cmd *cobra.Command, _ []string) error {
		records, err := report.ReadMatchCSV(filterInput)
		if err != nil {
			return eris.Wrap(err, "filter: read records")
		}
		zap.L().Info("source records read", zap.Int("records", records.Len()))

		filtered := records.Filter(filterStatus)
		zap.L().Info("records remaining",
			zap.String("status", filterStatus),
			zap.Int("records", filtered.Len()),
		)

		if err := report.WriteMatchCSV(filtered, filterOutput); err != nil {
			return err
		}
		zap.L().Info("output written", zap.String("path", filterOutput))
		return nil
	},
}

func init() {
	filterCmd.Flags().StringVar(&filterInput, "input", "", "path to a match-record CSV (required)")
	filterCmd.Flags().StringVar(&filterStatus, "status", "", "status to keep: matching, divergent, or missing (required)")
	filterCmd.Flags().StringVar(&filterOutput, "output", "filtered.csv", "output file path")
	_ = filterCmd.MarkFlagRequired("input")
	_ = filterCmd.MarkFlagRequired("status")
	rootCmd.AddCommand(filterCmd)
}
