package main

import (
	"fmt"
	"os"

	"github.com/ganot/amrannot/internal/annotation"
	"github.com/ganot/amrannot/internal/metadata"
	"github.com/spf13/cobra"
)

var (
	aggregateKind string
	aggregateOut  string
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate <directory>",
	Short: "Merge all annotation files under a directory into one metadata table",
	Args:  cobra.ExactArgs(1),
	RunE:  runAggregate,
}

func init() {
	aggregateCmd.Flags().StringVar(&aggregateKind, "kind", "annotations", "report kind: annotations or mutations")
	aggregateCmd.Flags().StringVarP(&aggregateOut, "out", "o", "", "output file (default stdout)")
}

func runAggregate(cmd *cobra.Command, args []string) error {
	_, logger, err := setup()
	if err != nil {
		return err
	}
	kind, err := parseKind(aggregateKind)
	if err != nil {
		return err
	}

	dir, err := annotation.Open(args[0], kind)
	if err != nil {
		return err
	}
	logger.Info("aggregating annotations", "root", args[0], "kind", kind, "layout", dir.Layout)

	md, err := metadata.FromDirectory(dir)
	if err != nil {
		return err
	}
	logger.Info("aggregation complete", "rows", md.Len(), "columns", len(md.Columns()))

	out := cmd.OutOrStdout()
	if aggregateOut != "" {
		fh, err := os.Create(aggregateOut)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer fh.Close()
		out = fh
	}
	return md.WriteTSV(out)
}
