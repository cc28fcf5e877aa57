package main

import (
	"github.com/ganot/amrannot/internal/annotation"
	"github.com/ganot/amrannot/internal/metadata"
	"github.com/ganot/amrannot/internal/sqlite"
	"github.com/spf13/cobra"
)

var (
	exportKind string
	exportDB   string
)

var exportCmd = &cobra.Command{
	Use:   "export <directory>",
	Short: "Aggregate a directory and store the result in a SQLite database",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportKind, "kind", "annotations", "report kind: annotations or mutations")
	exportCmd.Flags().StringVar(&exportDB, "db", "", "database path (default from config)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	kind, err := parseKind(exportKind)
	if err != nil {
		return err
	}

	dir, err := annotation.Open(args[0], kind)
	if err != nil {
		return err
	}
	md, err := metadata.FromDirectory(dir)
	if err != nil {
		return err
	}

	dbPath := cfg.DB.Path
	if exportDB != "" {
		dbPath = exportDB
	}
	db, err := sqlite.New(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.RunMigrations(); err != nil {
		return err
	}

	store := sqlite.NewMetadataStore(db)
	runID, err := store.Save(cmd.Context(), sqlite.Run{
		Source: args[0],
		Kind:   string(kind),
		Layout: string(dir.Layout),
	}, md)
	if err != nil {
		return err
	}

	logger.Info("export complete", "db", dbPath, "run_id", runID, "rows", md.Len())
	return nil
}
