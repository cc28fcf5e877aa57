package main

import (
	"errors"
	"fmt"

	"github.com/ganot/amrannot/internal/annotation"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file...>",
	Short: "Check annotation files against the canonical header",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		err := annotation.Format{Path: path}.Validate()
		if err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			continue
		}

		var verr *annotation.ValidationError
		if !errors.As(err, &verr) {
			// I/O problems abort immediately, a bad header is reported.
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
		failed++
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(args))
	}
	return nil
}
