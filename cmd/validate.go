package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/puzzplan/internal/catalog"
	"github.com/papapumpkin/puzzplan/internal/config"
	"github.com/papapumpkin/puzzplan/internal/ui"
)

// errInvalidCatalog is returned after validate has already printed the
// replay failure.
var errInvalidCatalog = errors.New("catalog is invalid")

var validateCmd = &cobra.Command{
	Use:   "validate [catalog]...",
	Short: "Check that catalogs replay cleanly",
	Long: `Replays each catalog (default: the configured one) and reports the first
definition or placement that fails.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	out := ui.NewWithWriter(cmd.OutOrStdout(), cfg.Color)

	paths := args
	if len(paths) == 0 {
		paths = []string{cfg.Catalog}
	}

	ok := true
	for _, path := range paths {
		f, err := catalog.Load(path)
		if err == nil {
			n, buildErr := catalog.Build(f)
			if buildErr == nil {
				out.Valid(path, n)
				continue
			}
			err = buildErr
		}
		out.Invalid(path, err)
		ok = false
	}
	if !ok {
		return errInvalidCatalog
	}
	return nil
}
