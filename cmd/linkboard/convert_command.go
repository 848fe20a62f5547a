package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"linkboard/internal/catalog"
	"linkboard/internal/config"
	"linkboard/internal/convert"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <spreadsheet> [output]",
		Short: "Convert a spreadsheet (.xlsx or .csv) into a catalog file",
		Long: "Convert a spreadsheet into the catalog JSON format. Column headers " +
			"map onto record field names verbatim. The output defaults to the " +
			"configured catalog path and is overwritten whole.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			input, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			output := cfg.Catalog.Path
			if len(args) == 2 {
				if output, err = config.ExpandPath(args[1]); err != nil {
					return err
				}
			}

			records, err := convert.Read(input, ctx.ensureLogger())
			if err != nil {
				return fmt.Errorf("convert %s: %w", input, err)
			}

			store := catalog.NewStore(output, ctx.ensureLogger())
			if err := store.Save(records); err != nil {
				return fmt.Errorf("write catalog: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Converted %d record(s) to %s\n", len(records), output)
			return nil
		},
	}
}
