package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"linkboard/internal/catalog"
)

func newValuesCommand(ctx *commandContext) *cobra.Command {
	groups := catalog.FacetGroups()
	names := make([]string, len(groups))
	for i, group := range groups {
		names[i] = string(group)
	}

	return &cobra.Command{
		Use:   "values <group>",
		Short: "List the distinct selector values of a field group",
		Long: "List the distinct non-empty values of a selector field group, " +
			"one per line.\n\nGroups: " + strings.Join(names, ", "),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			group := catalog.FacetGroup(strings.ToLower(strings.TrimSpace(args[0])))
			known := false
			for _, g := range groups {
				if g == group {
					known = true
					break
				}
			}
			if !known {
				return fmt.Errorf("unknown group %q (want one of: %s)", args[0], strings.Join(names, ", "))
			}

			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			records, err := store.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, value := range catalog.Unique(records, group) {
				fmt.Fprintln(out, value)
			}
			return nil
		},
	}
}
