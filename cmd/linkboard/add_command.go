package main

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"linkboard/internal/catalog"
)

var websitePattern = regexp.MustCompile(`https?://(?:www\.)?([^/]+)`)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var record catalog.Record
	var duration, rate string
	var pos1, pos2, pos3 string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a record to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			record.Duration = catalog.Scalar(duration)
			record.Rate = catalog.Scalar(rate)
			record.Pos1 = catalog.Scalar(pos1)
			record.Pos2 = catalog.Scalar(pos2)
			record.Pos3 = catalog.Scalar(pos3)
			record.Website = websiteFromLink(record.MainLink)

			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			if err := store.Append(record); err != nil {
				return fmt.Errorf("add record: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added record to %s\n", store.Path())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&record.MainLink, "link", "", "Main link URL")
	flags.StringVar(&duration, "duration", "", "Duration in minutes")
	flags.StringVar(&rate, "rate", "", "Rating (1-10)")
	flags.StringVar(&record.Studio, "studio", "", "Studio")
	flags.StringVar(&record.CoreCat, "core-cat", "", "Core category")
	flags.StringVar(&record.Cat1, "cat1", "", "Category 1")
	flags.StringVar(&record.Cat2, "cat2", "", "Category 2")
	flags.StringVar(&record.Cat3, "cat3", "", "Category 3")
	flags.StringVar(&record.Cat4, "cat4", "", "Category 4")
	flags.StringVar(&record.Cat5, "cat5", "", "Category 5")
	flags.StringVar(&record.Cat6, "cat6", "", "Category 6")
	flags.StringVar(&record.GeneralTags, "tags", "", "General tags free text")
	flags.StringVar(&record.Star1, "star1", "", "Star 1")
	flags.StringVar(&record.Star2, "star2", "", "Star 2")
	flags.StringVar(&record.Star3, "star3", "", "Star 3")
	flags.StringVar(&pos1, "pos1", "", "Position 1")
	flags.StringVar(&pos2, "pos2", "", "Position 2")
	flags.StringVar(&pos3, "pos3", "", "Position 3")

	return cmd
}

// websiteFromLink extracts the host portion of the main link, matching the
// add-form autofill behavior. An unrecognized link yields an empty website.
func websiteFromLink(link string) string {
	match := websitePattern.FindStringSubmatch(link)
	if match == nil {
		return ""
	}
	return match[1]
}
