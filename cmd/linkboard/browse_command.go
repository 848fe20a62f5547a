package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"linkboard/internal/filter"
	"linkboard/internal/logging"
	"linkboard/internal/ordering"
	"linkboard/internal/render"
)

func newBrowseCommand(ctx *commandContext) *cobra.Command {
	var (
		durationMin int
		durationMax int
		ratingMin   float64
		ratingMax   float64
		coreCats    []string
		categories  []string
		actors      []string
		positions   []string
		studios     []string
		tags        string

		sortField     string
		durationOrder string
		ratingOrder   string

		view    string
		htmlOut bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Filter, sort, and display the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			criteria := filter.Criteria{
				DurationMin:     cfg.Browse.DurationMin,
				DurationMax:     cfg.Browse.DurationMax,
				RatingMin:       cfg.Browse.RatingMin,
				RatingMax:       cfg.Browse.RatingMax,
				CoreCategories:  coreCats,
				OtherCategories: categories,
				Actors:          actors,
				Positions:       positions,
				Studios:         studios,
				TagQuery:        tags,
			}
			if cmd.Flags().Changed("duration-min") {
				criteria.DurationMin = durationMin
			}
			if cmd.Flags().Changed("duration-max") {
				criteria.DurationMax = durationMax
			}
			if cmd.Flags().Changed("rating-min") {
				criteria.RatingMin = ratingMin
			}
			if cmd.Flags().Changed("rating-max") {
				criteria.RatingMax = ratingMax
			}

			primary, err := ordering.ParseField(sortField)
			if err != nil {
				return err
			}
			durationDir, err := ordering.ParseDirection(durationOrder)
			if err != nil {
				return err
			}
			ratingDir, err := ordering.ParseDirection(ratingOrder)
			if err != nil {
				return err
			}

			if view != "table" && view != "cards" {
				return fmt.Errorf("view: unsupported value %q (want \"table\" or \"cards\")", view)
			}

			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			records, err := store.Load()
			if err != nil {
				return err
			}

			filtered := filter.Apply(records, criteria)
			ordered := ordering.Apply(filtered, primary, durationDir, ratingDir)

			logger := logging.NewComponentLogger(logging.WithSession(ctx.ensureLogger()), "browse")
			logger.Info("browse complete",
				logging.Int("loaded", len(records)),
				logging.Int("matched", len(ordered)))

			out := cmd.OutOrStdout()
			switch {
			case jsonOut:
				return writeJSON(cmd, ordered)
			case htmlOut:
				fmt.Fprintln(out, render.HTMLTable(ordered))
				return nil
			}

			fmt.Fprintf(out, "%d result(s)\n", len(ordered))
			if len(ordered) == 0 {
				fmt.Fprintln(out, "No records match the filters.")
				return nil
			}

			if view == "cards" {
				fmt.Fprintln(out, render.Cards(ordered, stdoutIsTerminal()))
			} else {
				fmt.Fprintln(out, render.Table(ordered))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&durationMin, "duration-min", 0, "Minimum duration in minutes")
	flags.IntVar(&durationMax, "duration-max", 300, "Maximum duration in minutes")
	flags.Float64Var(&ratingMin, "rating-min", 1, "Minimum rating")
	flags.Float64Var(&ratingMax, "rating-max", 10, "Maximum rating")
	flags.StringArrayVar(&coreCats, "core-cat", nil, "Core category to match exactly (repeatable)")
	flags.StringArrayVar(&categories, "category", nil, "Other category to match, case-insensitive (repeatable)")
	flags.StringArrayVar(&actors, "actor", nil, "Actor that must appear among the stars; every given actor is required (repeatable)")
	flags.StringArrayVar(&positions, "position", nil, "Position to match; any given position suffices (repeatable)")
	flags.StringArrayVar(&studios, "studio", nil, "Studio to match exactly (repeatable)")
	flags.StringVar(&tags, "tags", "", "Comma-separated tag query; every token must appear in the record tags")
	flags.StringVar(&sortField, "sort", "none", "Priority sort field: duration, rating, or none")
	flags.StringVar(&durationOrder, "duration-order", "none", "Duration direction: asc, desc, or none")
	flags.StringVar(&ratingOrder, "rating-order", "none", "Rating direction: asc, desc, or none")
	flags.StringVar(&view, "view", "table", "Output view: table or cards")
	flags.BoolVar(&htmlOut, "html", false, "Emit the result as an escaped HTML table")
	flags.BoolVar(&jsonOut, "json", false, "Emit the result as JSON")

	return cmd
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
