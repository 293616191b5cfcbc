// Command cookbookctl filters and inspects a recipe collection from the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/cookbook"
	"github.com/kailas-cloud/cookbook/internal/version"
)

type rootOptions struct {
	file string
	url  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "cookbookctl",
		Short:         "Browse and filter a recipe collection",
		Long:          "Loads a recipe document (built-in sample, file or URL) and queries it.",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&opts.file, "file", "", "recipe document on disk")
	root.PersistentFlags().StringVar(&opts.url, "url", "", "recipe document URL")
	root.MarkFlagsMutuallyExclusive("file", "url")

	root.AddCommand(newFilterCmd(opts), newTagsCmd(opts), newShowCmd(opts))
	return root
}

func (o *rootOptions) open(ctx context.Context) (*cookbook.Catalog, error) {
	var opts []cookbook.Option
	switch {
	case o.file != "":
		opts = append(opts, cookbook.WithFile(o.file))
	case o.url != "":
		opts = append(opts, cookbook.WithURL(o.url))
	}
	cat, err := cookbook.Open(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("open collection: %w", err)
	}
	return cat, nil
}

type filterOptions struct {
	query       string
	caloriesMin float64
	caloriesMax float64
	proteinMin  float64
	proteinMax  float64
	tags        []string
}

func newFilterCmd(root *rootOptions) *cobra.Command {
	fo := &filterOptions{}
	defaults := cookbook.DefaultCriteria()

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "List recipes matching text, ranges and tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := root.open(cmd.Context())
			if err != nil {
				return err
			}
			defer cat.Close()

			c := cat.Reset()
			c.SearchText = fo.query
			if cmd.Flags().Changed("calories-min") {
				c.Calories.Min = fo.caloriesMin
			}
			if cmd.Flags().Changed("calories-max") {
				c.Calories.Max = fo.caloriesMax
			}
			if cmd.Flags().Changed("protein-min") {
				c.Protein.Min = fo.proteinMin
			}
			if cmd.Flags().Changed("protein-max") {
				c.Protein.Max = fo.proteinMax
			}
			c.SelectedTags = fo.tags

			recipes, err := cat.Filter(c)
			if err != nil {
				return fmt.Errorf("filter: %w", err)
			}
			return printTable(cmd.OutOrStdout(), recipes)
		},
	}

	f := cmd.Flags()
	f.StringVar(&fo.query, "q", "", "case-insensitive text matched against name and tags")
	f.Float64Var(&fo.caloriesMin, "calories-min", defaults.Calories.Min, "minimum calories (inclusive)")
	f.Float64Var(&fo.caloriesMax, "calories-max", defaults.Calories.Max, "maximum calories (inclusive)")
	f.Float64Var(&fo.proteinMin, "protein-min", defaults.Protein.Min, "minimum protein grams (inclusive)")
	f.Float64Var(&fo.proteinMax, "protein-max", defaults.Protein.Max, "maximum protein grams (inclusive)")
	f.StringSliceVar(&fo.tags, "tag", nil, "tag to match; any selected tag matches (repeatable)")
	return cmd
}

func newTagsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "Print every tag in the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := root.open(cmd.Context())
			if err != nil {
				return err
			}
			defer cat.Close()

			tags, err := cat.Tags()
			if err != nil {
				return fmt.Errorf("tags: %w", err)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, t := range tags {
				fmt.Fprintf(w, "%s\t%s\n", t, cookbook.TagColor(t))
			}
			return w.Flush()
		},
	}
}

func newShowCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one recipe with ingredients, utensils and steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("id must be a positive integer, got %q", args[0])
			}

			cat, err := root.open(cmd.Context())
			if err != nil {
				return err
			}
			defer cat.Close()

			r, err := cat.Get(id)
			if errors.Is(err, cookbook.ErrNotFound) {
				return fmt.Errorf("recipe %d not found", id)
			}
			if err != nil {
				return err
			}
			printDetail(cmd.OutOrStdout(), r)
			return nil
		},
	}
}

func printTable(out io.Writer, recipes []cookbook.Recipe) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCALORIES\tPROTEIN\tTAGS")
	for _, r := range recipes {
		fmt.Fprintf(w, "%d\t%s\t%g\t%g\t%s\n", r.ID, r.Name, r.Calories, r.Protein, strings.Join(r.Tags, ", "))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	fmt.Fprintf(out, "%d recipe(s)\n", len(recipes))
	return nil
}

func printDetail(out io.Writer, r cookbook.Recipe) {
	fmt.Fprintf(out, "%s (#%d)\n", r.Name, r.ID)
	fmt.Fprintf(out, "Calories: %g  Protein: %gg\n", r.Calories, r.Protein)
	if len(r.Tags) > 0 {
		fmt.Fprintf(out, "Tags: %s\n", strings.Join(r.Tags, ", "))
	}

	printList(out, "Ingredients", r.Ingredients)
	printList(out, "Utensils", r.Utensils)

	if len(r.Procedure) > 0 {
		fmt.Fprintln(out, "\nProcedure:")
		for i, step := range r.Procedure {
			fmt.Fprintf(out, "  %d. %s\n", i+1, step)
		}
	}
}

func printList(out io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s:\n", title)
	for _, it := range items {
		fmt.Fprintf(out, "  - %s\n", it)
	}
}
