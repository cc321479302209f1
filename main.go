// Phpref prints a reference of PHP language constructs.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"mibk.dev/phpref/catalog"
)

func main() {
	log.SetPrefix("phpref: ")
	log.SetFlags(0)
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "phpref",
		Short:         "Reference of PHP language constructs",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(out)
	root.AddCommand(newListCmd(), newCategoriesCmd(), newSearchCmd())
	return root
}

func newListCmd() *cobra.Command {
	var category string
	format := defaultFormat
	cmd := &cobra.Command{
		Use:   "list [--category NAME]",
		Short: "List constructs, optionally of a single category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := catalog.List()
			if cmd.Flags().Changed("category") {
				entries = catalog.FilterByCategory(category)
			}
			return printEntries(cmd.OutOrStdout(), entries, format)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list constructs of this `category`")
	cmd.Flags().Var(&format, "format", "output `format`: text, json, or yaml")
	return cmd
}

func newSearchCmd() *cobra.Command {
	format := defaultFormat
	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "List constructs whose snippet or note contains QUERY",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEntries(cmd.OutOrStdout(), catalog.Search(args[0]), format)
		},
	}
	cmd.Flags().Var(&format, "format", "output `format`: text, json, or yaml")
	return cmd
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List construct categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, c := range catalog.Categories() {
				if _, err := fmt.Fprintln(w, c); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
