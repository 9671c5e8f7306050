package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cearch/cearch/internal/constants"
	"github.com/cearch/cearch/internal/factory"
	"github.com/cearch/cearch/internal/gitrepo"
	"github.com/spf13/cobra"
)

func NewQueryCommand() *cobra.Command {
	var (
		embURL     string
		numResults int
		symbol     bool
	)

	cmd := &cobra.Command{
		Use:   "query <text>",
		Short: "Search the index: semantic (default) or exact symbol name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			root, err := gitrepo.FindRoot(cwd)
			if err != nil {
				return err
			}

			f := factory.NewComponentFactory(factory.ComponentConfig{
				RepoRoot: root,
				EmbedURL: embURL,
				ReadOnly: true,
			})

			if symbol {
				syms, err := f.CreateSymbolStore()
				if err != nil {
					return err
				}
				defer syms.Close() //nolint:errcheck
				hits, err := syms.FindByName(args[0])
				if err != nil {
					return err
				}
				for _, h := range hits {
					fmt.Printf("%s:%d %s %s\n", relativize(root, h.Path), h.Line, h.Kind, h.Name)
				}
				return nil
			}

			comps, err := f.CreateComponents()
			if err != nil {
				return err
			}
			defer comps.Cleanup() //nolint:errcheck

			hits, err := comps.Searcher.Search(cmd.Context(), args[0], numResults)
			if err != nil {
				return err
			}
			for _, h := range hits {
				fmt.Printf("%s:%d %s %.3f\n", relativize(root, h.Path), h.Line, h.Name, h.Distance)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&embURL, "embed-url", constants.DefaultEmbedURL, "Embedding API URL")
	cmd.Flags().
		IntVarP(&numResults, "num-results", "n", constants.DefaultNumResults, "Number of results")
	cmd.Flags().BoolVar(&symbol, "symbol", false, "Use exact symbol name search")

	return cmd
}

func relativize(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
