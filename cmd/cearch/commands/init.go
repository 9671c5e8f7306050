package commands

import (
	"github.com/cearch/cearch/cmd/cmdsfx"
	"github.com/cearch/cearch/internal/constants"
	"github.com/spf13/cobra"
)

func NewInitCommand() *cobra.Command {
	var embURL string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Prepare the index directory and pre-warm the embedding model",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd.Context(), embURL, false,
				func(runner *cmdsfx.CommandRunner) error {
					return runner.RunInit(cmd.Context())
				})
		},
	}

	cmd.Flags().StringVar(&embURL, "embed-url", constants.DefaultEmbedURL, "Embedding API URL")

	return cmd
}
