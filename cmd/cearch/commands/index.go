package commands

import (
	"github.com/cearch/cearch/cmd/cmdsfx"
	"github.com/cearch/cearch/internal/constants"
	"github.com/spf13/cobra"
)

func NewIndexCommand() *cobra.Command {
	var (
		embURL string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Index the repository containing the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd.Context(), embURL, false,
				func(runner *cmdsfx.CommandRunner) error {
					return runner.RunIndex(cmd.Context(), force)
				})
		},
	}

	cmd.Flags().StringVar(&embURL, "embed-url", constants.DefaultEmbedURL, "Embedding API URL")
	cmd.Flags().BoolVar(&force, "force", false, "Re-index even when an index already exists")

	return cmd
}
