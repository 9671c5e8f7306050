package commands

import (
	"github.com/cearch/cearch/cmd/cmdsfx"
	"github.com/cearch/cearch/internal/constants"
	"github.com/spf13/cobra"
)

func NewMCPCommand() *cobra.Command {
	var (
		embURL    string
		transport string
		address   string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the index over the Model Context Protocol",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd.Context(), embURL, false,
				func(runner *cmdsfx.CommandRunner) error {
					return runner.RunMCPServer(transport, address)
				})
		},
	}

	cmd.Flags().StringVar(&embURL, "embed-url", constants.DefaultEmbedURL, "Embedding API URL")
	cmd.Flags().
		StringVar(&transport, "transport", "stdio", "MCP transport (stdio, http, sse)")
	cmd.Flags().StringVar(&address, "address", "", "Listen address for http/sse transports")

	return cmd
}
