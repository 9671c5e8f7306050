package commands

import (
	"context"

	"github.com/cearch/cearch/internal/app/appfx"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cearch",
		Short:         "Codebase semantic search toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		NewIndexCommand(),
		NewInitCommand(),
		NewQueryCommand(),
		NewCleanCommand(),
		NewMCPCommand(),
	)
	return cmd
}

// runApp builds the fx graph with the given named config values and runs
// one invocation against it. The repository root is resolved from the
// working directory by configfx.
func runApp(ctx context.Context, embedURL string, readOnly bool, invoke any) error {
	app := fx.New(
		appfx.Module,
		fx.Supply(
			fx.Annotate("", fx.ResultTags(`name:"repoRoot"`)),
			fx.Annotate(embedURL, fx.ResultTags(`name:"embedURL"`)),
			fx.Annotate(readOnly, fx.ResultTags(`name:"readOnly"`)),
		),
		fx.NopLogger,
		fx.Invoke(invoke),
	)
	if err := app.Start(ctx); err != nil {
		return err
	}
	return app.Stop(ctx)
}
