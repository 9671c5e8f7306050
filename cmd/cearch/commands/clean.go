package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cearch/cearch/internal/constants"
	"github.com/cearch/cearch/internal/gitrepo"
	"github.com/cearch/cearch/internal/util"
	"github.com/spf13/cobra"
)

func NewCleanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Delete the repository's index and model cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			root, err := gitrepo.FindRoot(cwd)
			if err != nil {
				return err
			}
			dir := filepath.Join(root, constants.IndexDirName)
			// absent directory counts as success
			if err := util.RemoveDir(dir); err != nil {
				return err
			}
			fmt.Printf("cleaned %s\n", dir)
			return nil
		},
	}
	return cmd
}
