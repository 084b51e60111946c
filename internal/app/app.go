package app

import (
	"github.com/spf13/cobra"

	"github.com/TeriyakiSecky/android-sdk/internal/cli"
)

func BuildRoot() *cobra.Command {
	root := &cobra.Command{Use: "lint", Short: "Analyzes Android projects and files for correctness issues"}
	cli.AddCommands(root)
	return root
}
