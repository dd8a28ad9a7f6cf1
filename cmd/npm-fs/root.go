package main

import (
	"github.com/SnapLib/npm-fs-sub000/cmd/cmds"
	"github.com/SnapLib/npm-fs-sub000/pkg/output"
	"github.com/go-go-golems/glazed/pkg/cmds/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/carapace-sh/carapace"
	clay "github.com/go-go-golems/clay/pkg"
)

var rootCmd = &cobra.Command{
	Use:   "npm-fs",
	Short: "Inspect and validate npm package directories",
	Long: `npm-fs checks that a directory is laid out like an npm package and offers
read-only queries over its files and directories.

Features:
- Validate required and optional entries of a package root
- List directory entries, optionally recursively
- Compute file and directory sizes
- Read package.json keys and values
- Search file contents
- Create missing required entries

Examples:
  # Validate the package in the current directory
  npm-fs validate

  # List every file below src
  npm-fs ls src --kind files --recursive

  # Show the size of node_modules
  npm-fs size node_modules --human
  `,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitLoggerFromViper()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	err := clay.InitViper("npm-fs", rootCmd)
	if err != nil {
		output.PrintError("Failed to initialize configuration: %v", err)
		log.Fatal().Err(err).Msg("Failed to initialize Viper")
	}

	rootCmd.AddCommand(
		cmds.NewValidateCommand(),
		cmds.NewListCommand(),
		cmds.NewSizeCommand(),
		cmds.NewManifestCommand(),
		cmds.NewSearchCommand(),
		cmds.NewScaffoldCommand(),
		cmds.NewConfigCommand(),
	)

	carapace.Gen(rootCmd)
}
