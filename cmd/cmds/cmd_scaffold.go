package cmds

import (
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/service"
	"github.com/SnapLib/npm-fs-sub000/pkg/output"
	"github.com/carapace-sh/carapace"
	"github.com/spf13/cobra"
)

func NewScaffoldCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "scaffold [package-dir]",
		Short: "Create missing required package entries",
		Long: `Create the required directories and files a package root is missing and add
missing manifest keys with placeholder values. A missing package.json is
written as a minimal manifest named after the directory.

Existing entries are never overwritten.

Examples:
  npm-fs scaffold
  npm-fs scaffold ./packages/new --yes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScaffold(dirArg(args), yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Create everything without prompting")
	carapace.Gen(cmd).PositionalCompletion(DirectoryCompletion())

	return cmd
}

func runScaffold(dir string, yes bool) error {
	packageService := service.NewPackageService(service.NewDeps())

	result, err := packageService.Scaffold(dir, yes)
	if result != nil {
		for _, path := range result.Created {
			output.PrintSuccess("Created %s", path)
		}
		if result.PatchedManifest {
			output.PrintSuccess("Added missing manifest keys")
		}
		if err == nil && len(result.Created) == 0 && !result.PatchedManifest {
			output.PrintInfo("Nothing to scaffold")
		}
	}
	return err
}
