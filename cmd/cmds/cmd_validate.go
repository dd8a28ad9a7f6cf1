package cmds

import (
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/domain"
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/service"
	"github.com/SnapLib/npm-fs-sub000/pkg/output"
	"github.com/carapace-sh/carapace"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func NewValidateCommand() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "validate [package-dir]",
		Short: "Validate an npm package layout",
		Long: `Check a package root against the configured layout.

The layout is read from .npmfs.json in the package root, then from the user
config file, and falls back to the built-in npm layout. Missing required
entries or manifest keys make the command fail; missing optional entries are
only reported.

Examples:
  # Validate the current directory
  npm-fs validate

  # JSON report for CI
  npm-fs validate ./packages/core --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(dirArg(args), outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, json)")
	carapace.Gen(cmd).PositionalCompletion(DirectoryCompletion())
	carapace.Gen(cmd).FlagCompletion(carapace.ActionMap{"output": OutputFormatCompletion()})

	return cmd
}

func runValidate(dir, outputFormat string) error {
	deps := service.NewDeps()
	packageService := service.NewPackageService(deps)

	report, checkErr := packageService.Check(dir)
	if report == nil {
		return checkErr
	}

	switch outputFormat {
	case "json":
		if err := printJSON(report); err != nil {
			return err
		}
	case "table":
		printReport(report)
	default:
		return errors.Errorf("unknown output format: %s. Available formats: table, json", outputFormat)
	}

	return checkErr
}

func printReport(report *domain.Report) {
	output.PrintHeader("Package: %s", report.Root)
	if report.Name != "" {
		output.PrintInfo("%s@%s (%s)", report.Name, report.Version, humanize.Bytes(uint64(report.Size)))
	}

	if report.IsMissingRequired() {
		output.PrintError("Missing required structure:")
		output.PrintList(prefixed("dir  ", report.MissingRequiredDirs))
		output.PrintList(prefixed("file ", report.MissingRequiredFiles))
		output.PrintList(prefixed("key  ", report.MissingManifestKeys))
	} else {
		output.PrintSuccess("All required entries present")
	}

	if report.IsMissingOptional() {
		output.PrintWarning("Missing optional entries:")
		output.PrintList(prefixed("dir  ", report.MissingOptionalDirs))
		output.PrintList(prefixed("file ", report.MissingOptionalFiles))
	}
}

func prefixed(prefix string, names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, prefix+name)
	}
	return out
}
