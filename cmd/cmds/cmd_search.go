package cmds

import (
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/service"
	"github.com/SnapLib/npm-fs-sub000/pkg/output"
	"github.com/carapace-sh/carapace"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func NewSearchCommand() *cobra.Command {
	var (
		regex         bool
		caseSensitive bool
	)

	cmd := &cobra.Command{
		Use:   "search <file> <text>",
		Short: "Check whether a file contains text",
		Long: `Search a file for text. The text is matched literally and case-insensitively
unless --regex or --case-sensitive is given. Exits non-zero when nothing matches.

Examples:
  npm-fs search README.md "npm install"
  npm-fs search package.json '"version":\s*"1\.' --regex`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(args[0], args[1], regex, caseSensitive)
		},
	}

	cmd.Flags().BoolVar(&regex, "regex", false, "Treat text as a regular expression")
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "Match case exactly")
	carapace.Gen(cmd).PositionalCompletion(PathCompletion())

	return cmd
}

func runSearch(path, text string, regex, caseSensitive bool) error {
	packageService := service.NewPackageService(service.NewDeps())

	found, err := packageService.Search(service.SearchRequest{
		Path:          path,
		Query:         text,
		Regex:         regex,
		CaseSensitive: caseSensitive,
	})
	if err != nil {
		return err
	}

	if !found {
		return errors.Errorf("%q not found in %s", text, path)
	}
	output.PrintSuccess("Found %q in %s", text, path)
	return nil
}
