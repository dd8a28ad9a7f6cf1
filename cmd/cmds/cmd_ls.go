package cmds

import (
	"fmt"

	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/element"
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/service"
	"github.com/carapace-sh/carapace"
	"github.com/spf13/cobra"
)

func NewListCommand() *cobra.Command {
	var (
		kind      string
		recursive bool
		absolute  bool
		count     bool
	)

	cmd := &cobra.Command{
		Use:   "ls [dir]",
		Short: "List directory entries",
		Long: `List the files and directories of a directory.

Recursive listings walk every subdirectory depth first and print entries
relative to the listed directory. Symbolic links to directories are listed
but never entered.

Examples:
  npm-fs ls
  npm-fs ls src --kind files --recursive
  npm-fs ls node_modules --kind dirs --count`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(dirArg(args), kind, recursive, absolute, count)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "all", "Entry kind (files, dirs, all)")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Walk subdirectories")
	cmd.Flags().BoolVar(&absolute, "absolute", false, "Print absolute paths")
	cmd.Flags().BoolVar(&count, "count", false, "Print only the number of entries")

	carapace.Gen(cmd).FlagCompletion(carapace.ActionMap{"kind": KindCompletion()})
	carapace.Gen(cmd).PositionalCompletion(DirectoryCompletion())

	return cmd
}

func runList(dir, kind string, recursive, absolute, count bool) error {
	selector, err := element.ParseSelector(kind)
	if err != nil {
		return err
	}

	packageService := service.NewPackageService(service.NewDeps())
	listing, err := packageService.List(service.ListRequest{
		Path:      dir,
		Selector:  selector,
		Recursive: recursive,
	})
	if err != nil {
		return err
	}

	if count {
		fmt.Println(listing.Count())
		return nil
	}

	entries := listing.Names
	if absolute {
		entries = listing.Paths
	}
	for _, entry := range entries {
		fmt.Println(entry)
	}
	return nil
}
