package cmds

import (
	"fmt"

	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/element"
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/service"
	"github.com/carapace-sh/carapace"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func NewSizeCommand() *cobra.Command {
	var human bool

	cmd := &cobra.Command{
		Use:   "size [path]",
		Short: "Show the size of a file or directory",
		Long: `Print the size in bytes of a file, or the summed size of every file
below a directory.

Examples:
  npm-fs size
  npm-fs size node_modules --human`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSize(dirArg(args), human)
		},
	}

	cmd.Flags().BoolVarP(&human, "human", "H", false, "Print a human readable size")
	carapace.Gen(cmd).PositionalCompletion(PathCompletion())

	return cmd
}

func runSize(path string, human bool) error {
	packageService := service.NewPackageService(service.NewDeps())

	size, err := packageService.Size(path)
	if err != nil {
		return err
	}
	if size < 0 {
		return errors.Wrap(element.ErrPathDoesNotExist, path)
	}

	if human {
		fmt.Println(humanize.Bytes(uint64(size)))
		return nil
	}
	fmt.Println(size)
	return nil
}
