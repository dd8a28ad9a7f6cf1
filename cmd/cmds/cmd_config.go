package cmds

import (
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/service"
	"github.com/SnapLib/npm-fs-sub000/pkg/output"
	"github.com/spf13/cobra"
)

func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the package layout configuration",
	}

	cmd.AddCommand(
		NewConfigInitCommand(),
		NewConfigShowCommand(),
	)

	return cmd
}

func NewConfigInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default layout to the user config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			packageService := service.NewPackageService(service.NewDeps())
			path, err := packageService.InitConfig(force)
			if err != nil {
				return err
			}
			output.PrintSuccess("Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func NewConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [package-dir]",
		Short: "Print the layout used for a package root",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			packageService := service.NewPackageService(service.NewDeps())
			layout, err := packageService.Config().Load(dirArg(args))
			if err != nil {
				return err
			}
			return printJSON(layout)
		},
	}
}
