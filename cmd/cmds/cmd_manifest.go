package cmds

import (
	"fmt"

	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/service"
	"github.com/carapace-sh/carapace"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func NewManifestCommand() *cobra.Command {
	var (
		key          string
		keysOnly     bool
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "manifest [package-dir]",
		Short: "Read package.json",
		Long: `Print the top-level entries of a package's package.json in document order.

--key accepts gjson path syntax, so nested values can be read directly.

Examples:
  npm-fs manifest
  npm-fs manifest --keys
  npm-fs manifest --key scripts.test`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runManifest(dirArg(args), key, keysOnly, outputFormat)
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Print a single value (gjson path)")
	cmd.Flags().BoolVar(&keysOnly, "keys", false, "Print only top-level keys")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, json)")
	carapace.Gen(cmd).PositionalCompletion(DirectoryCompletion())
	carapace.Gen(cmd).FlagCompletion(carapace.ActionMap{"output": OutputFormatCompletion()})

	return cmd
}

func runManifest(dir, key string, keysOnly bool, outputFormat string) error {
	packageService := service.NewPackageService(service.NewDeps())

	manifest, err := packageService.Manifest(dir)
	if err != nil {
		return err
	}

	if key != "" {
		value := manifest.Get(key)
		if !value.Exists() {
			return errors.Errorf("key %s not found in %s", key, manifest.Path())
		}
		fmt.Println(value.String())
		return nil
	}

	if keysOnly {
		for _, k := range manifest.Keys() {
			fmt.Println(k)
		}
		return nil
	}

	if outputFormat == "json" {
		values := make(map[string]interface{})
		for _, entry := range manifest.Entries() {
			values[entry.Key] = entry.Value
		}
		return printJSON(values)
	}

	for _, entry := range manifest.Entries() {
		fmt.Printf("  %-16s %v\n", entry.Key+":", entry.Value)
	}
	return nil
}
