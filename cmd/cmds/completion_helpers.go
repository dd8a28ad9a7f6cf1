package cmds

import (
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/element"
	"github.com/carapace-sh/carapace"
)

// KindCompletion completes the entry kinds accepted by --kind.
func KindCompletion() carapace.Action {
	return carapace.ActionValues(element.SelectorNames...)
}

// OutputFormatCompletion completes the formats accepted by --output.
func OutputFormatCompletion() carapace.Action {
	return carapace.ActionValues("table", "json")
}

// DirectoryCompletion completes directories for package root arguments.
func DirectoryCompletion() carapace.Action {
	return carapace.ActionDirectories()
}

// PathCompletion completes files and directories.
func PathCompletion() carapace.Action {
	return carapace.ActionFiles()
}
