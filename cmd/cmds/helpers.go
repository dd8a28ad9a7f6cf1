package cmds

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// dirArg returns the first positional argument or the current directory.
func dirArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal output to JSON")
	}
	fmt.Println(string(data))
	return nil
}
