package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/paramkit/codec/text"
	"github.com/joshuapare/paramkit/param"
)

func init() {
	rootCmd.AddCommand(newSetCmd())
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <dotted.path> <value>",
		Short: "Write a parameter's value from text",
		Long: `The set command resolves a dotted path against the demonstration registry
and writes value to it via the text codec; only Scalars support this.

Example:
  paramctl set config.threshold 3.3 --group group1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args[0], args[1])
		},
	}
}

func runSet(path, value string) error {
	root, err := demoRegistry()
	if err != nil {
		return fmt.Errorf("build registry: %w", err)
	}

	g, err := resolveAccessGroup(accessGrp)
	if err != nil {
		return err
	}

	n := param.LookupParameterByName(root, path, '.')
	if n == nil {
		return fmt.Errorf("no parameter at path %q", path)
	}

	printVerbose("writing %s (id=0x%08x) as %s\n", path, n.GlobalID, accessGrp)

	if err := text.DecodeFromText(n, value, g); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if jsonOut {
		return printJSON(map[string]any{"path": path, "id": n.GlobalID, "success": true})
	}
	printInfo("set %s = %s\n", path, value)
	return nil
}
