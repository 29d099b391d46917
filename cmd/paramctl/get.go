package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/paramkit/codec/text"
	"github.com/joshuapare/paramkit/param"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <dotted.path>",
		Short: "Read a parameter's current value as text",
		Long: `The get command resolves a dotted path against the demonstration
registry and prints its value using the text codec.

Example:
  paramctl get sensors.voltage
  paramctl get sensors.samples --group group1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args[0])
		},
	}
}

func runGet(path string) error {
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

	printVerbose("reading %s (id=0x%08x) as %s\n", path, n.GlobalID, accessGrp)

	rendered, err := text.EncodeToText(n, 0, g)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if jsonOut {
		return printJSON(map[string]any{"path": path, "id": n.GlobalID, "value": rendered})
	}
	printInfo("%s\n", rendered)
	return nil
}
