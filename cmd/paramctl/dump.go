package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/paramkit/codec/schema"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the registry's structure as a JSON schema",
		Long: `The dump command renders the demonstration registry's group/leaf
structure via the schema codec. Access control is not enforced (§4.9).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump()
		},
	}
}

func runDump() error {
	root, err := demoRegistry()
	if err != nil {
		return fmt.Errorf("build registry: %w", err)
	}

	out, err := schema.Encode(root)
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}

	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
