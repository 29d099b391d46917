package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/paramkit/codec/stream"
)

func init() {
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newImportCmd())
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write every leaf's current value to file via the stream codec",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args[0])
		},
	}
}

func runExport(path string) error {
	root, err := demoRegistry()
	if err != nil {
		return fmt.Errorf("build registry: %w", err)
	}
	g, err := resolveAccessGroup(accessGrp)
	if err != nil {
		return err
	}

	if err := stream.EncodeToFile(root, path, g); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	printInfo("exported registry to %s\n", path)
	return nil
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Read values from file into the registry via the stream codec",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(args[0])
		},
	}
}

func runImport(path string) error {
	root, err := demoRegistry()
	if err != nil {
		return fmt.Errorf("build registry: %w", err)
	}
	g, err := resolveAccessGroup(accessGrp)
	if err != nil {
		return err
	}

	n, err := stream.DecodeFromFile(root, path, g)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	printInfo("imported %d bytes from %s\n", n, path)
	return nil
}
