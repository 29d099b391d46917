package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunExportThenImport_RoundTrips(t *testing.T) {
	accessGrp = "group1"
	quiet = true
	defer func() { accessGrp = "internal"; quiet = false }()

	path := filepath.Join(t.TempDir(), "registry.bin")
	require.NoError(t, runExport(path))
	require.NoError(t, runImport(path))
}
