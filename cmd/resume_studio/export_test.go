package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCommand_WritesPDFs(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	docDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")

	pathA, docA := writeTestDocument(t, docDir)
	pathB, docB := writeTestDocument(t, docDir)

	cmd := exec.Command(binaryPath, "export", pathA, pathB, "--out", outDir, "--workers", "2")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "command should succeed: %s", string(output))
	assert.Contains(t, string(output), "Exported 2 document(s) to "+outDir)

	for _, id := range []string{docA.ID, docB.ID} {
		pdf, err := os.ReadFile(filepath.Join(outDir, id+".pdf"))
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")), "output should be a PDF")
	}
}

func TestExportCommand_MissingInput(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "export", "/nonexistent/document.json", "--out", t.TempDir())
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to load")
}

func TestExportCommand_RequiresArgs(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "export")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "requires at least 1 arg")
}
