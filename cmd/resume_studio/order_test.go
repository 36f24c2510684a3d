package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/types"
)

func TestOrderCommand_Sections(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	docPath, _ := writeTestDocument(t, t.TempDir())

	cmd := exec.Command(binaryPath, "order", "--file", docPath, "--sections", "skills,summary")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "command should succeed: %s", string(output))
	assert.Contains(t, string(output), "Section order: skills, summary")

	doc, err := store.LoadDocumentFile(docPath)
	require.NoError(t, err)
	require.Len(t, doc.SectionOrder, len(types.CanonicalSectionOrder()))
	assert.Equal(t, types.SectionSkills, doc.SectionOrder[0])
	assert.Equal(t, types.SectionSummary, doc.SectionOrder[1])
}

func TestOrderCommand_Entry(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	docPath, _ := writeTestDocument(t, t.TempDir())

	cmd := exec.Command(binaryPath, "order", "--file", docPath, "--entry", "experience:exp-2", "--to", "0")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "command should succeed: %s", string(output))
	assert.Contains(t, string(output), "Moved experience entry exp-2 to position 0")

	doc, err := store.LoadDocumentFile(docPath)
	require.NoError(t, err)
	require.Len(t, doc.Content.Experience, 2)
	assert.Equal(t, "exp-2", doc.Content.Experience[0].ID)
	assert.Equal(t, "exp-1", doc.Content.Experience[1].ID)
}

func TestOrderCommand_EntryUnknownID(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	docPath, _ := writeTestDocument(t, t.TempDir())

	cmd := exec.Command(binaryPath, "order", "--file", docPath, "--entry", "experience:missing", "--to", "0")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "no entry with this id")
}

func TestOrderCommand_RequiresExactlyOneMode(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	docPath, _ := writeTestDocument(t, t.TempDir())

	cmd := exec.Command(binaryPath, "order", "--file", docPath)
	output, err := cmd.CombinedOutput()
	assert.Error(t, err)
	assert.Contains(t, string(output), "exactly one of --sections or --entry")

	cmd = exec.Command(binaryPath, "order", "--file", docPath,
		"--sections", "summary", "--entry", "experience:exp-1", "--to", "0")
	output, err = cmd.CombinedOutput()
	assert.Error(t, err)
	assert.Contains(t, string(output), "exactly one of --sections or --entry")
}

func TestOrderCommand_EntryRequiresTo(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	docPath, _ := writeTestDocument(t, t.TempDir())

	cmd := exec.Command(binaryPath, "order", "--file", docPath, "--entry", "experience:exp-1")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--to is required with --entry")
}
