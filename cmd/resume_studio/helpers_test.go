package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/types"
)

// getBinaryPath returns the path to the resume_studio binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "resume_studio"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

// writeTestDocument saves a populated document into dir and returns its
// file path together with the document itself.
func writeTestDocument(t *testing.T, dir string) (string, *types.Document) {
	t.Helper()

	doc := store.NewDocument("Test Resume")
	doc.Content = types.Resume{
		Personal: types.Personal{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Title:     "Software Engineer",
			Contact:   types.Contact{Email: "ada@example.com", Location: "London"},
		},
		Summary: "Engineer with a focus on analytical machines.",
		Experience: []types.ExperienceEntry{
			{
				ID:      "exp-1",
				Role:    "Lead Analyst",
				Company: "Analytical Engines Ltd",
				Period:  types.Period{Start: "2020-01", End: "present"},
				Tasks:   []string{"Designed the instruction set.", "Documented the loom."},
			},
			{
				ID:      "exp-2",
				Role:    "Analyst",
				Company: "Babbage & Co",
				Period:  types.Period{Start: "2017-03", End: "2019-12"},
				Tasks:   []string{"Tabulated Bernoulli numbers."},
			},
		},
		Education: []types.EducationEntry{
			{ID: "edu-1", Degree: "BSc Mathematics", School: "University of London", Period: types.Period{Start: "2013-09", End: "2017-06"}},
		},
		Skills:    []string{"Go", "PostgreSQL", "Typesetting"},
		Languages: []types.LanguageEntry{{ID: "lang-1", Name: "English", Level: "Native"}},
	}

	path := filepath.Join(dir, doc.ID+".json")
	require.NoError(t, store.SaveDocumentFile(path, doc))
	return path, doc
}
