package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"curriculum-manager/core/reconcile"
	curriculumReconcile "curriculum-manager/feature/curriculum/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), 0o644))

	data, err := readDocument(nil, path)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data))

	data, err = readDocument(strings.NewReader("from stdin"), "-")
	require.NoError(t, err)
	assert.Equal(t, "from stdin", string(data))

	_, err = readDocument(nil, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestConfirmImport(t *testing.T) {
	assert.True(t, confirmImport(strings.NewReader("yes\n"), "d1"))
	assert.False(t, confirmImport(strings.NewReader("no\n"), "d1"))
	assert.False(t, confirmImport(strings.NewReader(""), "d1"))

	importYes = true
	defer func() { importYes = false }()
	assert.True(t, confirmImport(strings.NewReader(""), "d1"))
}

func TestPrintImportSummary(t *testing.T) {
	var buf bytes.Buffer
	printImportSummary(&buf, &curriculumReconcile.Summary{
		DomainUpdated: true,
		Competencies:  reconcile.Counter{Created: 1, Updated: 2},
	})

	out := buf.String()
	assert.Contains(t, out, "domain updated:    true")
	assert.Contains(t, out, "1 created, 2 updated")
	assert.Contains(t, out, "total writes:      4")
}
