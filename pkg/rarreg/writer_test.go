package rarreg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_Overwrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, DefaultFileName)
	layout := narrowLayout()

	first := NewDocument(License{Username: "First"}, testFields(), layout)
	path, err := WriteFile(target, first, layout)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, target, path)

	second := NewDocument(License{Username: "Second"}, testFields(), layout)
	path, err = WriteFile(target, second, layout)
	require.NoError(t, err)
	assert.Equal(t, target, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, second.Render(layout.LineWidth), string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	layout := narrowLayout()
	doc := NewDocument(License{Username: "User"}, testFields(), layout)

	_, err := WriteFile(filepath.Join(t.TempDir(), "missing", DefaultFileName), doc, layout)
	assert.Error(t, err)
}

func TestWriteFile_DefaultName(t *testing.T) {
	dir := chdirTemp(t)
	layout := narrowLayout()
	doc := NewDocument(License{Username: "User"}, testFields(), layout)

	path, err := WriteFile("", doc, layout)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, DefaultFileName), path)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
