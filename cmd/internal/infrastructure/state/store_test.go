package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNeedsProcessingShortCircuitsOnUnchangedFile(t *testing.T) {
	dir := t.TempDir()
	store := New(filepath.Join(dir, "state.json"))
	data := writeFile(t, dir, "data.xml", "<Certificates/>")

	first, err := store.NeedsProcessing(data)
	require.NoError(t, err)
	assert.True(t, first)

	second, err := store.NeedsProcessing(data)
	require.NoError(t, err)
	assert.False(t, second)
}

func TestNeedsProcessingDetectsContentChange(t *testing.T) {
	dir := t.TempDir()
	store := New(filepath.Join(dir, "state.json"))
	data := writeFile(t, dir, "data.xml", "v1")

	_, err := store.NeedsProcessing(data)
	require.NoError(t, err)

	writeFile(t, dir, "data.xml", "v2")
	changed, err := store.NeedsProcessing(data)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestNeedsProcessingToleratesCorruptState(t *testing.T) {
	dir := t.TempDir()
	statePath := writeFile(t, dir, "state.json", "{not json")
	store := New(statePath)
	data := writeFile(t, dir, "data.xml", "content")

	needs, err := store.NeedsProcessing(data)
	require.NoError(t, err)
	assert.True(t, needs)

	// The corrupt file was overwritten with a valid map.
	needs, err = store.NeedsProcessing(data)
	require.NoError(t, err)
	assert.False(t, needs)
}

func TestNeedsProcessingMissingSourceFileFails(t *testing.T) {
	dir := t.TempDir()
	store := New(filepath.Join(dir, "state.json"))

	_, err := store.NeedsProcessing(filepath.Join(dir, "absent.xml"))
	assert.Error(t, err)
}

func TestFingerprintSavedBeforeProcessing(t *testing.T) {
	dir := t.TempDir()
	statePath := filepath.Join(dir, "state.json")
	store := New(statePath)
	data := writeFile(t, dir, "data.xml", "content")

	_, err := store.NeedsProcessing(data)
	require.NoError(t, err)

	// The new fingerprint is persisted immediately, before the caller has a
	// chance to process anything.
	_, err = os.Stat(statePath)
	assert.NoError(t, err)
}
