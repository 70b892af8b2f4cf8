package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleState(id string) SessionState {
	return SessionState{
		SessionID:          id,
		Activity:           ActivityEditing,
		Personality:        "(⌐■_■) Code Wizard",
		CurrentJob:         "main.go",
		ConsecutiveActions: 3,
		ErrorCount:         1,
		LastUpdated:        time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	want := sampleState("abc-123")

	require.NoError(t, fs.Save(want))
	got, err := fs.Load("abc-123")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileStoreLoadMissing(t *testing.T) {
	fs := NewFileStore(t.TempDir())

	got, err := fs.Load("never-saved")
	require.NoError(t, err)
	assert.Equal(t, Default("never-saved"), got)
	assert.Equal(t, ActivityIdle, got.Activity)
	assert.Equal(t, BootPersonality, got.Personality)
	assert.Zero(t, got.ErrorCount)
	assert.Zero(t, got.ConsecutiveActions)
}

func TestFileStoreLoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(dir)

	require.NoError(t, os.WriteFile(fs.Path("bad"), []byte("{not json"), 0644))
	got, err := fs.Load("bad")
	require.NoError(t, err)
	assert.Equal(t, Default("bad"), got)
}

func TestFileStoreLoadPartialFields(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(dir)

	// Older files may miss fields; they default instead of erroring.
	require.NoError(t, os.WriteFile(fs.Path("old"), []byte(`{"error_count": 2}`), 0644))
	got, err := fs.Load("old")
	require.NoError(t, err)
	assert.Equal(t, uint32(2), got.ErrorCount)
	assert.Equal(t, "old", got.SessionID)
	assert.Equal(t, ActivityIdle, got.Activity)
	assert.Equal(t, BootPersonality, got.Personality)
}

func TestFileStoreResetErrors(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	st := sampleState("s1")
	st.ErrorCount = 4
	require.NoError(t, fs.Save(st))

	require.NoError(t, fs.ResetErrors("s1"))

	got, err := fs.Load("s1")
	require.NoError(t, err)
	assert.Zero(t, got.ErrorCount)

	st.ErrorCount = 0
	assert.Equal(t, st, got)
}

func TestFileStoreDelete(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	require.NoError(t, fs.Save(sampleState("s1")))

	require.NoError(t, fs.Delete("s1"))
	_, err := os.Stat(fs.Path("s1"))
	assert.True(t, os.IsNotExist(err))

	// Deleting a session that never existed is a no-op.
	require.NoError(t, fs.Delete("ghost"))
}

func TestFileStoreSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(dir)
	require.NoError(t, fs.Save(sampleState("s1")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(fs.Path("s1")), entries[0].Name())
}

func TestFileStorePathSanitizesID(t *testing.T) {
	fs := NewFileStore("/tmp")

	assert.Equal(t, "/tmp/persona_state_a_b_c.json", fs.Path("a/b:c"))
	assert.Equal(t, "/tmp/persona_state_unknown.json", fs.Path(""))
	assert.NotContains(t, filepath.Base(fs.Path("../../etc/passwd")), "/")
}

func TestMemStoreMatchesFileStoreSemantics(t *testing.T) {
	for name, store := range map[string]Store{
		"mem":  NewMemStore(),
		"file": NewFileStore(t.TempDir()),
	} {
		t.Run(name, func(t *testing.T) {
			got, err := store.Load("fresh")
			require.NoError(t, err)
			assert.Equal(t, Default("fresh"), got)

			st := sampleState("fresh")
			require.NoError(t, store.Save(st))
			got, err = store.Load("fresh")
			require.NoError(t, err)
			assert.Equal(t, st, got)

			require.NoError(t, store.ResetErrors("fresh"))
			got, err = store.Load("fresh")
			require.NoError(t, err)
			assert.Zero(t, got.ErrorCount)

			require.NoError(t, store.Delete("fresh"))
			require.NoError(t, store.Delete("fresh"))
			got, err = store.Load("fresh")
			require.NoError(t, err)
			assert.Equal(t, Default("fresh"), got)
		})
	}
}
