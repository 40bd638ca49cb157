package filterstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/poetis/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewStore_LoadsDocument(t *testing.T) {
	path := writeFile(t, t.TempDir(), "mods.yaml", sampleYAML)

	store, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, path, store.Path())

	cfg, err := store.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.ModCount())
}

func TestNewStore_MissingFile(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "missing.xml"))

	assert.Nil(t, store)
	assert.ErrorIs(t, err, domain.ErrInvalidFilterConfiguration)
}

func TestStore_SnapshotIsIndependent(t *testing.T) {
	path := writeFile(t, t.TempDir(), "mods.xml", sampleXML)
	store, err := NewStore(path)
	require.NoError(t, err)

	first, err := store.Snapshot()
	require.NoError(t, err)
	first.SetCommon(domain.CategoryArmour, "x to strength", 10)

	second, err := store.Snapshot()
	require.NoError(t, err)
	assert.False(t, second.Has(domain.CategoryArmour))
}

func TestStore_Reload(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "mods.yaml", sampleYAML)
	store, err := NewStore(path)
	require.NoError(t, err)

	writeFile(t, dir, "mods.yaml", "armour:\n  helmet:\n    - \"+80 to maximum Life\"\n")
	require.NoError(t, store.Reload())

	cfg, err := store.Snapshot()
	require.NoError(t, err)
	assert.True(t, cfg.Has(domain.CategoryArmour))
	assert.False(t, cfg.Has(domain.CategoryAccessory))
}

func TestStore_ReloadKeepsPreviousOnError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "mods.yaml", sampleYAML)
	store, err := NewStore(path)
	require.NoError(t, err)

	writeFile(t, dir, "mods.yaml", "accessory: [")
	err = store.Reload()
	assert.ErrorIs(t, err, domain.ErrInvalidFilterConfiguration)

	cfg, err := store.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.ModCount())
}

func TestStaticStore(t *testing.T) {
	empty := NewStaticStore(nil)
	_, err := empty.Snapshot()
	assert.ErrorIs(t, err, domain.ErrInvalidFilterConfiguration)
	assert.NoError(t, empty.Reload())

	cfg := domain.NewFilterConfig()
	cfg.SetCommon(domain.CategoryAccessory, "x to maximum life", 40)
	store := NewStaticStore(cfg)

	got, err := store.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 1, got.ModCount())
}
