package adapter

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "excgen.dev/pkg/excgen/internal/model"
)

func writeShard(t *testing.T, store ShardStore, path m.Path, content string) {
	t.Helper()

	file, err := store.Create(path)
	require.NoError(t, err)

	_, err = io.WriteString(file, content)
	require.NoError(t, err)
	require.NoError(t, file.Close())
}

func TestFSShardStore_CreateReadExists(t *testing.T) {
	store := NewMemoryShardStore()

	exists, err := store.Exists("out/shard-1.js")
	require.NoError(t, err)
	assert.False(t, exists)

	writeShard(t, store, "out/shard-1.js", "first version, longer\n")
	writeShard(t, store, "out/shard-1.js", "second\n")

	exists, err = store.Exists("out/shard-1.js")
	require.NoError(t, err)
	assert.True(t, exists)

	content, err := store.ReadFile("out/shard-1.js")
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(content))
}

func TestFSShardStore_ReadMissing(t *testing.T) {
	store := NewShardStore(afero.NewMemMapFs())

	_, err := store.ReadFile("missing.js")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read shard missing.js")
}

func TestFSShardStore_Local(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalShardStore()

	path := m.Path(filepath.Join(dir, "shard-1.js"))
	writeShard(t, store, path, "runThisShard();\n")

	content, err := store.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "runThisShard();\n", string(content))

	_, err = store.Create(m.Path(filepath.Join(dir, "missing", "shard-1.js")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create shard")
}

func TestFSShardStore_ReadOnly(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "shard-1.js", []byte("x"), 0o644))

	store := NewShardStore(afero.NewReadOnlyFs(base))

	exists, err := store.Exists("shard-1.js")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = store.Create("shard-1.js")
	require.Error(t, err)
}
