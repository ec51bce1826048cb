package storage

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/goby-db/internal/schema"
)

func TestAferoStore_Unit(t *testing.T) {
	memFs := afero.NewMemMapFs()
	store := NewAferoStore(memFs)
	ctx := context.Background()

	filePath := "test/dir/my-file.txt"
	fileContent := "hello world, this is a test"

	t.Run("Save", func(t *testing.T) {
		bytesWritten, err := store.Save(ctx, filePath, bytes.NewReader([]byte(fileContent)))
		require.NoError(t, err)
		assert.Equal(t, int64(len(fileContent)), bytesWritten)

		readBytes, err := afero.ReadFile(memFs, filePath)
		require.NoError(t, err)
		assert.Equal(t, fileContent, string(readBytes))
	})

	t.Run("Open", func(t *testing.T) {
		file, err := store.Open(ctx, filePath)
		require.NoError(t, err)
		defer file.Close()

		readBytes, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, fileContent, string(readBytes))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, filePath))

		exists, err := afero.Exists(memFs, filePath)
		require.NoError(t, err)
		assert.False(t, exists, "file should not exist after deleting")
	})

	t.Run("Open non-existent file", func(t *testing.T) {
		_, err := store.Open(ctx, "path/to/nothing.txt")
		assert.Error(t, err)
	})
}

func TestSaveAndLoadConfig(t *testing.T) {
	cfg := schema.DefineDB(schema.DefineTable("Message",
		schema.Number("id", schema.PrimaryKey()),
		schema.Date("created"),
		schema.Text("content"),
	))

	for _, path := range []string{"out/schema.json", "out/schema.yaml", "out/schema.yml"} {
		t.Run(path, func(t *testing.T) {
			memFs := afero.NewMemMapFs()
			store := NewAferoStore(memFs)
			ctx := context.Background()

			require.NoError(t, SaveConfig(ctx, store, path, cfg))

			exists, err := afero.Exists(memFs, path)
			require.NoError(t, err)
			require.True(t, exists)

			loaded, err := LoadConfig(ctx, store, path)
			require.NoError(t, err)
			assert.Equal(t, cfg.Document(), loaded.Document())
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	memFs := afero.NewMemMapFs()
	store := NewAferoStore(memFs)
	ctx := context.Background()

	t.Run("unknown extension", func(t *testing.T) {
		_, err := LoadConfig(ctx, store, "schema.toml")
		assert.ErrorIs(t, err, schema.ErrUnknownFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(ctx, store, "schema.json")
		assert.Error(t, err)
	})

	t.Run("invalid document", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(memFs, "bad.json", []byte(`{"tables":[{"name":""}]}`), 0644))

		_, err := LoadConfig(ctx, store, "bad.json")
		var schemaErr *schema.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, schema.ErrorInvalidDocument, schemaErr.Kind)
	})

	t.Run("save with unknown extension", func(t *testing.T) {
		err := SaveConfig(ctx, store, "schema.txt", schema.DefineDB())
		assert.ErrorIs(t, err, schema.ErrUnknownFormat)
	})
}
