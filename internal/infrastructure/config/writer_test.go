package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeTOML(t *testing.T) {
	data, err := EncodeTOML(DefaultConfig())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "[host]")
	assert.Contains(t, out, "platform = 'direct'")
	assert.Contains(t, out, "[demo]")
	assert.Contains(t, out, "char_limit = 256")
}

func TestEncodeTOML_Nil(t *testing.T) {
	_, err := EncodeTOML(nil)
	assert.Error(t, err)
}

func TestWriteSchemaFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteSchemaFile(dir))

	data, err := os.ReadFile(filepath.Join(dir, schemaName))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "textfocus configuration", doc["title"])
	assert.Contains(t, string(data), `"platform"`)
	assert.Contains(t, string(data), `"command"`)
}
