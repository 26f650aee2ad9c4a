package save_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lawaia-Dev/itemsync/pkg/items"
	"github.com/Lawaia-Dev/itemsync/pkg/save"
)

func TestRecordsToWriter(t *testing.T) {
	records := []items.Record{
		{"id": "b2", "name": "Gadget"},
		{"id": "a1", "name": "Widget", "tier": 2},
	}

	var buf bytes.Buffer
	require.NoError(t, save.Records(records, save.WithWriter(&buf)))

	want := `[
  {
    "id": "b2",
    "name": "Gadget"
  },
  {
    "id": "a1",
    "name": "Widget",
    "tier": 2
  }
]
`
	assert.Equal(t, want, buf.String())
}

func TestRecordsPreservesNonASCII(t *testing.T) {
	records := []items.Record{
		{"id": "a1", "name": "Épée", "url": "https://metaforge.app/items?tier=2&rare=true"},
	}

	var buf bytes.Buffer
	require.NoError(t, save.Records(records, save.WithWriter(&buf)))

	assert.Contains(t, buf.String(), "Épée")
	assert.Contains(t, buf.String(), "tier=2&rare=true")
	assert.NotContains(t, buf.String(), `\u`)
}

func TestRecordsToPath(t *testing.T) {
	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data", "items.json")
		records := []items.Record{{"id": "a1"}}

		require.NoError(t, save.Records(records, save.WithPath(path)))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"a1"}]`, string(data))
	})

	t.Run("byte-identical across writes", func(t *testing.T) {
		dir := t.TempDir()
		records := []items.Record{
			{"id": "a1", "name": "Widget", "tags": []any{"tool", "rare"}},
			{"id": "b2", "meta": map[string]any{"weight": 1.5, "slot": "belt"}},
		}

		first := filepath.Join(dir, "first.json")
		second := filepath.Join(dir, "second.json")
		require.NoError(t, save.Records(records, save.WithPath(first)))
		require.NoError(t, save.Records(records, save.WithPath(second)))

		a, err := os.ReadFile(first)
		require.NoError(t, err)
		b, err := os.ReadFile(second)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestRecordsNilSliceIsEmptyList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, save.Records(nil, save.WithWriter(&buf)))
	assert.Equal(t, "[]\n", buf.String())
}

func TestRecordsYAML(t *testing.T) {
	var buf bytes.Buffer
	records := []items.Record{{"id": "a1", "name": "Widget"}}

	require.NoError(t, save.Records(records, save.WithWriter(&buf), save.WithFormat(save.FormatYAML)))
	assert.Contains(t, buf.String(), "id: a1")
	assert.Contains(t, buf.String(), "name: Widget")
}

func TestRecordsNoDestination(t *testing.T) {
	err := save.Records([]items.Record{{"id": "a1"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output path")
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "json", save.FormatJSON.String())
	assert.Equal(t, "yaml", save.FormatYAML.String())
	assert.True(t, save.FormatJSON.IsValid())
	assert.False(t, save.Format(99).IsValid())
	assert.Equal(t, save.FormatYAML, save.ParseFormat("yaml"))
	assert.Equal(t, save.FormatYAML, save.ParseFormat("yml"))
	assert.Equal(t, save.FormatJSON, save.ParseFormat(""))
	assert.Equal(t, save.FormatJSON, save.ParseFormat("json"))
}
