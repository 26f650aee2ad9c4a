package items

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	t.Run("both empty", func(t *testing.T) {
		assert.Empty(t, Merge(nil, nil))
	})

	t.Run("empty primary yields secondary copies", func(t *testing.T) {
		secondary := []Record{{"id": "b2", "name": "Gadget"}}
		got := Merge(nil, secondary)
		require.Len(t, got, 1)
		assert.Equal(t, secondary[0], got[0])
	})

	t.Run("empty secondary yields primary copies", func(t *testing.T) {
		primary := []Record{{"id": "a1", "name": "Widget"}}
		got := Merge(primary, nil)
		require.Len(t, got, 1)
		assert.Equal(t, primary[0], got[0])
	})

	t.Run("disjoint keys concatenate", func(t *testing.T) {
		primary := []Record{{"id": "a1"}, {"id": "a2"}}
		secondary := []Record{{"id": "b1"}, {"id": "b2"}, {"id": "b3"}}
		got := Merge(primary, secondary)
		assert.Len(t, got, len(primary)+len(secondary))
	})

	t.Run("overlay precedence", func(t *testing.T) {
		primary := []Record{{"id": "a1", "name": "Widget", "tier": 1}}
		secondary := []Record{{"id": "a1", "tier": 2}}
		got := Merge(primary, secondary)
		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0]["tier"])
		assert.Equal(t, "Widget", got[0]["name"])
	})

	t.Run("empty secondary values never erase primary data", func(t *testing.T) {
		primary := []Record{{
			"id":    "a1",
			"name":  "Widget",
			"notes": "rare drop",
			"tags":  []any{"tool"},
		}}
		secondary := []Record{{
			"id":    "a1",
			"name":  "",
			"notes": nil,
			"tags":  []any{},
			"meta":  map[string]any{},
		}}
		got := Merge(primary, secondary)
		require.Len(t, got, 1)
		assert.Equal(t, "Widget", got[0]["name"])
		assert.Equal(t, "rare drop", got[0]["notes"])
		assert.Equal(t, []any{"tool"}, got[0]["tags"])
		assert.NotContains(t, got[0], "meta")
	})

	t.Run("non-empty secondary may change value type", func(t *testing.T) {
		primary := []Record{{"id": "a1", "tier": "one"}}
		secondary := []Record{{"id": "a1", "tier": 1}}
		got := Merge(primary, secondary)
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0]["tier"])
	})

	t.Run("false and zero are real values", func(t *testing.T) {
		primary := []Record{{"id": "a1", "tradeable": true, "tier": 3}}
		secondary := []Record{{"id": "a1", "tradeable": false, "tier": 0}}
		got := Merge(primary, secondary)
		require.Len(t, got, 1)
		assert.Equal(t, false, got[0]["tradeable"])
		assert.Equal(t, 0, got[0]["tier"])
	})

	t.Run("last primary duplicate wins", func(t *testing.T) {
		primary := []Record{
			{"id": "a1", "name": "Old Widget"},
			{"id": "a1", "name": "New Widget"},
		}
		got := Merge(primary, nil)
		require.Len(t, got, 1)
		assert.Equal(t, "New Widget", got[0]["name"])
	})

	t.Run("duplicate keys within secondary overlay sequentially", func(t *testing.T) {
		secondary := []Record{
			{"id": "b1", "name": "Gadget", "tier": 1},
			{"id": "b1", "tier": 2, "name": ""},
		}
		got := Merge(nil, secondary)
		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0]["tier"])
		assert.Equal(t, "Gadget", got[0]["name"])
	})

	t.Run("keys match case-insensitively", func(t *testing.T) {
		primary := []Record{{"id": "A1", "name": "Widget"}}
		secondary := []Record{{"id": "a1", "tier": 2}}
		got := Merge(primary, secondary)
		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0]["tier"])
	})

	t.Run("fallback keys collapse structurally identical records", func(t *testing.T) {
		primary := []Record{{"rarity": "epic", "stack_size": float64(50)}}
		secondary := []Record{{"stack_size": float64(50), "rarity": "epic"}}
		got := Merge(primary, secondary)
		assert.Len(t, got, 1)
	})

	t.Run("source records are never mutated", func(t *testing.T) {
		primary := []Record{{"id": "a1", "name": "Widget", "tier": 1}}
		secondary := []Record{{"id": "a1", "tier": 2}}

		Merge(primary, secondary)

		assert.Equal(t, 1, primary[0]["tier"])
		assert.Equal(t, Record{"id": "a1", "tier": 2}, secondary[0])
	})
}
