// Package items implements the core merge engine for the itemsync pipeline:
// identity key derivation, overlay merging of partially-overlapping item sets,
// and canonical ordering for stable, diff-friendly output.
//
// Items carry no fixed schema. A Record is an arbitrary JSON-shaped mapping;
// every operation in this package is total and degrades gracefully when a
// record is missing expected fields.
package items

// Record is one item's data as a flexible field/value mapping. Values are
// JSON-shaped: string, number, bool, nil, []any, or map[string]any.
type Record map[string]any

// Clone returns a shallow copy of the record. The merge engine only ever
// mutates top-level fields, so a shallow copy is enough to keep loaded
// source data intact.
func (r Record) Clone() Record {
	if r == nil {
		return Record{}
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// isEmpty reports whether a value counts as empty for overlay purposes:
// nil, empty string, empty list, or empty mapping. Everything else,
// including false and 0, is a real value.
func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	case Record:
		return len(val) == 0
	default:
		return false
	}
}
