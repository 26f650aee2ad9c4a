package items

import (
	"slices"
	"strings"
)

// Canonicalize imposes a total order on a record list for stable serialized
// output. Records are sorted by the lower-cased name field, then the
// lower-cased id field, each defaulting to empty text when absent or not
// text-like; the sort is stable, so ties keep their merge-produced order.
//
// The returned slice holds fresh copies so output never aliases input.
// Per-record field order is deterministic at serialization time: Go's JSON
// encoder emits map keys in byte-sorted order.
func Canonicalize(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, record := range records {
		out = append(out, record.Clone())
	}

	slices.SortStableFunc(out, func(a, b Record) int {
		if c := strings.Compare(sortField(a, "name"), sortField(b, "name")); c != 0 {
			return c
		}
		return strings.Compare(sortField(a, "id"), sortField(b, "id"))
	})

	return out
}

// sortField returns the lower-cased text form of a record field for sort
// comparison, or empty text when the field is absent or not text-like.
func sortField(r Record, field string) string {
	text, ok := textValue(r[field])
	if !ok {
		return ""
	}
	return lowercase.String(text)
}
