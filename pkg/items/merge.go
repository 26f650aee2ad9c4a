package items

// Merge combines a primary and a secondary list of records into one
// deduplicated list keyed by DeriveKey.
//
// Primary records form the base: each is inserted as a copy, and a duplicate
// key within primary replaces the earlier record wholesale (last write wins).
// Secondary records overlay the base: for a key already present, each
// non-empty field value overwrites the existing one, while empty values
// (nil, "", empty list, empty mapping) are dropped so sparse secondary data
// never erases good primary data. Secondary records with unmatched keys are
// appended as new entries. Entries are never deleted.
//
// The returned slice holds fresh copies in insertion order; callers that need
// a meaningful order should pass the result through Canonicalize.
func Merge(primary, secondary []Record) []Record {
	keys := make([]string, 0, len(primary)+len(secondary))
	merged := make(map[string]Record, len(primary)+len(secondary))

	for _, record := range primary {
		key := DeriveKey(record)
		if _, ok := merged[key]; !ok {
			keys = append(keys, key)
		}
		merged[key] = record.Clone()
	}

	for _, record := range secondary {
		key := DeriveKey(record)
		base, ok := merged[key]
		if !ok {
			keys = append(keys, key)
			merged[key] = record.Clone()
			continue
		}
		for field, value := range record {
			if !isEmpty(value) {
				base[field] = value
			}
		}
	}

	out := make([]Record, 0, len(keys))
	for _, key := range keys {
		out = append(out, merged[key])
	}
	return out
}
