package sources

import (
	"encoding/json"
	"fmt"

	"github.com/Lawaia-Dev/itemsync/pkg/errors"
	"github.com/Lawaia-Dev/itemsync/pkg/items"
)

// envelopeKeys are the conventional object keys that may wrap the item list,
// tried in priority order.
var envelopeKeys = [...]string{"items", "data", "results"}

// UnwrapRecords decodes a JSON payload from a source and extracts its item
// records. Two top-level shapes are recognized: a bare array, or an object
// holding an array under one of the conventional envelope keys (items, data,
// results; first match wins). Any other shape is a ShapeError; invalid JSON
// is a ParseError.
//
// Array elements that are not objects carry no fields and are skipped.
func UnwrapRecords(payload []byte, source ID) ([]items.Record, error) {
	var decoded any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, errors.WrapParse("json", source.String(), err)
	}

	list, err := recordList(decoded, source)
	if err != nil {
		return nil, err
	}

	records := make([]items.Record, 0, len(list))
	for _, element := range list {
		if fields, ok := element.(map[string]any); ok {
			records = append(records, items.Record(fields))
		}
	}
	return records, nil
}

// recordList extracts the raw list from a decoded payload, trying each
// recognized shape in order.
func recordList(decoded any, source ID) ([]any, error) {
	switch shape := decoded.(type) {
	case []any:
		return shape, nil
	case map[string]any:
		for _, key := range envelopeKeys {
			if list, ok := shape[key].([]any); ok {
				return list, nil
			}
		}
		return nil, &errors.ShapeError{
			Source: source.String(),
			Got:    "object without an item list",
		}
	default:
		return nil, &errors.ShapeError{
			Source: source.String(),
			Got:    fmt.Sprintf("%T", decoded),
		}
	}
}
