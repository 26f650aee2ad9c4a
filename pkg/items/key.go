package items

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// identityFields are tried in priority order when deriving an item's key.
var identityFields = [...]string{"id", "slug", "name"}

// lowercase is a locale-independent lowercaser so keys and sort order never
// depend on the host locale.
var lowercase = cases.Lower(language.Und)

// DeriveKey computes a stable identity key for a record so the same logical
// item can be matched across sources.
//
// The id, slug, and name fields are inspected in that order; the first one
// holding text or an integer is converted to text, lower-cased, and stripped
// of surrounding whitespace. Records with none of those fields fall back to a
// deterministic JSON serialization of the whole record (fields sorted by
// name), which guarantees a key but will almost never match across sources.
func DeriveKey(r Record) string {
	for _, field := range identityFields {
		if text, ok := textValue(r[field]); ok {
			return strings.TrimSpace(lowercase.String(text))
		}
	}

	// encoding/json marshals map keys in sorted order, so this is stable
	// across runs regardless of map iteration order.
	raw, err := json.Marshal(r)
	if err != nil {
		return ""
	}
	return string(raw)
}

// textValue converts a string or integer value to its text form. JSON numbers
// decode as float64, so integral floats count as integers; fractional values,
// booleans, and structured values are not usable as identity.
func textValue(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case json.Number:
		if _, err := val.Int64(); err == nil {
			return val.String(), true
		}
		return "", false
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case float64:
		if val == math.Trunc(val) && !math.IsInf(val, 0) {
			return strconv.FormatFloat(val, 'f', -1, 64), true
		}
		return "", false
	default:
		return "", false
	}
}
