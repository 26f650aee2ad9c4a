package save

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/Lawaia-Dev/itemsync/pkg/constants"
	"github.com/Lawaia-Dev/itemsync/pkg/errors"
	"github.com/Lawaia-Dev/itemsync/pkg/items"
)

// Records serializes a record list to the configured destination. Either a
// path or a writer must be supplied; with a path, parent directories are
// created as needed and the file is written with standard permissions.
func Records(records []items.Record, opts ...Option) error {
	options := Defaults().Apply(opts...)

	if options.Writer() != nil {
		return encode(options.Writer(), records, options.Format())
	}

	path := options.Path()
	if path == "" {
		return &errors.ConfigError{
			Component: "save",
			Message:   "neither output path nor writer configured",
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}

	if err := encode(file, records, options.Format()); err != nil {
		_ = file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return errors.WrapIO("close", path, err)
	}
	return nil
}

// encode writes the records in the requested format. JSON uses 2-space
// indentation with HTML escaping off so URLs and non-ASCII item names come
// out readable; map keys are emitted in byte-sorted order, which is what
// makes the artifact byte-stable.
func encode(w io.Writer, records []items.Record, format Format) error {
	// A nil slice would serialize as "null"; the artifact is always a list.
	if records == nil {
		records = []items.Record{}
	}

	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(records)
		if err != nil {
			return errors.WrapParse("yaml", "items", err)
		}
		if _, err := w.Write(data); err != nil {
			return errors.WrapIO("write", "items", err)
		}
		return nil
	default:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return errors.WrapParse("json", "items", err)
		}
		return nil
	}
}
