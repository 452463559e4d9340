package source

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/realty"
)

// ReadJSON decodes a JSON document and reads the rows selected by path, a
// JSONPath expression that must yield an array of objects (or a single
// object). Columns are the schema columns found in the rows followed by the
// other keys, sorted.
func ReadJSON(r io.Reader, path string, schema realty.Schema) (*realty.Table, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber() // keep amounts exact
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse json: %w", err)
	}

	selected, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot select %q: %w", path, err)
	}
	var items []any
	switch v := selected.(type) {
	case []any:
		items = v
	case map[string]any:
		items = []any{v}
	default:
		return nil, fmt.Errorf("%q selects a %T, want an array of objects", path, selected)
	}

	rows := make([]map[string]any, 0, len(items))
	found := make(map[string]bool)
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%q item %d is a %T, want an object", path, i, item)
		}
		for k := range obj {
			found[k] = true
		}
		rows = append(rows, obj)
	}
	var columns []string
	for _, c := range schema {
		if found[c.Name] {
			columns = append(columns, c.Name)
			delete(found, c.Name)
		}
	}
	extra := slices.Sorted(maps.Keys(found))
	columns = append(columns, extra...)
	if len(rows) == 0 {
		// an empty selection is an empty table, not a shapeless one.
		columns = schema.Names()
	}

	b := newBuilder(columns, schema)
	for i, obj := range rows {
		values := make([]any, len(columns))
		for j, name := range columns {
			v := obj[name]
			if n, ok := v.(json.Number); ok {
				v = n.String()
			}
			values[j] = v
		}
		if err := b.append(values); err != nil {
			return nil, fmt.Errorf("%q item %d: %w", path, i, err)
		}
	}
	return b.table, nil
}
