// Package source loads KPI input tables from CSV files, JSON documents and
// SQL databases.
//
// A source is described by a single string:
//
//	rentroll.csv                       a CSV file with a header line
//	export.json#$.data.units           rows selected by a JSONPath in a JSON file
//	sqlite:portfolio.db#SELECT * ...   rows of a query on a SQLite database
//
// Loaded cells are converted to the kinds of the expected schema, so type
// errors surface with the line they come from.
package source

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/realty"
)

// Source is a parsed source description.
type Source struct {
	Driver   string // "csv", "json" or a database/sql driver name
	Path     string // file path, or data source name for a database
	Selector string // JSONPath or SQL query
}

// DefaultJSONPath selects a root array of row objects.
const DefaultJSONPath = "$"

// Parse reads a source description.
func Parse(spec string) (Source, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Source{}, fmt.Errorf("empty source")
	}
	location, selector, _ := strings.Cut(spec, "#")

	if driver, dsn, ok := strings.Cut(location, ":"); ok && isDriver(driver) {
		if selector == "" {
			return Source{}, fmt.Errorf("source %q: a query is required after '#'", spec)
		}
		return Source{Driver: driver, Path: dsn, Selector: selector}, nil
	}

	switch ext := strings.ToLower(filepath.Ext(location)); ext {
	case ".csv":
		return Source{Driver: "csv", Path: location}, nil
	case ".json":
		if selector == "" {
			selector = DefaultJSONPath
		}
		return Source{Driver: "json", Path: location, Selector: selector}, nil
	default:
		return Source{}, fmt.Errorf("source %q: unsupported file type %q, want .csv or .json", spec, ext)
	}
}

// isDriver reports whether name is a registered database/sql driver.
func isDriver(name string) bool {
	for _, d := range sql.Drivers() {
		if d == name {
			return true
		}
	}
	return false
}

func (s Source) String() string {
	switch s.Driver {
	case "csv":
		return s.Path
	case "json":
		return s.Path + "#" + s.Selector
	default:
		return s.Driver + ":" + s.Path + "#" + s.Selector
	}
}

// Load reads the table described by s, checking it against schema.
func (s Source) Load(ctx context.Context, schema realty.Schema) (*realty.Table, error) {
	var t *realty.Table
	var err error
	switch s.Driver {
	case "csv", "json":
		f, ferr := os.Open(s.Path)
		if ferr != nil {
			return nil, fmt.Errorf("cannot open source %q: %w", s.Path, ferr)
		}
		defer f.Close()
		if s.Driver == "csv" {
			t, err = ReadCSV(f, schema)
		} else {
			t, err = ReadJSON(f, s.Selector, schema)
		}
	default:
		db, derr := sql.Open(s.Driver, s.Path)
		if derr != nil {
			return nil, fmt.Errorf("cannot open database %q: %w", s.Path, derr)
		}
		defer db.Close()
		t, err = Query(ctx, db, schema, s.Selector)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot load %s: %w", s, err)
	}
	log.Printf("load-table source=%q rows=%d", s.String(), t.Len())
	return t, nil
}

// Load parses spec and loads it.
func Load(ctx context.Context, spec string, schema realty.Schema) (*realty.Table, error) {
	s, err := Parse(spec)
	if err != nil {
		return nil, err
	}
	return s.Load(ctx, schema)
}

// builder creates a table over columns, converting the cells of schema
// columns. Required columns are checked by the KPI functions themselves.
type builder struct {
	table   *realty.Table
	columns []realty.Column // one per table column, Kind ignored when !typed
	typed   []bool
}

func newBuilder(columns []string, schema realty.Schema) *builder {
	b := &builder{table: realty.NewTable(columns...)}
	for _, name := range columns {
		kind, ok := schema.Kind(name)
		b.columns = append(b.columns, realty.Column{Name: name, Kind: kind})
		b.typed = append(b.typed, ok)
	}
	return b
}

func (b *builder) append(values []any) error {
	row := b.table.Len()
	for i, v := range values {
		if !b.typed[i] {
			continue
		}
		c, err := realty.Convert(b.columns[i], row, v)
		if err != nil {
			return err
		}
		values[i] = c
	}
	return b.table.Append(values...)
}
