package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/etnz/realty"
	"github.com/etnz/realty/export"
	"github.com/etnz/realty/renderer"
	"github.com/google/subcommands"
)

// Output formats.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatParquet  = "parquet"
	FormatArrow    = "arrow"
)

// Formats lists the supported output formats.
var Formats = []string{FormatMarkdown, FormatJSON, FormatParquet, FormatArrow}

// sections of a report, in display order, and the schema of their table.
var sections = []struct {
	name   string
	schema realty.Schema
}{
	{"occupancy", realty.OccupancySchema},
	{"aging", realty.AgingSchema},
	{"expiry", realty.ExpirySchema},
	{"bridge", realty.BridgeSchema},
}

// outputFlags select how a report is written.
type outputFlags struct {
	format string
	output string
}

func (o *outputFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&o.format, "format", config.Format, "Output format: "+strings.Join(Formats, ", "))
	f.StringVar(&o.output, "o", "", "Output file. Markdown and json go to the standard output by default. With several sections, binary formats write one file per section")
}

func (o *outputFlags) validate() error {
	if !slices.Contains(Formats, o.format) {
		return fmt.Errorf("unknown format %q, want one of %s", o.format, strings.Join(Formats, ", "))
	}
	if (o.format == FormatParquet || o.format == FormatArrow) && o.output == "" {
		return fmt.Errorf("-o is required with -format %s", o.format)
	}
	return nil
}

// write writes the report and reports failures the way commands do.
func (o *outputFlags) write(r *realty.Report) subcommands.ExitStatus {
	var err error
	switch o.format {
	case FormatMarkdown:
		md := renderer.RenderReport(renderer.NewReport(r, *currency))
		if o.output == "" {
			printMarkdown(md)
			return subcommands.ExitSuccess
		}
		err = writeFile(o.output, func(w io.Writer) error {
			_, err := io.WriteString(w, md)
			return err
		})
	case FormatJSON:
		if o.output == "" {
			err = WriteJSON(os.Stdout, r)
		} else {
			err = writeFile(o.output, func(w io.Writer) error { return WriteJSON(w, r) })
		}
	case FormatParquet, FormatArrow:
		err = WriteTables(o.output, o.format, r)
	default:
		err = fmt.Errorf("unknown format %q", o.format)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// WriteJSON writes the tables of the report as indented JSON. A report with
// a single section is written as an array of rows, otherwise as an object
// keyed by section name.
func WriteJSON(w io.Writer, r *realty.Report) error {
	tables := r.Tables()
	var v any = tables
	if len(tables) == 1 {
		for _, t := range tables {
			v = t
		}
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// WriteTables writes every section of the report in a binary format. With
// several sections, the section name is added to the file name: "kpi.parquet"
// becomes "kpi-aging.parquet".
func WriteTables(output, format string, r *realty.Report) error {
	tables := r.Tables()
	for _, s := range sections {
		t, ok := tables[s.name]
		if !ok {
			continue
		}
		path := sectionPath(output, s.name, len(tables) > 1)
		err := writeFile(path, func(w io.Writer) error {
			if format == FormatParquet {
				return export.WriteParquet(w, t, s.schema, export.DefaultConfig)
			}
			return export.WriteIPC(w, t, s.schema)
		})
		if err != nil {
			return fmt.Errorf("section %s: %w", s.name, err)
		}
		log.Printf("write-table section=%q format=%q path=%q rows=%d", s.name, format, path, t.Len())
	}
	return nil
}

func sectionPath(output, section string, several bool) string {
	if !several {
		return output
	}
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + "-" + section + ext
}

// writeFile creates path and calls write on it.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return f.Close()
}
