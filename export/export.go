// Package export writes KPI tables as Apache Arrow records, to Parquet files
// or Arrow IPC streams.
package export

import (
	"fmt"
	"io"

	"github.com/apache/arrow/go/v14/arrow"
	"github.com/apache/arrow/go/v14/arrow/array"
	"github.com/apache/arrow/go/v14/arrow/ipc"
	"github.com/apache/arrow/go/v14/arrow/memory"
	"github.com/apache/arrow/go/v14/parquet"
	"github.com/apache/arrow/go/v14/parquet/compress"
	"github.com/apache/arrow/go/v14/parquet/pqarrow"
	"github.com/etnz/realty"
	"github.com/etnz/realty/date"
	"github.com/shopspring/decimal"
)

// Config holds configuration for the Parquet writer
type Config struct {
	Compression  compress.Compression
	RowGroupSize int64
}

// DefaultConfig compresses with snappy in a single row group, KPI tables
// being small.
var DefaultConfig = Config{Compression: compress.Codecs.Snappy, RowGroupSize: 64 * 1024}

// arrowType maps a column kind to its Arrow type. Exact decimals are
// exported as float64, the type every Parquet reader understands.
func arrowType(k realty.Kind) arrow.DataType {
	switch k {
	case realty.Flag:
		return arrow.FixedWidthTypes.Boolean
	case realty.Int:
		return arrow.PrimitiveTypes.Int64
	case realty.Number, realty.Ratio:
		return arrow.PrimitiveTypes.Float64
	case realty.Day:
		return arrow.FixedWidthTypes.Date32
	default:
		return arrow.BinaryTypes.String
	}
}

// Schema returns the Arrow schema of t. Columns unknown to schema are text.
func Schema(t *realty.Table, schema realty.Schema) (*arrow.Schema, []realty.Column) {
	var fields []arrow.Field
	var columns []realty.Column
	for _, name := range t.Columns() {
		kind, _ := schema.Kind(name)
		fields = append(fields, arrow.Field{Name: name, Type: arrowType(kind), Nullable: true})
		columns = append(columns, realty.Column{Name: name, Kind: kind})
	}
	return arrow.NewSchema(fields, nil), columns
}

// Record converts t into an Arrow record. The caller must Release it.
func Record(mem memory.Allocator, t *realty.Table, schema realty.Schema) (arrow.Record, error) {
	arrowSchema, columns := Schema(t, schema)
	b := array.NewRecordBuilder(mem, arrowSchema)
	defer b.Release()

	for i, row := range t.Rows() {
		for j, c := range columns {
			raw := row.Get(c.Name)
			if c.Kind == realty.Text && raw != nil {
				raw = fmt.Sprint(raw) // any value is printable
			}
			v, err := realty.Convert(c, i, raw)
			if err != nil {
				return nil, err
			}
			if v == nil {
				b.Field(j).AppendNull()
				continue
			}
			switch fb := b.Field(j).(type) {
			case *array.StringBuilder:
				fb.Append(v.(string))
			case *array.BooleanBuilder:
				fb.Append(v.(bool))
			case *array.Int64Builder:
				fb.Append(int64(v.(int)))
			case *array.Float64Builder:
				switch x := v.(type) {
				case decimal.Decimal:
					fb.Append(x.InexactFloat64())
				case float64:
					fb.Append(x)
				}
			case *array.Date32Builder:
				fb.Append(arrow.Date32FromTime(v.(date.Date).Time()))
			default:
				return nil, fmt.Errorf("column %q: unsupported arrow builder %T", c.Name, fb)
			}
		}
	}
	return b.NewRecord(), nil
}

// WriteParquet writes t as a Parquet file.
func WriteParquet(w io.Writer, t *realty.Table, schema realty.Schema, config Config) error {
	mem := memory.NewGoAllocator()
	rec, err := Record(mem, t, schema)
	if err != nil {
		return fmt.Errorf("failed to convert table to Arrow record: %w", err)
	}
	defer rec.Release()

	props := parquet.NewWriterProperties(
		parquet.WithCompression(config.Compression),
		parquet.WithMaxRowGroupLength(config.RowGroupSize),
		parquet.WithAllocator(mem),
	)
	pqWriter, err := pqarrow.NewFileWriter(rec.Schema(), w, props, pqarrow.DefaultWriterProps())
	if err != nil {
		return fmt.Errorf("failed to create Parquet writer: %w", err)
	}
	if err := pqWriter.Write(rec); err != nil {
		pqWriter.Close()
		return fmt.Errorf("failed to write record batch: %w", err)
	}
	if err := pqWriter.Close(); err != nil {
		return fmt.Errorf("failed to close Parquet writer: %w", err)
	}
	return nil
}

// WriteIPC writes t as an Arrow IPC stream.
func WriteIPC(w io.Writer, t *realty.Table, schema realty.Schema) error {
	mem := memory.NewGoAllocator()
	rec, err := Record(mem, t, schema)
	if err != nil {
		return fmt.Errorf("failed to convert table to Arrow record: %w", err)
	}
	defer rec.Release()

	iw := ipc.NewWriter(w, ipc.WithSchema(rec.Schema()), ipc.WithAllocator(mem))
	if err := iw.Write(rec); err != nil {
		iw.Close()
		return fmt.Errorf("failed to write Arrow stream: %w", err)
	}
	return iw.Close()
}
