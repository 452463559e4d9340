package source

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/etnz/realty"
)

// Query runs query on db and reads the result set, one column per result
// column.
func Query(ctx context.Context, db *sql.DB, schema realty.Schema, query string, args ...any) (*realty.Table, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("cannot read result columns: %w", err)
	}
	b := newBuilder(columns, schema)
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("cannot scan row %d: %w", b.table.Len(), err)
		}
		for i, v := range values {
			if raw, ok := v.([]byte); ok {
				values[i] = string(raw)
			}
		}
		if err := b.append(values); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("cannot read rows: %w", err)
	}
	return b.table, nil
}
