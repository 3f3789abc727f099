package seeder

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/edelooff/smallville/internal/db"
	"github.com/edelooff/smallville/internal/model"
	"github.com/edelooff/smallville/internal/schema"
)

// Execer is the subset of sql.Tx/sql.DB the bulk saver writes through.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// BulkSaver collects rows and writes them out as chunked multi-row INSERT
// statements. Pending rows are grouped by table and flushed in schema
// dependency order once the threshold is reached, so non-cyclical foreign
// keys resolve correctly as long as referencing rows are added after the
// rows they reference.
type BulkSaver struct {
	exec      Execer
	builder   squirrel.StatementBuilderType
	order     []string
	threshold int
	maxParams int
	pending   map[string][]model.Row
	count     int
}

// NewBulkSaver returns a saver for the given provider. The threshold is the
// number of pending rows that triggers a flush.
func NewBulkSaver(exec Execer, provider string, threshold int) *BulkSaver {
	return &BulkSaver{
		exec:      exec,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(db.Placeholder(provider)),
		order:     schema.Tables,
		threshold: threshold,
		maxParams: db.MaxParams(provider),
		pending:   make(map[string][]model.Row),
	}
}

// Add appends a row to the pending collection, flushing all pending rows
// once the threshold is reached.
func (b *BulkSaver) Add(ctx context.Context, row model.Row) error {
	b.pending[row.Table()] = append(b.pending[row.Table()], row)
	b.count++
	if b.count >= b.threshold {
		return b.Flush(ctx)
	}
	return nil
}

// Flush writes all pending rows to the database, in table order. Each
// table's rows are chunked so that no statement exceeds the provider's
// bind parameter budget.
func (b *BulkSaver) Flush(ctx context.Context) error {
	for _, table := range b.order {
		rows := b.pending[table]
		if len(rows) == 0 {
			continue
		}
		columns := rows[0].Columns()
		chunkSize := b.maxParams / len(columns)
		for start := 0; start < len(rows); start += chunkSize {
			end := start + chunkSize
			if end > len(rows) {
				end = len(rows)
			}
			insert := b.builder.Insert(table).Columns(columns...)
			for _, row := range rows[start:end] {
				insert = insert.Values(row.Values()...)
			}
			query, args, err := insert.ToSql()
			if err != nil {
				return fmt.Errorf("failed to build insert for %s: %w", table, err)
			}
			if _, err := b.exec.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("failed to insert into %s: %w", table, err)
			}
		}
		b.pending[table] = nil
	}
	b.count = 0
	return nil
}
