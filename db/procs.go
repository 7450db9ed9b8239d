package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Row is one record of a procedure result, keyed by column name.
type Row map[string]any

// Rows is one ordered result set.
type Rows []Row

// ResultSets is the ordered sequence of result sets a procedure produced.
// Every procedure in scope returns exactly one set, of zero-or-one rows for
// action procedures and zero-or-more rows for read procedures; callers know
// which and destructure accordingly.
type ResultSets []Rows

// Caller is the whole persistence surface: named procedures with positional
// arguments returning tabular results. No schema, no query builder.
type Caller interface {
	Call(ctx context.Context, proc string, args ...any) (ResultSets, error)
}

// ProcCaller executes procedures as set-returning functions over a pgx pool.
type ProcCaller struct {
	pool *pgxpool.Pool
}

func NewProcCaller(pool *pgxpool.Pool) *ProcCaller {
	return &ProcCaller{pool: pool}
}

// Call invokes proc with the given positional arguments and materialises the
// result set. The procedure name is a code-level constant everywhere in this
// repo; it is never user input.
func (c *ProcCaller) Call(ctx context.Context, proc string, args ...any) (ResultSets, error) {
	if proc == "" {
		return nil, fmt.Errorf("db: empty procedure name")
	}

	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf("SELECT * FROM %s(%s)", proc, strings.Join(placeholders, ", "))

	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db: call %s: %w", proc, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	set := make(Rows, 0, 1)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("db: scan %s: %w", proc, err)
		}
		row := make(Row, len(fields))
		for i, fd := range fields {
			row[string(fd.Name)] = values[i]
		}
		set = append(set, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db: iterate %s: %w", proc, err)
	}

	return ResultSets{set}, nil
}

// FirstRow destructures the single-row shape of action procedures.
// It returns nil when the procedure produced no rows.
func (rs ResultSets) FirstRow() Row {
	if len(rs) == 0 || len(rs[0]) == 0 {
		return nil
	}
	return rs[0][0]
}
