package repository

import (
	"context"

	"gorm.io/gorm"

	apperrors "cathub/internal/errors"
)

// assignment is one pending SET clause with its bound value. The value is
// either a plain scalar or a clause.Expr fragment (point encoding); both are
// parameter-bound when rendered.
type assignment struct {
	column string
	value  any
}

// condition is one pending WHERE predicate with its bound arguments.
type condition struct {
	query string
	args  []any
}

// updateBuilder accumulates the assignments and predicates of a sparse
// UPDATE and renders them only at execution time. Clause inclusion is
// decided entirely by the repository; the builder just guarantees that every
// value stays bound and that an empty SET list is refused.
type updateBuilder struct {
	table string
	sets  []assignment
	conds []condition
}

func newUpdate(table string) *updateBuilder {
	return &updateBuilder{table: table}
}

// Set queues column = value.
func (b *updateBuilder) Set(column string, value any) *updateBuilder {
	b.sets = append(b.sets, assignment{column: column, value: value})
	return b
}

// Where queues a predicate. All predicates are ANDed.
func (b *updateBuilder) Where(query string, args ...any) *updateBuilder {
	b.conds = append(b.conds, condition{query: query, args: args})
	return b
}

// Empty reports whether no assignments have been queued.
func (b *updateBuilder) Empty() bool {
	return len(b.sets) == 0
}

// Exec renders and runs the statement, returning the affected row count.
// A builder with zero assignments is a caller error: it refuses to emit SET
// with no clauses and returns the bad-request kind without touching the
// store.
func (b *updateBuilder) Exec(ctx context.Context, db *gorm.DB) (int64, error) {
	if b.Empty() {
		return 0, apperrors.BadRequest("no fields to update")
	}

	values := make(map[string]any, len(b.sets))
	for _, a := range b.sets {
		values[a.column] = a.value
	}

	tx := db.WithContext(ctx).Table(b.table)
	for _, c := range b.conds {
		tx = tx.Where(c.query, c.args...)
	}

	res := tx.Updates(values)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// columns returns the queued assignment columns in insertion order.
func (b *updateBuilder) columns() []string {
	out := make([]string, 0, len(b.sets))
	for _, a := range b.sets {
		out = append(out, a.column)
	}
	return out
}
