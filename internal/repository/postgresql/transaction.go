package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/caibang/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
)

// GetQuerier returns either transaction or pool
// Used in repositories to support both transactional and non-transactional operations
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := database.TxFromContext(ctx); ok {
		return tx
	}
	return db.Pool
}

const uniqueViolation = "23505"

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == uniqueViolation && (constraint == "" || pgErr.ConstraintName == constraint)
}

// Filter is one (field, op, value) condition of a range query.
type Filter struct {
	Column string
	Op     string
	Value  any
}

func Eq(column string, value any) Filter  { return Filter{Column: column, Op: "=", Value: value} }
func Gte(column string, value any) Filter { return Filter{Column: column, Op: ">=", Value: value} }
func Lte(column string, value any) Filter { return Filter{Column: column, Op: "<=", Value: value} }

// buildWhere composes filters into a WHERE clause with positional arguments.
// Columns come from repository code, never from request input.
func buildWhere(filters []Filter) (string, []any, error) {
	if len(filters) == 0 {
		return "", nil, nil
	}

	clauses := make([]string, 0, len(filters))
	args := make([]any, 0, len(filters))
	for i, f := range filters {
		switch f.Op {
		case "=", ">=", "<=":
		default:
			return "", nil, fmt.Errorf("unsupported filter operator %q", f.Op)
		}
		clauses = append(clauses, fmt.Sprintf("%s %s $%d", f.Column, f.Op, i+1))
		args = append(args, f.Value)
	}

	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}
