package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobhunt/internal/database"
)

var ErrSchemaMismatch = errors.New("schema mismatch")

// requireColumns fails with ErrSchemaMismatch when table lacks any of the
// listed columns, so a seeder never runs against an unmigrated database.
func requireColumns(ctx context.Context, q database.Querier, table string, columns ...string) error {
	if q == nil {
		return database.ErrNoDB
	}

	rows, err := q.Query(ctx,
		`SELECT column_name FROM information_schema.columns
		 WHERE table_schema = current_schema() AND table_name = $1`,
		table,
	)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", table, err)
	}
	defer rows.Close()

	present := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		present[name] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}

	return missingColumns(table, present, columns)
}

func missingColumns(table string, present map[string]bool, columns []string) error {
	var missing []string
	for _, col := range columns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s lacks %s", ErrSchemaMismatch, table, strings.Join(missing, ", "))
}
