package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// SQLiteStore serves the reporting views from a local SQLite file. The
// migrations in migrations/ create the base tables and the two all_* views.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) Select(ctx context.Context, view string, filters ...Filter) ([]Row, error) {
	var where []string
	var args []any
	for _, f := range filters {
		switch f.Op {
		case OpEq:
			where = append(where, f.Column+" = ?")
			args = append(args, f.Value)
		case OpIn:
			if len(f.Values) == 0 {
				where = append(where, "1 = 0")
				continue
			}
			ph := strings.TrimSuffix(strings.Repeat("?, ", len(f.Values)), ", ")
			where = append(where, f.Column+" IN ("+ph+")")
			for _, v := range f.Values {
				args = append(args, v)
			}
		case OpILike:
			where = append(where, "LOWER("+f.Column+") LIKE ?")
			args = append(args, "%"+strings.ToLower(fmt.Sprint(f.Value))+"%")
		default:
			return nil, fmt.Errorf("unsupported filter op %q", f.Op)
		}
	}

	query := "SELECT * FROM " + view
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query view %s: %w", view, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []Row
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		r := make(Row, len(cols))
		for i, c := range cols {
			r[c] = normalizeValue(vals[i])
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
