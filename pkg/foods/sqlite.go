package foods

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JamesBMiddleton/nutritrack/pkg/nutrients"
	_ "modernc.org/sqlite"
)

// Schema documents the layout LoadSQLite reads. The database is opened read-only.
const Schema = `
CREATE TABLE IF NOT EXISTS foods (
  id           INTEGER PRIMARY KEY,
  name         TEXT NOT NULL DEFAULT '',
  description  TEXT NOT NULL,
  completeness REAL
);
CREATE TABLE IF NOT EXISTS food_nutrients (
  food_id INTEGER NOT NULL REFERENCES foods(id),
  slot    INTEGER NOT NULL CHECK (slot >= 0 AND slot < 48),
  amount  REAL,
  PRIMARY KEY (food_id, slot)
);
`

// LoadSQLite reads a table from a SQLite database. Rows are ordered by id and
// renumbered by position; missing nutrient rows and NULL amounts are unknown.
func LoadSQLite(ctx context.Context, path string) (*Table, error) {
	dsn := "file:" + path + "?mode=ro&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return readSQLite(ctx, db)
}

func readSQLite(ctx context.Context, db *sql.DB) (*Table, error) {
	rows, err := db.QueryContext(ctx, "SELECT id, name, description, completeness FROM foods ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying foods: %w", err)
	}
	defer rows.Close()

	var (
		out          []Food
		completeness []sql.NullFloat64
	)
	position := make(map[int64]int)
	for rows.Next() {
		var (
			dbID int64
			f    Food
			c    sql.NullFloat64
		)
		if err := rows.Scan(&dbID, &f.Name, &f.Description, &c); err != nil {
			return nil, err
		}
		position[dbID] = len(out)
		out = append(out, f)
		completeness = append(completeness, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	nrows, err := db.QueryContext(ctx, "SELECT food_id, slot, amount FROM food_nutrients")
	if err != nil {
		return nil, fmt.Errorf("querying food_nutrients: %w", err)
	}
	defer nrows.Close()
	for nrows.Next() {
		var (
			foodID int64
			slot   int
			amount sql.NullFloat64
		)
		if err := nrows.Scan(&foodID, &slot, &amount); err != nil {
			return nil, err
		}
		pos, ok := position[foodID]
		if !ok || slot < 0 || slot >= nutrients.Count {
			continue
		}
		if amount.Valid {
			out[pos].Per100g[slot] = nutrients.Known(amount.Float64)
		}
	}
	if err := nrows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		if completeness[i].Valid {
			out[i].Completeness = completeness[i].Float64
		} else {
			out[i].Completeness = out[i].Per100g.Completeness()
		}
	}
	return NewTable(out), nil
}
