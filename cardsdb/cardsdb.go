// Package cardsdb reads card names from an EDOPro cards.cdb file.
package cardsdb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"yrp-lite/card"
)

// queryChunk stays under SQLite's default host parameter limit.
const queryChunk = 500

type DB struct {
	db      *sql.DB
	timeout time.Duration
}

// Open opens path read-only and checks that it has a texts table.
func Open(path string) (*DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("empty cards database path")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	var n int
	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'texts'`).Scan(&n)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if n == 0 {
		_ = db.Close()
		return nil, fmt.Errorf("%s: no texts table", path)
	}
	return &DB{db: db, timeout: 3 * time.Second}, nil
}

func (d *DB) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

// CardNames looks up every distinct code. Codes missing from the database
// are absent from the result.
func (d *DB) CardNames(codes []card.Code) (map[card.Code]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	uniq := slices.Clone(codes)
	slices.Sort(uniq)
	uniq = slices.Compact(uniq)

	out := make(map[card.Code]string, len(uniq))
	for chunk := range slices.Chunk(uniq, queryChunk) {
		if err := d.lookup(ctx, chunk, out); err != nil {
			return nil, err
		}
	}
	log.Debug().Int("requested", len(uniq)).Int("found", len(out)).Msg("card names")
	return out, nil
}

func (d *DB) lookup(ctx context.Context, codes []card.Code, out map[card.Code]string) error {
	if len(codes) == 0 {
		return nil
	}
	args := make([]any, len(codes))
	for i, c := range codes {
		args[i] = int64(c)
	}
	query := `SELECT id, name FROM texts WHERE id IN (?` + strings.Repeat(`, ?`, len(codes)-1) + `)`
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return err
		}
		out[card.Code(id)] = name
	}
	return rows.Err()
}
