// Package ic provides information content tables for the IC-based
// similarity metrics.
package ic

import (
	"context"
	"database/sql"

	"github.com/morikuni/failure/v2"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/takatori/wnsim/internal/errors"
	"github.com/takatori/wnsim/internal/similarity"
)

const schema = `
CREATE TABLE IF NOT EXISTS information_content (
    synset_id TEXT PRIMARY KEY,
    value     REAL NOT NULL CHECK(value >= 0)
);
`

// Store persists an information content table in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, failure.Translate(
			err,
			errors.ErrInternal,
			failure.Field(failure.Message("failed to open information content db")),
			failure.Context{
				"path": path,
			},
		)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, failure.Translate(
			err,
			errors.ErrInternal,
			failure.Field(failure.Message("failed to initialize information content schema")),
			failure.Context{
				"path": path,
			},
		)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces the stored table with table.
func (s *Store) Save(ctx context.Context, table similarity.InformationContents) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return failure.Translate(err, errors.ErrInternal, failure.Field(failure.Message("failed to begin transaction")))
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM information_content`); err != nil {
		return failure.Translate(err, errors.ErrInternal, failure.Field(failure.Message("failed to clear information content")))
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO information_content (synset_id, value) VALUES (?, ?)`)
	if err != nil {
		return failure.Translate(err, errors.ErrInternal, failure.Field(failure.Message("failed to prepare insert")))
	}
	defer stmt.Close()

	for id, value := range table {
		if _, err := stmt.ExecContext(ctx, id, value); err != nil {
			return failure.Translate(
				err,
				errors.ErrInvalidArgument,
				failure.Field(failure.Message("failed to store information content")),
				failure.Context{
					"synset": id,
				},
			)
		}
	}
	if err := tx.Commit(); err != nil {
		return failure.Translate(err, errors.ErrInternal, failure.Field(failure.Message("failed to commit information content")))
	}
	return nil
}

// Load reads the whole table into memory.
func (s *Store) Load(ctx context.Context) (similarity.InformationContents, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT synset_id, value FROM information_content`)
	if err != nil {
		return nil, failure.Translate(err, errors.ErrInternal, failure.Field(failure.Message("failed to query information content")))
	}
	defer rows.Close()

	table := make(similarity.InformationContents)
	for rows.Next() {
		var id string
		var value float64
		if err := rows.Scan(&id, &value); err != nil {
			return nil, failure.Translate(err, errors.ErrInternal, failure.Field(failure.Message("failed to scan information content")))
		}
		table[id] = value
	}
	if err := rows.Err(); err != nil {
		return nil, failure.Translate(err, errors.ErrInternal, failure.Field(failure.Message("failed to read information content")))
	}
	return table, nil
}

// Get returns a single value.
func (s *Store) Get(ctx context.Context, id string) (float64, error) {
	var value float64
	err := s.db.QueryRowContext(ctx, `SELECT value FROM information_content WHERE synset_id = ?`, id).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, failure.New(
			errors.ErrIncompleteInformationContent,
			failure.Field(failure.Message("no information content for synset")),
			failure.Context{
				"synset": id,
			},
		)
	}
	if err != nil {
		return 0, failure.Translate(err, errors.ErrInternal, failure.Field(failure.Message("failed to query information content")))
	}
	return value, nil
}
