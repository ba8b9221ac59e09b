package store

import (
	"context"
	"database/sql"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/pkg/errors"
)

// Well-known record keys.
const (
	ProgressKey = "assessment_progress"
	LanguageKey = "language"
)

// KV is a durable string-keyed byte store. A Put replaces the whole value
// atomically: readers see the old value or the new one.
type KV interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's connection.
	Close() error
}

// sqliteKV implements KV on the kv_records table.
type sqliteKV struct {
	drv dialect.Driver
}

var _ KV = (*sqliteKV)(nil)

func (r *sqliteKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("value").
		From(entsql.Table(kvTableName)).
		Where(entsql.EQ("name", key)).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, false, errors.Wrapf(err, "sqlite kv: get %q", key)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, false, errors.Wrapf(err, "sqlite kv: get %q", key)
		}
		return nil, false, nil
	}
	var value string
	if err := rows.Scan(&value); err != nil {
		return nil, false, errors.Wrapf(err, "sqlite kv: scan %q", key)
	}
	return []byte(value), true, nil
}

func (r *sqliteKV) Put(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New("sqlite kv: key is empty")
	}
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(kvTableName).
		Columns("name", "value", "updated_at").
		Values(key, string(value), time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("name"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return errors.Wrapf(err, "sqlite kv: put %q", key)
	}
	return nil
}

func (r *sqliteKV) Delete(ctx context.Context, key string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(kvTableName).
		Where(entsql.EQ("name", key)).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return errors.Wrapf(err, "sqlite kv: delete %q", key)
	}
	return nil
}

func (r *sqliteKV) Close() error {
	return r.drv.Close()
}
