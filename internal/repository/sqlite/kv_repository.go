package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vytor/cyberquest/internal/logger"
	"github.com/vytor/cyberquest/internal/repository"
)

type kvRepository struct {
	db *sql.DB
}

// NewKVRepository creates a new KVRepository implementation
func NewKVRepository(db *sql.DB) repository.KVRepository {
	return &kvRepository{db: db}
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func getKey(ctx context.Context, q queryer, key string) ([]byte, bool, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

func putKey(ctx context.Context, q queryer, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
INSERT INTO kv_store (key, value, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
`, key, string(value))
	return err
}

func (r *kvRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	log := logger.FromContext(ctx).WithPrefix("kv_repo")
	log.Debug("getting key: %s", key)

	value, found, err := getKey(ctx, r.db, key)
	if err != nil {
		log.Error("failed to get key %s: %v", key, err)
		return nil, false, err
	}
	if !found {
		log.Debug("key not found: %s", key)
	}
	return value, found, nil
}

func (r *kvRepository) Put(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx).WithPrefix("kv_repo")
	log.Debug("putting key: %s (%d bytes)", key, len(value))

	if err := putKey(ctx, r.db, key, value); err != nil {
		log.Error("failed to put key %s: %v", key, err)
		return err
	}
	return nil
}

func (r *kvRepository) Update(ctx context.Context, key string, fn repository.UpdateFunc) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("kv_repo")
	log.Debug("updating key: %s", key)

	written := false
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		current, found, err := getKey(ctx, tx, key)
		if err != nil {
			log.Error("failed to read key %s: %v", key, err)
			return err
		}
		next, write, err := fn(current, found)
		if err != nil || !write {
			return err
		}
		if err := putKey(ctx, tx, key, next); err != nil {
			log.Error("failed to write key %s: %v", key, err)
			return err
		}
		written = true
		return nil
	})
	if err != nil {
		return false, err
	}
	log.Debug("key %s updated: written=%t", key, written)
	return written, nil
}

func (r *kvRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx).WithPrefix("kv_repo")
	log.Debug("deleting key: %s", key)

	if _, err := r.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key); err != nil {
		log.Error("failed to delete key %s: %v", key, err)
		return err
	}
	return nil
}
