package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/cyberquest/internal/logger"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

const defaultHistoryLimit = 50

// tx runs fn in a transaction. The transaction is rolled back when fn fails
// or panics.
func tx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) (err error) {
	log := logger.FromContext(ctx).WithPrefix("repo")
	t, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction: %v", err)
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = t.Rollback()
			panic(p)
		}
	}()

	if err := fn(t); err != nil {
		_ = t.Rollback()
		log.Debug("transaction rolled back: %v", err)
		return err
	}
	if err := t.Commit(); err != nil {
		log.Error("failed to commit transaction: %v", err)
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
