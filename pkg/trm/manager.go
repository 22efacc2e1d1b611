// Package trm binds a sqlx transaction to a context so repositories can
// join it without taking it as a parameter.
package trm

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type txKey struct{}

// ExtractTx returns the transaction bound to ctx, or nil.
func ExtractTx(ctx context.Context) *sqlx.Tx {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	if !ok {
		return nil
	}
	return tx
}

type Manager interface {
	Do(ctx context.Context, callback func(ctx context.Context) error) error
}

type Option func(*sql.TxOptions)

// WithIsolation sets the isolation level of transactions opened by the manager.
func WithIsolation(level sql.IsolationLevel) Option {
	return func(o *sql.TxOptions) { o.Isolation = level }
}

type txManager struct {
	db   *sqlx.DB
	opts sql.TxOptions
}

func NewManager(db *sqlx.DB, opts ...Option) Manager {
	m := &txManager{db: db, opts: sql.TxOptions{Isolation: sql.LevelReadCommitted}}
	for _, opt := range opts {
		opt(&m.opts)
	}
	return m
}

// Do runs callback inside a transaction. When ctx already carries one the
// callback joins it and the outermost Do commits.
func (t *txManager) Do(ctx context.Context, callback func(ctx context.Context) error) (err error) {
	if ExtractTx(ctx) != nil {
		return callback(ctx)
	}

	tx, err := t.db.BeginTxx(ctx, &t.opts)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = callback(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}
	return nil
}
