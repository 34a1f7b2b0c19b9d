// Package store provides shared persistence helpers on top of the
// generated Ent client: transaction scoping, id generation and the
// clock seam used for persisted timestamps.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"replane.io/replane/ent"
)

// Now is the clock for persisted timestamps. Overridable in tests.
var Now = func() time.Time { return time.Now().UTC() }

// WithTx executes fn within a transaction. Rolls back on error or
// panic, commits otherwise. Every write use case runs through here so
// a request is all-or-nothing.
func WithTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		return err
	}
	return tx.Commit()
}

// NewID generates a unique UUID v7 (time-ordered, K-sortable).
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// crypto/rand failure; nothing sensible to do but give up
		panic(fmt.Sprintf("uuid v7: %v", err))
	}
	return id.String()
}
