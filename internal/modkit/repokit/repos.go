// Package repokit holds the types repos share so they never import a driver
package repokit

import (
	"context"

	"interviewcoach/internal/platform/store"
)

type (
	// Queryer is the read and write surface for sql repos
	Queryer = store.RowQuerier

	// TxRunner runs a function inside a transaction
	TxRunner = store.TxRunner

	Rows       = store.Rows
	Row        = store.Row
	CommandTag = store.CommandTag
)

// WithTx runs fn inside a transaction on tx
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}
