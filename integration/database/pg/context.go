package pg

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type txKey struct{}

// WithTx attaches tx to ctx. Stores that accept a context run their queries
// inside it instead of on the pool. A nil tx leaves ctx unchanged.
func WithTx(ctx context.Context, tx pgx.Tx) context.Context {
	if tx == nil {
		return ctx
	}
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromContext returns the transaction attached with WithTx, if any.
func TxFromContext(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	return tx, ok
}
