// Package pg connects to PostgreSQL through a pgx pool, applies goose migrations
// and exposes a health probe.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, settings.Migrations, settings.MigrationsDir, log); err != nil {
//		return err
//	}
//
// Connect retries with exponential backoff so that several instances restarting
// together do not hammer the database. Migrate wraps the pool with the pgx
// database/sql adapter because goose does not speak pgx natively.
//
// WithTx attaches a pgx.Tx to a context; stores that call TxFromContext run
// their statements inside it:
//
//	tx, err := pool.Begin(ctx)
//	defer tx.Rollback(ctx)
//	ctx = pg.WithTx(ctx, tx)
//	_, err = settings.Save(ctx, store, s)
//	err = tx.Commit(ctx)
//
// Error helpers classify common failures: IsNotFoundError, IsDuplicateKeyError
// and IsTxClosedError.
package pg
