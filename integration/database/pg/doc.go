// Package pg manages PostgreSQL connectivity for the service.
//
// Connect builds a pgxpool.Pool from Config, verifying it with a ping and retrying
// with exponential backoff. Migrate applies goose migrations from an fs.FS (usually
// embedded) through pgx's database/sql adapter. Healthcheck returns a ping probe for
// readiness endpoints.
//
// Transactions travel in the context: InTx begins one, stores it with WithTx, and
// repositories pick it up through Conn so that every statement in fn runs on the
// same transaction.
//
//	err := pg.InTx(ctx, pool, func(ctx context.Context) error {
//		if err := repo.CreateUser(ctx, params); err != nil {
//			return err
//		}
//		return repo.CreateUserWord(ctx, wordParams)
//	})
//
// Error classifiers (IsNotFoundError, IsDuplicateKeyError, IsForeignKeyViolationError,
// IsTxClosedError) map driver errors to the cases callers branch on.
package pg
