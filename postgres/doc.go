// Package postgres provides the relational persistence layer of the
// accounts service: connection management with retry, embedded goose
// migrations, a readiness probe, and the concrete user repository and
// session store.
//
// The pool is a database/sql pool over the pgx stdlib driver. Driver-level
// error shapes never escape this package: uniqueness violations map to
// user.ErrAlreadyExists, absent rows to user.ErrNotFound and
// session.ErrNotFound.
//
// Typical startup:
//
//	db, err := postgres.Connect(ctx, cfg)
//	if err != nil { ... }
//	defer db.Close()
//
//	if err := postgres.Migrate(ctx, db, log); err != nil { ... }
//
//	users := postgres.NewUserRepository(db)
//	sessions := postgres.NewSessionStore(db)
package postgres
