// Package kv provides the key/value persistence layer underneath the store.
//
// # Overview
//
// The package defines a Repository interface over a single table
// kv(key, value) and two implementations: SQLiteRepository (modernc.org/sqlite,
// the default single-device backend) and PostgresRepository (pgx stdlib
// driver). Both are bound to a dbx.DBTX, so they work on *sql.DB or inside a
// transaction.
//
// Values are opaque bytes; the store above decides how to encode them.
//
// Typical Usage
//
//	repo := kv.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, "studyhub_posts", []byte("[]"))
//	v, _ := repo.Get(ctx, "studyhub_posts") // nil, nil when absent
//	_ = repo.Clear(ctx)
package kv
