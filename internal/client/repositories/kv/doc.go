// Package kv provides the key-value repositories backing the todomini store.
//
// # Backends
//
//   - SQLRepository: a "kv" table in SQLite (modernc.org/sqlite) or
//     PostgreSQL (pgx), created by the embedded goose migration.
//   - FileRepository: one file per key in a directory, written atomically
//     through a temp file and rename.
//   - MemoryRepository: a map guarded by a mutex.
//
// All backends honour the same contract: Get on an absent key returns
// (nil, nil); Set is an upsert.
package kv
