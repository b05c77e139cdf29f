// Package store provides byte storage backends for encrypted purchase caches.
//
// Each backend implements domain.Storage: named blobs that are read whole and
// replaced atomically. All methods are concurrency-safe via internal locking.
//
// The package includes:
//   - FileStorage: one file per cache name under a directory (temp file + rename)
//   - SQLiteStorage: one row per cache name in a SQLite database
//   - MemoryStorage: an in-process map, for tests and throwaway sessions
package store
