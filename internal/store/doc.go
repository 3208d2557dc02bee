// Package store persists benchmark run history.
//
// Two backends implement domain.HistoryStore:
//
//   - FileStore keeps every run in one indented JSON array, rewritten through
//     a temp file and rename so a crash never leaves a half-written file.
//   - SQLiteStore keeps one row per run in a "runs" table (WAL journal).
//
// Open picks a backend by driver name ("json" or "sqlite").
package store
