// Package store defines the persistence interfaces consumed by services and
// handlers, plus the sentinel errors their implementations return. The only
// implementations in this repository are the seeded in-memory stores in
// internal/platform/memstore; nothing survives a process restart.
package store
