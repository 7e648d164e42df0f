// Package memstore provides the in-memory implementations of the store
// interfaces. Each store owns one slice or map guarded by a single mutex;
// operations hold the lock for the whole call, which is acceptable because
// nothing inside a critical section blocks. State lives for the lifetime of
// the process only.
package memstore
