// Package memstore provides in-memory implementations of the store
// interfaces. All state lives in process memory and is lost on restart;
// each store guards its collections with a mutex so that check-then-insert
// and scan-then-set sequences stay atomic under concurrent requests.
package memstore
