// Package lock provides a redis-backed lock that keeps two processes from
// running a reconciliation at the same time.
//
// The lock is a single key set with NX and a TTL. The value is a random token
// and release is a compare-and-delete script, so a process never frees a lock
// it no longer owns. RedisLocker satisfies reconcile.Locker.
package lock
