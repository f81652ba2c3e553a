// Package reconcile provides the sync engine that reconciles an externally
// sourced snapshot against persisted state.
//
// # Architecture
//
// A Spec wires three pieces for one entity type:
//
//  1. Source: fetches the full snapshot (one network read, no retries).
//  2. Store: enumerates active keys and applies insert, update and soft delete.
//  3. Key: extracts the identity key used to match snapshot and store.
//
// # Run
//
// Engine.Run fetches the snapshot, reads the baseline of active keys, computes
// a Plan with Diff and applies it in a fixed order: deletes, then updates, then
// additions. Each record is processed independently; a failing record appends a
// message to SyncResult.Errors and the batch continues. Fetch and parse failures
// abort the run before anything is applied.
//
// The baseline read is soft: a store outage yields an empty baseline unless
// Spec.FailOnBaselineError is set and the store implements BaselineLoader.
//
// # Concurrency
//
// The engine keeps no state between runs. Guard coalesces concurrent runs in
// one process with singleflight and can hold a cross-process Locker.
//
// # Usage Example
//
//	engine := reconcile.NewEngine(reconcile.Spec[models.Listing]{
//	    Name:   "listings",
//	    Source: feed,
//	    Store:  repo,
//	    Key:    func(l models.Listing) string { return l.Code },
//	}, logger)
//
//	// Dry run
//	plan, err := engine.Plan(ctx)
//
//	// Full run
//	result := engine.Run(ctx)
package reconcile
