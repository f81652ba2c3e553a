// Package listings is the HTTP feature that synchronizes the external listing
// feed into the imoveis table.
//
// The Service wires the feed source and the gorm store into a
// reconcile.Engine and runs it behind a reconcile.Guard, so HTTP triggers, the
// CLI and the scheduler never run two syncs at once. It also renders and
// uploads SQL exports of the feed.
//
// Routes (under /listings):
//
//	POST /sync          run a sync (200 ok, 207 partial, 409 locked elsewhere)
//	GET  /plan          dry run
//	GET  /feed          normalized feed
//	GET  /sql           INSERT statements as text/plain
//	POST /sql/upload    store the export in object storage
//	GET  /exports       uploaded export keys
//	GET  /:code         persisted row
package listings
