// Package cmd wires the listing-sync command line.
//
// Commands:
//
//	start       HTTP API plus optional scheduled syncs
//	sync        one reconciliation run (--dry-run to only plan)
//	export      feed as INSERT statements (--file, --output, --upload)
//	integrity   schema and export bucket checks
package cmd
