// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client (AWS S3 or self-hosted MinIO) and is used to
// publish SQL exports of the listing feed.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Helpers
//
//   - EnsureBucket: creates the export bucket on first use.
//   - PutText: uploads a text payload such as a SQL dump.
//   - ListKeys: lists the keys of previous exports.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.EnsureBucket(ctx, client, "listing-exports", "")
//	info, err := storage.PutText(ctx, client, "listing-exports", "exports/x.sql", "application/sql", dump)
package storage
