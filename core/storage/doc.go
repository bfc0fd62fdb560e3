// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small Client interface, which supports both
// AWS S3 and self-hosted MinIO instances and is mocked in core/storage/mocks.
//
// Curriculum documents are published to and imported from the configured bucket
// through the JSON helpers:
//
//   - EnsureBucket: creates the bucket on first use.
//   - PutJSON: uploads a document with an application/json content type.
//   - ReadObject: downloads an object fully into memory.
//   - ListKeys: lists object keys under a prefix.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.PutJSON(ctx, client, "curriculum", "exports/curriculum/d1.json", data)
package storage
