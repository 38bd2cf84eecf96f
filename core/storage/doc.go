// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a narrow interface covering the
// operations the artwork mirror needs: checking bucket existence, creating
// the bucket, uploading images, and checking whether an object already
// exists. The abstraction supports both AWS S3 and self-hosted MinIO
// instances and makes storage interactions easy to mock in unit tests
// (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "backlog")
package storage
