// Package store persists snapshot frames as named blobs.
//
// Backends:
//
//   - MemoryStore: in-process map, for tests and ephemeral sessions.
//   - LocalStore:  a directory on the local file system.
//   - store/minio: MinIO and other S3-compatible servers (minio-go).
//   - store/s3:    Amazon S3 (aws-sdk-go-v2).
//
// All backends report a missing blob with an error satisfying
// errors.Is(err, ErrNotFound). Names are slash-separated and relative to the
// backend's root or prefix.
package store
