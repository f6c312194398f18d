// Package blobstore abstracts where serialized trees live.
//
// LocalStore writes through the local file system with atomic
// temp-and-rename visibility; MemoryStore keeps blobs in memory for tests.
// The minio and s3 subpackages back the same interface with object storage,
// and ThrottledStore rate-limits any inner store.
package blobstore
