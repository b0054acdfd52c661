// Package snapshot serializes the observable state of a clustering session
// (dataset, centroids, remembered initial centroids, progress) into a small
// self-describing binary frame.
//
// Frame layout:
//
//	magic "KMSN" (4) | version (1) | compression (1) | payload
//
// The payload is the JSON encoding of State, optionally compressed with LZ4
// (fast, good for frequent autosaves) or Zstandard (smaller, good for
// archived runs). The compression byte makes every frame decodable without
// out-of-band knowledge.
//
// Changing the payload layout requires a new Version; Decode rejects
// versions it does not know.
package snapshot
