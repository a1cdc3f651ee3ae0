// Package vocab implements the word-tracking blob feature.
//
// The client's word-tracking view keeps its whole state as one JSON blob.
// The server stores it under a single fixed key with no merge semantics:
// a PUT replaces the blob wholesale. The only validation applied is that
// the payload is JSON.
//
// # HTTP Endpoints
//
//   - GET /vocab : Returns the stored blob (404 when empty).
//   - PUT /vocab : Replaces the stored blob.
package vocab
