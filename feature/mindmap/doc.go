// Package mindmap implements the mind-map document synchronization feature.
//
// The browser client holds its own copy of the document (a labeled tree of
// study topics and words) and re-synchronizes by pushing a snapshot. The
// server reconciles that snapshot with the stored one using a two-replica,
// last-writer-wins tree merge with tombstones, so edits made offline on
// either side survive and deletions never resurrect.
//
// # Components
//
//   - models: the Node/Snapshot data model and tombstone record handling.
//   - merge: the pure reconciliation algorithm (no I/O, no state).
//   - Service: the fetch-merge-store cycle around the blob store.
//   - Handler: the HTTP surface.
//
// # HTTP Endpoints
//
//   - GET  /mindmap      : Returns the stored snapshot (404 when empty).
//   - POST /mindmap/sync : Merges the pushed snapshot and returns the result.
package mindmap
