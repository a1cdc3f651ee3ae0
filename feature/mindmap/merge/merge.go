package merge

import (
	"time"

	"github.com/rubbishhaha/vocab/feature/mindmap/models"
)

// Reconcile merges two independently evolved snapshots into one.
//
// It is pure and total: it never mutates its inputs, performs no I/O, and
// has a defined result for every pair of well-formed snapshots. The side
// with the strictly greater timestamp becomes the merge base ("newer");
// on an exact tie remote is treated as newer and local as older, so the
// outcome never depends on map iteration order. The output carries the
// union of both tombstone sets and a fresh timestamp (the reconciliation
// time), which is what the next merge will compare against.
func Reconcile(remote, local *models.Snapshot, now time.Time) *models.Snapshot {
	deleted := models.DeletedIDs(remote.Tombstones, local.Tombstones)

	newer, older := remote, local
	if local.Timestamp > remote.Timestamp {
		newer, older = local, remote
	}

	return &models.Snapshot{
		Root:       mergeNodes(newer.Root, older.Root, deleted),
		Tombstones: models.UnionTombstones(remote.Tombstones, local.Tombstones),
		Timestamp:  now.UnixMilli(),
		Focused:    newer.Focused,
		Offset:     newer.Offset,
	}
}

// mergeNodes recursively merges two subtrees by node id.
//
// Precedence: a one-sided subtree is adopted unchanged (this is how
// concurrent additions survive); a tombstoned id is dropped no matter
// which side still carries content for it; otherwise newer's scalar
// fields win and the children are reconciled by id. Without tombstones
// the one-sided rule could not tell "added on this side" from "deleted
// on the other side" and every deletion would resurrect on merge.
func mergeNodes(newer, older *models.Node, deleted map[string]struct{}) *models.Node {
	if older == nil {
		return newer
	}
	if newer == nil {
		return older
	}
	if _, dead := deleted[newer.ID]; dead {
		return nil
	}
	if _, dead := deleted[older.ID]; dead {
		return nil
	}

	// Shallow copy: newer's payload fields win for this node, the child
	// sequence is rebuilt below. Neither input is modified.
	merged := *newer

	children := make([]*models.Node, 0, len(newer.Children))
	index := make(map[string]int, len(newer.Children))
	for _, c := range newer.Children {
		if _, dead := deleted[c.ID]; dead {
			continue
		}
		index[c.ID] = len(children)
		children = append(children, c)
	}

	for _, c := range older.Children {
		if _, dead := deleted[c.ID]; dead {
			continue
		}
		at, both := index[c.ID]
		if !both {
			// Branch that exists only on the older side: preserved,
			// appended after newer's children.
			children = append(children, c)
			continue
		}
		children[at] = mergeNodes(children[at], c, deleted)
	}

	// A matched recursion can return nil when a descendant pair hit a
	// tombstone; those slots are dropped.
	kept := children[:0]
	for _, c := range children {
		if c != nil {
			kept = append(kept, c)
		}
	}
	merged.Children = kept
	if len(kept) == 0 {
		merged.Children = nil
	}

	return &merged
}
