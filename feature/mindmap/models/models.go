package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Node is one labeled vertex of the mind-map tree.
//
// The id is assigned at creation, never reused and never changed by a merge.
// Children order is display order; merge matching is by id, not position.
// Within one snapshot all ids are unique.
type Node struct {
	ID        string  `json:"id"`
	Text      string  `json:"text,omitempty"`
	Collapsed bool    `json:"collapsed,omitempty"`
	Children  []*Node `json:"children,omitempty"`
}

// ViewOffset is the client's 2D pan position. It is not merged
// structurally; the newer side's value wins wholesale.
type ViewOffset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Snapshot is one replica's full state at a point in time.
//
// Timestamp is the unix-millisecond wall clock of the replica's last local
// mutation and is only compared between two snapshots, never within one.
// Tombstones may be absent in older client schema variants and decodes to
// empty; the stored representation is the same schema as the wire one.
type Snapshot struct {
	Root       *Node      `json:"root"`
	Tombstones []string   `json:"tombstones,omitempty"`
	Timestamp  int64      `json:"timestamp"`
	Focused    string     `json:"focused,omitempty"`
	Offset     ViewOffset `json:"offset"`
}

// Validate rejects structurally invalid trees before they reach the merge
// layer, which assumes well-formed input. Only the presence of ids is
// checked here; id uniqueness is the client's invariant.
func (s *Snapshot) Validate() error {
	if s.Root == nil {
		return nil
	}
	return validateNode(s.Root)
}

func validateNode(n *Node) error {
	if n.ID == "" {
		return fmt.Errorf("node with empty id (text %q)", n.Text)
	}
	for _, c := range n.Children {
		if c == nil {
			return fmt.Errorf("node %s has a null child", n.ID)
		}
		if err := validateNode(c); err != nil {
			return err
		}
	}
	return nil
}

// tombstoneSep separates the node id from the deletion time in a record.
const tombstoneSep = "@"

// NewTombstone builds a deletion record for the given node id.
func NewTombstone(id string, deletedAt time.Time) string {
	return id + tombstoneSep + strconv.FormatInt(deletedAt.UnixMilli(), 10)
}

// ParseTombstone recovers the node id from a deletion record. A record
// that cannot be parsed yields ok=false and is ignored by the merge; the
// client has historically written a few malformed records and failing the
// whole sync over one of them is worse than skipping it.
func ParseTombstone(record string) (id string, ok bool) {
	id, _, found := strings.Cut(record, tombstoneSep)
	if !found || id == "" {
		return "", false
	}
	return id, true
}

// DeletedIDs parses every record of every given tombstone set into one
// deduplicated id set. Unparsable records contribute nothing.
func DeletedIDs(sets ...[]string) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, set := range sets {
		for _, record := range set {
			if id, ok := ParseTombstone(record); ok {
				ids[id] = struct{}{}
			}
		}
	}
	return ids
}

// UnionTombstones returns the set union of two tombstone record lists,
// preserving a's order and then b's. Records are compared verbatim;
// duplicates collapse.
func UnionTombstones(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	union := make([]string, 0, len(a)+len(b))
	for _, set := range [][]string{a, b} {
		for _, record := range set {
			if _, dup := seen[record]; dup {
				continue
			}
			seen[record] = struct{}{}
			union = append(union, record)
		}
	}
	return union
}
