package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTombstoneRoundTrip(t *testing.T) {
	record := NewTombstone("abc-123", time.UnixMilli(1700000000000))
	assert.Equal(t, "abc-123@1700000000000", record)

	id, ok := ParseTombstone(record)
	require.True(t, ok)
	assert.Equal(t, "abc-123", id)
}

func TestParseTombstone_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{"Empty", ""},
		{"NoSeparator", "abc-123"},
		{"EmptyID", "@1700000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseTombstone(tt.record)
			assert.False(t, ok)
		})
	}
}

func TestDeletedIDs(t *testing.T) {
	ids := DeletedIDs(
		[]string{"a@1", "b@2", "broken"},
		[]string{"a@3", "c@4", ""},
	)

	// Duplicates collapse across sets; malformed records contribute nothing.
	assert.Equal(t, map[string]struct{}{"a": {}, "b": {}, "c": {}}, ids)
}

func TestUnionTombstones(t *testing.T) {
	union := UnionTombstones(
		[]string{"a@1", "b@2"},
		[]string{"b@2", "c@3"},
	)

	assert.Equal(t, []string{"a@1", "b@2", "c@3"}, union)
}

func TestSnapshot_Validate(t *testing.T) {
	t.Run("NilRoot", func(t *testing.T) {
		assert.NoError(t, (&Snapshot{}).Validate())
	})

	t.Run("WellFormed", func(t *testing.T) {
		s := &Snapshot{Root: &Node{ID: "root", Children: []*Node{{ID: "a"}}}}
		assert.NoError(t, s.Validate())
	})

	t.Run("MissingID", func(t *testing.T) {
		s := &Snapshot{Root: &Node{ID: "root", Children: []*Node{{Text: "no id"}}}}
		assert.Error(t, s.Validate())
	})

	t.Run("NullChild", func(t *testing.T) {
		s := &Snapshot{Root: &Node{ID: "root", Children: []*Node{nil}}}
		assert.Error(t, s.Validate())
	})
}

// Older clients serialized snapshots without deletion tracking; the
// tombstone list must decode as empty, not fail.
func TestSnapshot_DecodeLegacySchema(t *testing.T) {
	raw := `{"root":{"id":"root","children":[{"id":"a","text":"hola"}]},"timestamp":1700000000000}`

	var s Snapshot
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	assert.Empty(t, s.Tombstones)
	assert.Equal(t, int64(1700000000000), s.Timestamp)
	require.NotNil(t, s.Root)
	require.Len(t, s.Root.Children, 1)
	assert.Equal(t, "hola", s.Root.Children[0].Text)
}
