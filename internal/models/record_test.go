package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Get(t *testing.T) {
	record := Record{"a", "b", "c"}

	value, ok := record.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "b", value)

	_, ok = record.Get(3)
	assert.False(t, ok)

	_, ok = record.Get(-1)
	assert.False(t, ok)
}

func TestRecord_Clone(t *testing.T) {
	record := Record{"a", "b"}
	clone := record.Clone()
	clone[0] = "changed"

	assert.Equal(t, Record{"a", "b"}, record)
	assert.Equal(t, Record{"changed", "b"}, clone)
}

func TestRecord_Insert(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		index    int
		value    string
		expected Record
	}{
		{
			name:     "insert in the middle",
			record:   Record{"a", "c"},
			index:    1,
			value:    "b",
			expected: Record{"a", "b", "c"},
		},
		{
			name:     "insert at the start",
			record:   Record{"b", "c"},
			index:    0,
			value:    "a",
			expected: Record{"a", "b", "c"},
		},
		{
			name:     "index past the end appends",
			record:   Record{"a"},
			index:    5,
			value:    "b",
			expected: Record{"a", "b"},
		},
		{
			name:     "negative index prepends",
			record:   Record{"b"},
			index:    -1,
			value:    "a",
			expected: Record{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := tt.record.Clone()
			assert.Equal(t, tt.expected, tt.record.Insert(tt.index, tt.value))
			assert.Equal(t, original, tt.record, "Insert must not mutate the receiver")
		})
	}
}
