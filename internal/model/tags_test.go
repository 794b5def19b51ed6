package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTags(t *testing.T) {
	tests := []struct {
		name string
		note string
		want []string
	}{
		{
			name: "no tags",
			note: "weekly groceries",
			want: nil,
		},
		{
			name: "single tag",
			note: "dinner out #restaurants",
			want: []string{"restaurants"},
		},
		{
			name: "multiple tags",
			note: "#vacation flights #travel",
			want: []string{"vacation", "travel"},
		},
		{
			name: "duplicate tags collapse",
			note: "#gift for mom #gift",
			want: []string{"gift"},
		},
		{
			name: "tag with dash and digits",
			note: "rent #q2-2026",
			want: []string{"q2-2026"},
		},
		{
			name: "bare hash is not a tag",
			note: "see issue # 42",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTags(tt.note))
		})
	}
}

func TestHasTag(t *testing.T) {
	assert.True(t, HasTag("coffee #work", "work"))
	assert.False(t, HasTag("coffee #work", "wor"))
	assert.False(t, HasTag("coffee", "work"))
}
