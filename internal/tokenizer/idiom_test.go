package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractIdioms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single idiom",
			text: "Here you can **break the ice** easily.",
			want: []string{"break the ice"},
		},
		{
			name: "multiple idioms in order of appearance",
			text: "First **Hit the road**, then **call it a day**.",
			want: []string{"hit the road", "call it a day"},
		},
		{
			name: "trailing colon stripped",
			text: "**Break the ice:** means to ease tension.",
			want: []string{"break the ice"},
		},
		{
			name: "first rune lowercased only",
			text: "**Once In A Blue Moon**",
			want: []string{"once In A Blue Moon"},
		},
		{
			name: "no markers returns empty list",
			text: "nothing emphasized here",
			want: nil,
		},
		{
			name: "unterminated marker ignored",
			text: "dangling **half open",
			want: nil,
		},
		{
			name: "duplicates kept",
			text: "**break the ice** and again **break the ice**",
			want: []string{"break the ice", "break the ice"},
		},
		{
			name: "empty span skipped",
			text: "stars **** here",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExtractIdioms(tt.text))
		})
	}
}

func TestLowerFirst(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "break", lowerFirst("Break"))
	assert.Equal(t, "already", lowerFirst("already"))
	assert.Equal(t, "", lowerFirst(""))
	// Devanagari has no case; the phrase passes through untouched.
	assert.Equal(t, "नमस्ते", lowerFirst("नमस्ते"))
}
