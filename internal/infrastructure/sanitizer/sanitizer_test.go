package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrict(t *testing.T) {
	svc := New()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text untouched",
			input:    "printer on fire",
			expected: "printer on fire",
		},
		{
			name:     "script removed",
			input:    `hello <script>alert("x")</script>world`,
			expected: "hello world",
		},
		{
			name:     "inline formatting stripped too",
			input:    "<b>urgent</b> <i>please</i><br>",
			expected: "urgent please",
		},
		{
			name:     "img removed",
			input:    `<img src="x" onerror="alert(1)">title`,
			expected: "title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.Strict(tt.input))
		})
	}
}

func TestInline(t *testing.T) {
	svc := New()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bold italic and br kept",
			input:    "<b>urgent</b> and <i>important</i><br>next line",
			expected: "<b>urgent</b> and <i>important</i><br>next line",
		},
		{
			name:     "script removed",
			input:    `before<script>alert("x")</script>after`,
			expected: "beforeafter",
		},
		{
			name:     "link unwrapped",
			input:    `see <a href="https://evil.example">here</a>`,
			expected: "see here",
		},
		{
			name:     "attributes stripped from allowed elements",
			input:    `<b onclick="alert(1)">bold</b>`,
			expected: "<b>bold</b>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.Inline(tt.input))
		})
	}
}
