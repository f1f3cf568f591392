package shell_test

import (
	"testing"

	"github.com/gYonder/posh/internal/shell"
	"github.com/stretchr/testify/assert"
)

func TestLex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []shell.Word
	}{
		{
			name:  "simple command",
			input: "echo hello",
			expected: []shell.Word{
				{Value: "echo"},
				{Value: "hello"},
			},
		},
		{
			name:  "extra whitespace is ignored",
			input: "  echo    hello  world  ",
			expected: []shell.Word{
				{Value: "echo"},
				{Value: "hello"},
				{Value: "world"},
			},
		},
		{
			name:  "single quotes preserve everything literally",
			input: `echo 'hello   world' '$HOME' 'a\nb'`,
			expected: []shell.Word{
				{Value: "echo"},
				{Value: "hello   world", Quoted: true},
				{Value: "$HOME", Quoted: true},
				{Value: `a\nb`, Quoted: true},
			},
		},
		{
			name:  "double quotes allow backslash escaping of \\ and \"",
			input: `echo "hello \"world\"" "back\\slash"`,
			expected: []shell.Word{
				{Value: "echo"},
				{Value: `hello "world"`, Quoted: true},
				{Value: `back\slash`, Quoted: true},
			},
		},
		{
			name:  "backslash in double quotes is literal before other chars",
			input: `echo "a\tb"`,
			expected: []shell.Word{
				{Value: "echo"},
				{Value: `a\tb`, Quoted: true},
			},
		},
		{
			name:  "unquoted backslash escapes the next character",
			input: `echo hello\ world`,
			expected: []shell.Word{
				{Value: "echo"},
				{Value: "hello world"},
			},
		},
		{
			name:  "adjacent quoted and unquoted fragments merge into one word",
			input: `echo hello" "world'!'`,
			expected: []shell.Word{
				{Value: "echo"},
				{Value: "hello world!", Quoted: true},
			},
		},
		{
			name:  "empty quotes produce an empty word",
			input: `echo '' ""`,
			expected: []shell.Word{
				{Value: "echo"},
				{Value: "", Quoted: true},
				{Value: "", Quoted: true},
			},
		},
		{
			name:  "unterminated quote closes implicitly at end of input",
			input: `echo 'unterminated`,
			expected: []shell.Word{
				{Value: "echo"},
				{Value: "unterminated", Quoted: true},
			},
		},
		{
			name:     "blank line yields no words",
			input:    "   ",
			expected: nil,
		},
		{
			name:  "multi-byte UTF-8 characters pass through untouched",
			input: "echo café 日本語",
			expected: []shell.Word{
				{Value: "echo"},
				{Value: "café"},
				{Value: "日本語"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shell.Lex(tt.input))
		})
	}
}
