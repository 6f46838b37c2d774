package clause

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \n\t  ", ""},
		{"tabs become spaces", "a\tb", "a b"},
		{"carriage returns become newlines", "a\rb", "a\nb"},
		{"crlf yields paragraph break", "a\r\nb", "a\n\nb"},
		{"newline runs collapse to two", "a\n\n\n\n\nb", "a\n\nb"},
		{"space runs collapse to one", "a    b", "a b"},
		{"leading and trailing trimmed", "  hello world  ", "hello world"},
		{"mixed", "\tone\r\n\n\ntwo   three\n", "one\n\ntwo three"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"ARTICLE ONE\n\n\nThe\tparties   agree as follows.\r\n",
		"plain single line",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}
