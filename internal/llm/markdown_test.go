package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanMarkdownWrapper(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain json", input: `{"a":1}`, want: `{"a":1}`},
		{name: "surrounding whitespace", input: "\n  {\"a\":1}  \n", want: `{"a":1}`},
		{name: "json fence", input: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", input: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "fence without newline", input: "```{\"a\":1}```", want: `{"a":1}`},
		{name: "not json", input: "sorry, I cannot help", want: "sorry, I cannot help"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanMarkdownWrapper(tt.input))
			assert.Equal(t, tt.want, CleanJSON(tt.input))
		})
	}
}
