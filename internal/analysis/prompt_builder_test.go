package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptBuilder_BuildAnalysisPrompt(t *testing.T) {
	pb, err := NewPromptBuilder()
	require.NoError(t, err)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "transaction id",
			query: "TXN12345678",
			want:  []string{`The user query is: "TXN12345678".`, "generate only that transaction"},
		},
		{
			name:  "amount filter",
			query: "amount > 50000",
			want:  []string{`The user query is: "amount > 50000".`, "5 to 10 mock transactions"},
		},
		{
			name:  "suspicious activity",
			query: "suspicious activity",
			want:  []string{"fraud score over 75", "at least one generated transaction is suspicious", "'suspiciousFound'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt, err := pb.BuildAnalysisPrompt(tt.query)
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, prompt, want)
			}
		})
	}
}

func TestPromptBuilder_QueryIsNotEscaped(t *testing.T) {
	pb, err := NewPromptBuilder()
	require.NoError(t, err)

	prompt, err := pb.BuildAnalysisPrompt(`<b>"quoted" & more</b>`)
	require.NoError(t, err)
	assert.Contains(t, prompt, `<b>"quoted" & more</b>`)
}

func TestPromptBuilder_BuildSystemPrompt(t *testing.T) {
	pb, err := NewPromptBuilder()
	require.NoError(t, err)

	system, err := pb.BuildSystemPrompt()
	require.NoError(t, err)
	assert.Contains(t, system, "JSON")
}

func TestResponseSchema(t *testing.T) {
	schema := ResponseSchema()

	assert.Equal(t, []string{"suspiciousFound", "transactions"}, schema.Required)
	items := schema.Properties["transactions"].Items
	require.NotNil(t, items)
	assert.ElementsMatch(t, []string{"id", "amount", "fraudScore", "timestamp", "isSuspicious"}, items.Required)
	assert.Equal(t, "integer", string(items.Properties["fraudScore"].Type))
}
