package analysis

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/Veraticus/fraudwatch/internal/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Record count bounds requested from the model.
const (
	MinRecords = 5
	MaxRecords = 10
)

// PromptData is the input to the analysis prompt template.
type PromptData struct {
	Query               string
	MinRecords          int
	MaxRecords          int
	MinScore            int
	MaxScore            int
	SuspiciousThreshold int
}

// PromptBuilder renders the analysis prompts from embedded templates.
type PromptBuilder struct {
	templates map[string]*template.Template
}

// NewPromptBuilder loads the embedded templates.
func NewPromptBuilder() (*PromptBuilder, error) {
	pb := &PromptBuilder{
		templates: make(map[string]*template.Template),
	}

	for _, name := range []string{"analysis_prompt", "system_prompt"} {
		filename := fmt.Sprintf("templates/%s.tmpl", name)
		tmpl, err := template.New(name + ".tmpl").ParseFS(templateFS, filename)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pb.templates[name] = tmpl
	}

	return pb, nil
}

// BuildAnalysisPrompt embeds the raw query in the analysis instruction.
func (pb *PromptBuilder) BuildAnalysisPrompt(query string) (string, error) {
	return pb.execute("analysis_prompt", PromptData{
		Query:               query,
		MinRecords:          MinRecords,
		MaxRecords:          MaxRecords,
		MinScore:            model.MinFraudScore,
		MaxScore:            model.MaxFraudScore,
		SuspiciousThreshold: model.HighRiskThreshold,
	})
}

// BuildSystemPrompt returns the fixed system instruction.
func (pb *PromptBuilder) BuildSystemPrompt() (string, error) {
	return pb.execute("system_prompt", nil)
}

func (pb *PromptBuilder) execute(name string, data any) (string, error) {
	tmpl, ok := pb.templates[name]
	if !ok {
		return "", fmt.Errorf("template %s not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}
