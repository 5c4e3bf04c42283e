package planning

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	PromptConcepts = "concepts"
	PromptChannels = "channels"
	PromptSummary  = "summary"
	PromptRefine   = "refine"
	PromptMonitor  = "monitor"
)

//go:embed prompts.yaml
var promptsYAML []byte

var prompts = mustLoadPrompts(promptsYAML)

// promptData reúne tudo que os templates podem referenciar.
type promptData struct {
	SourceText  string
	Concepts    any
	Channels    any
	Body        domain.PlanBody
	Instruction string
	Metrics     []*domain.MetricRecord
}

func mustLoadPrompts(raw []byte) map[string]*template.Template {
	templates, err := loadPrompts(raw)
	if err != nil {
		panic(err)
	}
	return templates
}

func loadPrompts(raw []byte) (map[string]*template.Template, error) {
	var sources map[string]string
	if err := yaml.Unmarshal(raw, &sources); err != nil {
		return nil, fmt.Errorf("prompts: %w", err)
	}

	funcs := template.FuncMap{
		"json": func(v any) (string, error) {
			out, err := json.MarshalIndent(v, "", "  ")
			return string(out), err
		},
	}

	templates := make(map[string]*template.Template, len(sources))
	for name, src := range sources {
		tmpl, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(src)
		if err != nil {
			return nil, fmt.Errorf("prompts: template %q: %w", name, err)
		}
		templates[name] = tmpl
	}

	for _, name := range []string{PromptConcepts, PromptChannels, PromptSummary, PromptRefine, PromptMonitor} {
		if _, ok := templates[name]; !ok {
			return nil, fmt.Errorf("prompts: template %q ausente", name)
		}
	}

	return templates, nil
}

func renderPrompt(name string, data promptData) (string, error) {
	tmpl, ok := prompts[name]
	if !ok {
		return "", fmt.Errorf("prompts: template %q desconhecido", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MonitoringPrompt monta o prompt de análise de métricas do plano.
func MonitoringPrompt(body domain.PlanBody, metrics []*domain.MetricRecord) (string, error) {
	return renderPrompt(PromptMonitor, promptData{Body: body, Metrics: metrics})
}
