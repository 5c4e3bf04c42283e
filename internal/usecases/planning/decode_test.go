package planning

import (
	"testing"

	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeObject(t *testing.T) {
	type analysis struct {
		RefinementNeeded      bool   `json:"refinementNeeded"`
		RefinementInstruction string `json:"refinementInstruction"`
	}

	tests := []struct {
		name    string
		raw     string
		want    analysis
		wantErr bool
	}{
		{
			name: "objeto simples",
			raw:  `{"refinementNeeded": true, "refinementInstruction": "shorten summary"}`,
			want: analysis{RefinementNeeded: true, RefinementInstruction: "shorten summary"},
		},
		{
			name: "dentro de bloco markdown",
			raw:  "```json\n{\"refinementNeeded\": false}\n```",
			want: analysis{},
		},
		{
			name: "bloco markdown sem linguagem",
			raw:  "```\n{\"refinementNeeded\": false, \"refinementInstruction\": \"\"}\n```",
			want: analysis{},
		},
		{name: "texto livre", raw: "Sure! The plan looks fine.", wantErr: true},
		{name: "texto antes do objeto", raw: `Answer: {"refinementNeeded": false}`, wantErr: true},
		{name: "array", raw: `[{"refinementNeeded": false}]`, wantErr: true},
		{name: "chave obrigatória ausente", raw: `{"refinementInstruction": "x"}`, wantErr: true},
		{name: "chave obrigatória nula", raw: `{"refinementNeeded": null}`, wantErr: true},
		{name: "chave obrigatória nula com espaços", raw: `{"refinementNeeded":   null  }`, wantErr: true},
		{name: "chave obrigatória nula em bloco markdown", raw: "```json\n{\"refinementNeeded\": null}\n```", wantErr: true},
		{
			name: "chave opcional nula",
			raw:  `{"refinementNeeded": false, "refinementInstruction": null}`,
			want: analysis{},
		},
		{name: "tipo incorreto", raw: `{"refinementNeeded": "yes"}`, wantErr: true},
		{name: "json truncado", raw: `{"refinementNeeded": tru}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got analysis
			err := DecodeObject(tt.raw, &got, "refinementNeeded")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrompts_RenderAll(t *testing.T) {
	body := domain.PlanBody{ExecutiveSummary: "Resumo", MarketingChannels: []string{"Email"}}
	data := promptData{
		SourceText:  "dog toys",
		Concepts:    concepts{Industry: "Pet"},
		Channels:    channelPlan{MarketingChannels: []string{"Email"}},
		Body:        body,
		Instruction: "shorten",
		Metrics:     []*domain.MetricRecord{{ID: "email-1", Channel: "Email", Clicks: 10}},
	}

	for _, name := range []string{PromptConcepts, PromptChannels, PromptSummary, PromptRefine, PromptMonitor} {
		t.Run(name, func(t *testing.T) {
			out, err := renderPrompt(name, data)
			require.NoError(t, err)
			assert.NotEmpty(t, out)
		})
	}

	out, err := MonitoringPrompt(body, data.Metrics)
	require.NoError(t, err)
	assert.Contains(t, out, `"email-1"`)
	assert.Contains(t, out, `"executiveSummary": "Resumo"`)

	_, err = renderPrompt("unknown", data)
	assert.Error(t, err)
}

func TestLoadPrompts_MissingTemplate(t *testing.T) {
	_, err := loadPrompts([]byte("concepts: hi\n"))
	assert.Error(t, err)
}
