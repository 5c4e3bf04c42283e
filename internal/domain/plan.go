package domain

import "time"

type PlanStatus string

const (
	PlanStatusDraft    PlanStatus = "draft"
	PlanStatusApproved PlanStatus = "approved"
)

func (s PlanStatus) IsValid() bool {
	return s == PlanStatusDraft || s == PlanStatusApproved
}

// CanTransitionTo indica se o status pode avançar para next.
// O ciclo de vida só anda para frente: draft -> approved.
func (s PlanStatus) CanTransitionTo(next PlanStatus) bool {
	return s == PlanStatusDraft && next == PlanStatusApproved
}

// PlanBody é o plano de negócio/marketing gerado pelo modelo.
type PlanBody struct {
	ExecutiveSummary  string   `json:"executiveSummary"`
	Industry          string   `json:"industry"`
	TargetAudience    string   `json:"targetAudience"`
	ValueProposition  string   `json:"valueProposition"`
	MarketingChannels []string `json:"marketingChannels"`
	KPIs              []string `json:"kpis"`
}

type Plan struct {
	ID         string     `json:"id"`
	Body       PlanBody   `json:"body"`
	SourceText string     `json:"sourceText"`
	Status     PlanStatus `json:"status"`
	Version    int        `json:"version"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

type BuildPlanInput struct {
	RawText  string       `json:"rawText,omitempty"`
	Artifact *ArtifactRef `json:"artifact,omitempty"`
}

type RefinementResult struct {
	Plan *Plan  `json:"plan"`
	Diff string `json:"diff,omitempty"`
}

type ApprovalResult struct {
	Plan      *Plan            `json:"plan"`
	Execution *ExecutionResult `json:"executionResult"`
}
