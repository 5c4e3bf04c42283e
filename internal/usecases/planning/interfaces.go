package planning

import (
	"context"

	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/domain"
)

// Generator envia um prompt ao modelo e devolve o texto cru da resposta.
// A decodificação estruturada é responsabilidade de quem chama.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ContentExtractor obtém texto de artefatos enviados pelo usuário.
// Extract atende os tipos síncronos (imagem, texto); StartJob e PollJob
// atendem documentos e vídeos.
type ContentExtractor interface {
	Extract(ctx context.Context, ref domain.ArtifactRef) (string, error)
	StartJob(ctx context.Context, ref domain.ArtifactRef) (string, error)
	PollJob(ctx context.Context, jobID string) (*domain.ExtractionJob, error)
}

// CampaignExecutor dispara os envios de um plano aprovado. Falhas por canal
// vêm no resultado, nunca como erro.
type CampaignExecutor interface {
	ExecuteCampaign(ctx context.Context, planID string, body domain.PlanBody) *domain.ExecutionResult
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.PlanEvent) error
}

// Refiner é o subconjunto usado pelo loop de monitoramento.
type Refiner interface {
	RefinePlan(ctx context.Context, id, instruction string) (*domain.RefinementResult, error)
}

type Planner interface {
	Refiner
	BuildPlan(ctx context.Context, input domain.BuildPlanInput) (*domain.Plan, error)
	ApprovePlan(ctx context.Context, id string) (*domain.ApprovalResult, error)
	GetPlan(ctx context.Context, id string) (*domain.Plan, error)
	ListPlans(ctx context.Context, status domain.PlanStatus) ([]*domain.Plan, error)
}
