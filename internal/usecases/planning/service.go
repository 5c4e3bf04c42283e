package planning

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/repository"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/config"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/domain"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/apiErrors"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/log"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/utils"
	"github.com/pmezard/go-difflib/difflib"
)

var bodyKeys = []string{"executiveSummary", "industry", "targetAudience", "valueProposition", "marketingChannels", "kpis"}

type concepts struct {
	Industry         string `json:"industry"`
	TargetAudience   string `json:"targetAudience"`
	ValueProposition string `json:"valueProposition"`
}

type channelPlan struct {
	MarketingChannels []string `json:"marketingChannels"`
	KPIs              []string `json:"kpis"`
}

type summary struct {
	ExecutiveSummary string `json:"executiveSummary"`
}

type Service struct {
	planRepo  repository.PlanRepository
	generator Generator
	extractor ContentExtractor
	executor  CampaignExecutor
	publisher EventPublisher

	pollInterval    time.Duration
	maxPollInterval time.Duration
	deadline        time.Duration

	nowFn func() time.Time
	newID func() string
}

func NewService(
	cfg config.Extractor,
	planRepo repository.PlanRepository,
	generator Generator,
	extractor ContentExtractor,
	executor CampaignExecutor,
	publisher EventPublisher,
) *Service {
	return &Service{
		planRepo:        planRepo,
		generator:       generator,
		extractor:       extractor,
		executor:        executor,
		publisher:       publisher,
		pollInterval:    cfg.PollInterval,
		maxPollInterval: max(cfg.MaxPollInterval, cfg.PollInterval),
		deadline:        cfg.Deadline,
		nowFn:           func() time.Time { return time.Now().UTC() },
		newID:           utils.NewPlanID,
	}
}

// BuildPlan executa a cadeia de três prompts (conceitos, canais/KPIs, resumo)
// e grava o plano como rascunho. Nada é gravado se qualquer etapa falhar.
func (s *Service) BuildPlan(ctx context.Context, input domain.BuildPlanInput) (*domain.Plan, error) {
	rawText := strings.TrimSpace(input.RawText)

	var sourceText string
	switch {
	case rawText != "" && input.Artifact != nil:
		return nil, NewPlanError(ErrInvalidInput, apiErrors.ErrInvalidInput, "informe rawText ou artifact, não ambos")
	case rawText != "":
		sourceText = rawText
	case input.Artifact != nil:
		text, err := s.extractText(ctx, *input.Artifact)
		if err != nil {
			return nil, err
		}
		sourceText = text
	default:
		return nil, NewPlanError(ErrInvalidInput, apiErrors.ErrInvalidInput, "rawText ou artifact é obrigatório")
	}

	data := promptData{SourceText: sourceText}

	var stage1 concepts
	if err := s.generateStage(ctx, PromptConcepts, data, &stage1, "industry", "targetAudience", "valueProposition"); err != nil {
		return nil, err
	}
	data.Concepts = stage1

	var stage2 channelPlan
	if err := s.generateStage(ctx, PromptChannels, data, &stage2, "marketingChannels", "kpis"); err != nil {
		return nil, err
	}
	data.Channels = stage2

	var stage3 summary
	if err := s.generateStage(ctx, PromptSummary, data, &stage3, "executiveSummary"); err != nil {
		return nil, err
	}

	now := s.nowFn()
	plan := &domain.Plan{
		ID: s.newID(),
		Body: domain.PlanBody{
			ExecutiveSummary:  stage3.ExecutiveSummary,
			Industry:          stage1.Industry,
			TargetAudience:    stage1.TargetAudience,
			ValueProposition:  stage1.ValueProposition,
			MarketingChannels: nonNil(stage2.MarketingChannels),
			KPIs:              nonNil(stage2.KPIs),
		},
		SourceText: sourceText,
		Status:     domain.PlanStatusDraft,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, storeError(err, plan.ID)
	}

	log.ForContext(ctx).WithField("plan_id", plan.ID).Info("Plano criado como rascunho")
	s.publish(ctx, domain.NewPlanEvent(domain.PlanEventCreated, plan, now, nil))

	return plan, nil
}

// RefinePlan substitui apenas o corpo do plano pela versão refinada pelo modelo.
// A escrita é condicionada à versão lida, então refinamentos concorrentes não se sobrescrevem.
func (s *Service) RefinePlan(ctx context.Context, id, instruction string) (*domain.RefinementResult, error) {
	instruction = strings.TrimSpace(instruction)
	if instruction == "" {
		return nil, NewPlanErrorWithID(ErrMissingInstruction, apiErrors.ErrMissingInstruction, id, "")
	}

	current, err := s.getPlan(ctx, id)
	if err != nil {
		return nil, err
	}

	prompt, err := renderPrompt(PromptRefine, promptData{Body: current.Body, Instruction: instruction})
	if err != nil {
		return nil, NewPlanErrorWithID(ErrRefinementParseFailed, apiErrors.ErrRefinementParseFailed, id, err.Error())
	}

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, generationError(err, id)
	}

	var refined domain.PlanBody
	if err := DecodeObject(raw, &refined, bodyKeys...); err != nil {
		logRawResponse(ctx, PromptRefine, id, raw, err)
		return nil, &PlanError{
			Err:     ErrRefinementParseFailed,
			Code:    apiErrors.ErrRefinementParseFailed,
			PlanID:  id,
			Details: err.Error(),
			Raw:     raw,
		}
	}
	refined.MarketingChannels = nonNil(refined.MarketingChannels)
	refined.KPIs = nonNil(refined.KPIs)

	updated, err := s.planRepo.UpdateBody(ctx, id, refined, current.Version)
	if err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return nil, NewPlanErrorWithID(ErrConcurrentModification, apiErrors.ErrConcurrentModification, id,
				fmt.Sprintf("versão %d não é mais a atual", current.Version))
		}
		return nil, storeError(err, id)
	}
	if updated == nil {
		return nil, NewPlanErrorWithID(ErrPlanNotFound, apiErrors.ErrPlanNotFound, id, "")
	}

	diff := BodyDiff(current.Body, updated.Body, current.Version, updated.Version)

	log.ForContext(ctx).WithFields(log.Fields{
		"plan_id": id,
		"version": updated.Version,
	}).Info("Plano refinado")
	s.publish(ctx, domain.NewPlanEvent(domain.PlanEventRefined, updated, s.nowFn(), map[string]any{
		"instruction": instruction,
		"diff":        diff,
	}))

	return &domain.RefinementResult{Plan: updated, Diff: diff}, nil
}

// ApprovePlan move o plano de draft para approved e dispara a campanha uma única vez.
// Reaprovação é rejeitada e só quem efetiva a transição executa a campanha.
func (s *Service) ApprovePlan(ctx context.Context, id string) (*domain.ApprovalResult, error) {
	current, err := s.getPlan(ctx, id)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransitionTo(domain.PlanStatusApproved) {
		return nil, NewPlanErrorWithID(ErrAlreadyApproved, apiErrors.ErrAlreadyApproved, id, "")
	}

	updated, err := s.planRepo.UpdateStatus(ctx, id, domain.PlanStatusApproved, current.Version)
	if err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return nil, NewPlanErrorWithID(ErrConcurrentModification, apiErrors.ErrConcurrentModification, id,
				fmt.Sprintf("versão %d não é mais a atual", current.Version))
		}
		return nil, storeError(err, id)
	}
	if updated == nil {
		return nil, NewPlanErrorWithID(ErrPlanNotFound, apiErrors.ErrPlanNotFound, id, "")
	}

	// o repositório devolve a linha gravada pela própria transição
	approved := updated

	logger := log.ForContext(ctx).WithField("plan_id", id)
	logger.Info("Plano aprovado, iniciando campanha")
	s.publish(ctx, domain.NewPlanEvent(domain.PlanEventApproved, approved, s.nowFn(), nil))

	execution := s.executor.ExecuteCampaign(ctx, approved.ID, approved.Body)

	sent, failed, unsupported := execution.Counts()
	logger.WithFields(log.Fields{
		"sent":        sent,
		"failed":      failed,
		"unsupported": unsupported,
	}).Info(execution.Message)
	s.publish(ctx, domain.NewPlanEvent(domain.PlanEventCampaignExecuted, approved, s.nowFn(), execution))

	return &domain.ApprovalResult{Plan: approved, Execution: execution}, nil
}

func (s *Service) GetPlan(ctx context.Context, id string) (*domain.Plan, error) {
	return s.getPlan(ctx, id)
}

func (s *Service) ListPlans(ctx context.Context, status domain.PlanStatus) ([]*domain.Plan, error) {
	if status != "" && !status.IsValid() {
		return nil, NewPlanError(ErrInvalidInput, apiErrors.ErrInvalidInput, fmt.Sprintf("status inválido: %q", status))
	}

	plans, err := s.planRepo.List(ctx, status)
	if err != nil {
		return nil, storeError(err, "")
	}
	return plans, nil
}

func (s *Service) getPlan(ctx context.Context, id string) (*domain.Plan, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewPlanError(ErrInvalidInput, apiErrors.ErrInvalidInput, "id do plano é obrigatório")
	}

	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, id)
	}
	if plan == nil {
		return nil, NewPlanErrorWithID(ErrPlanNotFound, apiErrors.ErrPlanNotFound, id, "")
	}
	return plan, nil
}

// generateStage renderiza o prompt da etapa, chama o modelo e decodifica a resposta em out.
func (s *Service) generateStage(ctx context.Context, stage string, data promptData, out any, required ...string) error {
	prompt, err := renderPrompt(stage, data)
	if err != nil {
		return NewPlanError(ErrPlanGenerationFailed, apiErrors.ErrPlanGenerationFailed, err.Error())
	}

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return generationError(err, "")
	}

	if err := DecodeObject(raw, out, required...); err != nil {
		logRawResponse(ctx, stage, "", raw, err)
		return &PlanError{
			Err:     ErrPlanGenerationFailed,
			Code:    apiErrors.ErrPlanGenerationFailed,
			Details: fmt.Sprintf("etapa %s: %v", stage, err),
			Raw:     raw,
		}
	}

	return nil
}

// publish é best-effort: falhas de publicação nunca desfazem a operação.
func (s *Service) publish(ctx context.Context, event domain.PlanEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.ForContext(ctx).WithError(err).WithField("plan_id", event.PlanID).
			Warnf("Falha ao publicar evento %s", event.Type)
	}
}

// BodyDiff gera o diff unificado entre duas versões do corpo do plano.
func BodyDiff(before, after domain.PlanBody, fromVersion, toVersion int) string {
	a, _ := json.MarshalIndent(before, "", "  ")
	b, _ := json.MarshalIndent(after, "", "  ")

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(a)),
		B:        difflib.SplitLines(string(b)),
		FromFile: fmt.Sprintf("v%d", fromVersion),
		ToFile:   fmt.Sprintf("v%d", toVersion),
		Context:  2,
	})
	if err != nil {
		return ""
	}
	return diff
}

func logRawResponse(ctx context.Context, stage, planID, raw string, err error) {
	log.ForContext(ctx).WithError(err).WithFields(log.Fields{
		"stage":        stage,
		"plan_id":      planID,
		"raw_response": raw,
	}).Warn("Resposta do modelo fora do formato esperado")
}

func generationError(err error, planID string) *PlanError {
	return NewPlanErrorWithID(ErrGenerationFailed, apiErrors.ErrExternalService, planID, err.Error())
}

func storeError(err error, planID string) *PlanError {
	return NewPlanErrorWithID(ErrStoreFailure, apiErrors.ErrDatabaseOperation, planID, err.Error())
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
