package monitoring

import (
	"context"
	"errors"
	"strings"

	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/repository"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/domain"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/usecases/planning"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/apiErrors"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/log"
)

var (
	ErrNoMetrics           = errors.New("no metrics found")
	ErrAnalysisParseFailed = errors.New("monitoring analysis could not be parsed")
)

const (
	messageNoAction = "No refinement needed"
	messageRefined  = "Plan refined based on campaign metrics"
)

type Monitor interface {
	EvaluateAndMaybeRefine(ctx context.Context, planID string) (*domain.MonitoringResult, error)
}

type Service struct {
	planRepo   repository.PlanRepository
	metricRepo repository.MetricRepository
	generator  planning.Generator
	refiner    planning.Refiner
}

func NewService(
	planRepo repository.PlanRepository,
	metricRepo repository.MetricRepository,
	generator planning.Generator,
	refiner planning.Refiner,
) *Service {
	return &Service{
		planRepo:   planRepo,
		metricRepo: metricRepo,
		generator:  generator,
		refiner:    refiner,
	}
}

// EvaluateAndMaybeRefine pede ao modelo uma avaliação das métricas atuais e,
// se ele indicar refinamento com uma instrução, refina o plano. Não há
// repetição aqui: cada chamada faz no máximo um refinamento.
func (s *Service) EvaluateAndMaybeRefine(ctx context.Context, planID string) (*domain.MonitoringResult, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, planning.NewPlanErrorWithID(planning.ErrStoreFailure, apiErrors.ErrDatabaseOperation, planID, err.Error())
	}
	if plan == nil {
		return nil, planning.NewPlanErrorWithID(planning.ErrPlanNotFound, apiErrors.ErrPlanNotFound, planID, "")
	}

	metrics, err := s.metricRepo.ListAll(ctx)
	if err != nil {
		return nil, planning.NewPlanErrorWithID(planning.ErrStoreFailure, apiErrors.ErrDatabaseOperation, planID, err.Error())
	}
	if len(metrics) == 0 {
		return nil, planning.NewPlanErrorWithID(ErrNoMetrics, apiErrors.ErrNoMetrics, planID, "")
	}

	prompt, err := planning.MonitoringPrompt(plan.Body, metrics)
	if err != nil {
		return nil, planning.NewPlanErrorWithID(ErrAnalysisParseFailed, apiErrors.ErrAnalysisParseFailed, planID, err.Error())
	}

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, planning.NewPlanErrorWithID(planning.ErrGenerationFailed, apiErrors.ErrExternalService, planID, err.Error())
	}

	logger := log.ForContext(ctx).WithField("plan_id", planID)

	var analysis domain.MonitoringAnalysis
	if err := planning.DecodeObject(raw, &analysis, "refinementNeeded"); err != nil {
		logger.WithError(err).WithFields(log.Fields{
			"stage":        planning.PromptMonitor,
			"raw_response": raw,
		}).Warn("Resposta do modelo fora do formato esperado")
		return nil, &planning.PlanError{
			Err:     ErrAnalysisParseFailed,
			Code:    apiErrors.ErrAnalysisParseFailed,
			PlanID:  planID,
			Details: err.Error(),
			Raw:     raw,
		}
	}
	analysis.RefinementInstruction = strings.TrimSpace(analysis.RefinementInstruction)

	if !analysis.RefinementNeeded || analysis.RefinementInstruction == "" {
		logger.Info("Monitoramento sem ação")
		return &domain.MonitoringResult{
			Refined:  false,
			Message:  messageNoAction,
			Analysis: analysis,
		}, nil
	}

	logger.Infof("Monitoramento solicitou refinamento: %s", analysis.RefinementInstruction)

	refined, err := s.refiner.RefinePlan(ctx, planID, analysis.RefinementInstruction)
	if err != nil {
		return nil, err
	}

	return &domain.MonitoringResult{
		Refined:  true,
		Message:  messageRefined,
		Analysis: analysis,
		Plan:     refined.Plan,
		Diff:     refined.Diff,
	}, nil
}
