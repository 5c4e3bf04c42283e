package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/cache"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/config"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/domain"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/usecases/monitoring"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/usecases/planning"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/log"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// RunSummary resume uma rodada do agente de monitoramento.
type RunSummary struct {
	Evaluated int `json:"evaluated"`
	Refined   int `json:"refined"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// MonitoringAgentService avalia periodicamente os planos aprovados contra as
// métricas de campanha e refina os que o modelo indicar.
type MonitoringAgentService struct {
	scheduler          *gocron.Scheduler
	config             config.Monitoring
	planner            planning.Planner
	monitor            monitoring.Monitor
	budget             cache.RefinementBudget
	baseCtx            context.Context
	runRunning         bool
	runMutex           sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastSummary        RunSummary
}

func NewMonitoringAgentService(
	cfg config.Monitoring,
	planner planning.Planner,
	monitor monitoring.Monitor,
	budget cache.RefinementBudget,
) *MonitoringAgentService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule":   cfg.CronSchedule,
		"enabled":         cfg.Enabled,
		"max_refinements": cfg.MaxRefinements,
		"window":          cfg.Window.String(),
	}).Info("Configuração do agente de monitoramento carregada")

	return &MonitoringAgentService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    cfg,
		planner:   planner,
		monitor:   monitor,
		budget:    budget,
		baseCtx:   context.Background(),
	}
}

// Start agenda as rodadas. O agendador para quando ctx é cancelado.
func (s *MonitoringAgentService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Agente de monitoramento desabilitado por configuração")
		return nil
	}

	s.baseCtx = ctx

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agente de monitoramento")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunOnce(s.baseCtx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar agente de monitoramento: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agente de monitoramento")
		s.scheduler.Stop()
	}()

	return nil
}

// RunOnce executa uma rodada completa. Retorna false se outra rodada já estava em andamento.
func (s *MonitoringAgentService) RunOnce(ctx context.Context) (RunSummary, bool) {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Rodada de monitoramento já em andamento, ignorando")
		return RunSummary{}, false
	}
	s.runRunning = true
	s.lastRunStartedAt = time.Now()
	s.runMutex.Unlock()

	ctx, _ = log.WithCorrelationID(ctx, "")
	logger := log.ForContext(ctx)

	summary := s.evaluateApprovedPlans(ctx, logger)

	s.runMutex.Lock()
	s.runRunning = false
	s.lastRunCompletedAt = time.Now()
	s.lastSummary = summary
	s.runMutex.Unlock()

	logger.Infof("Rodada de monitoramento concluída: %d avaliados, %d refinados, %d ignorados, %d com falha",
		summary.Evaluated, summary.Refined, summary.Skipped, summary.Failed)

	return summary, true
}

func (s *MonitoringAgentService) evaluateApprovedPlans(ctx context.Context, logger log.Logger) RunSummary {
	var summary RunSummary

	plans, err := s.planner.ListPlans(ctx, domain.PlanStatusApproved)
	if err != nil {
		logger.WithError(err).Error("Erro ao listar planos aprovados para monitoramento")
		return summary
	}

	if len(plans) == 0 {
		logger.Info("Nenhum plano aprovado para monitorar")
		return summary
	}

	for _, plan := range plans {
		if ctx.Err() != nil {
			logger.Warn("Rodada de monitoramento interrompida")
			return summary
		}

		planLogger := logger.WithField("plan_id", plan.ID)

		allowed, err := s.budget.Allow(ctx, plan.ID)
		if err != nil {
			planLogger.WithError(err).Warn("Erro ao consultar orçamento de refinamentos")
			summary.Failed++
			continue
		}
		if !allowed {
			planLogger.Info("Orçamento de refinamentos esgotado, plano ignorado nesta janela")
			summary.Skipped++
			continue
		}

		result, err := s.monitor.EvaluateAndMaybeRefine(ctx, plan.ID)
		if errors.Is(err, monitoring.ErrNoMetrics) {
			// As métricas são globais: sem nenhuma, nenhum plano pode ser avaliado.
			logger.Info("Nenhuma métrica de campanha registrada, rodada encerrada")
			return summary
		}
		if err != nil {
			planLogger.WithError(err).Error("Erro ao avaliar plano")
			summary.Failed++
			continue
		}

		summary.Evaluated++
		if !result.Refined {
			continue
		}

		summary.Refined++
		if err := s.budget.Record(ctx, plan.ID); err != nil {
			planLogger.WithError(err).Warn("Erro ao registrar refinamento no orçamento")
		}
	}

	return summary
}

// TriggerManualSync inicia uma rodada fora do agendamento.
func (s *MonitoringAgentService) TriggerManualSync() bool {
	s.runMutex.Lock()
	running := s.runRunning
	s.runMutex.Unlock()

	if running {
		logrus.Info("Rodada de monitoramento já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando rodada manual de monitoramento")
	go s.RunOnce(s.baseCtx)
	return true
}

// GetStatus retorna o status atual do agendador
func (s *MonitoringAgentService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"max_refinements":       s.config.MaxRefinements,
		"refinement_window":     s.config.Window.String(),
		"running":               s.runRunning,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_run":              s.lastSummary,
	}
}
