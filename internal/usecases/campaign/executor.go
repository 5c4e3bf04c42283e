package campaign

import (
	"context"
	"fmt"
	"time"

	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/repository"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/config"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/domain"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/log"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const messageNoChannels = "No marketing channels to execute"

type Executor struct {
	metricRepo  repository.MetricRepository
	senders     map[domain.ChannelKind]Sender
	random      RandomSource
	cfg         config.Campaign
	maxParallel int

	nowFn       func() time.Time
	newMetricID func(prefix string) (string, error)
}

type Option func(*Executor)

// WithSender troca o sender de um canal.
func WithSender(kind domain.ChannelKind, sender Sender) Option {
	return func(e *Executor) {
		e.senders[kind] = sender
	}
}

func WithRandom(random RandomSource) Option {
	return func(e *Executor) {
		e.random = random
	}
}

func NewExecutor(cfg config.Campaign, metricRepo repository.MetricRepository, opts ...Option) *Executor {
	e := &Executor{
		metricRepo:  metricRepo,
		senders:     SimulatedSenders(),
		random:      DefaultRandom(),
		cfg:         cfg,
		maxParallel: max(cfg.MaxParallel, 1),
		nowFn:       func() time.Time { return time.Now().UTC() },
		newMetricID: utils.PrefixedID,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ExecuteCampaign faz um envio por canal declarado no plano e grava uma métrica
// por envio bem-sucedido. Canais desconhecidos e falhas de um canal não
// interrompem os demais.
func (e *Executor) ExecuteCampaign(ctx context.Context, planID string, body domain.PlanBody) *domain.ExecutionResult {
	if len(body.MarketingChannels) == 0 {
		return &domain.ExecutionResult{
			Success:  false,
			Message:  messageNoChannels,
			Channels: []domain.ChannelResult{},
		}
	}

	results := make([]domain.ChannelResult, len(body.MarketingChannels))

	var g errgroup.Group
	g.SetLimit(e.maxParallel)

	for i, name := range body.MarketingChannels {
		kind, ok := domain.ParseChannel(name)
		if !ok {
			log.ForContext(ctx).WithFields(log.Fields{
				"plan_id": planID,
				"channel": name,
			}).Warn("Canal não suportado, ignorando")
			results[i] = domain.ChannelResult{Channel: name, Status: domain.ChannelStatusUnsupported}
			continue
		}

		g.Go(func() error {
			results[i] = e.dispatch(ctx, planID, kind, body)
			return nil
		})
	}

	_ = g.Wait()

	result := &domain.ExecutionResult{Success: true, Channels: results}
	sent, failed, unsupported := result.Counts()
	result.Message = fmt.Sprintf("Campaign executed: %d sent, %d failed, %d unsupported", sent, failed, unsupported)

	return result
}

// dispatch envia no canal e grava a métrica. Panics do sender viram falha do canal.
func (e *Executor) dispatch(ctx context.Context, planID string, kind domain.ChannelKind, body domain.PlanBody) (result domain.ChannelResult) {
	result = domain.ChannelResult{Channel: kind.DisplayName()}
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"plan_id": planID,
		"channel": kind.DisplayName(),
	})

	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("Panic no envio do canal: %v", r)
			result.Status = domain.ChannelStatusFailed
			result.Error = fmt.Sprintf("panic: %v", r)
			result.MetricID = ""
		}
	}()

	fail := func(err error) domain.ChannelResult {
		logger.WithError(err).Error("Falha no envio do canal")
		result.Status = domain.ChannelStatusFailed
		result.Error = err.Error()
		return result
	}

	sender, ok := e.senders[kind]
	if !ok {
		return fail(fmt.Errorf("nenhum sender registrado para %s", kind.DisplayName()))
	}

	if err := sender.Send(ctx, messageFor(kind, body, e.cfg)); err != nil {
		return fail(err)
	}

	metricID, err := e.newMetricID(kind.Slug())
	if err != nil {
		return fail(err)
	}

	impressions, clicks, conversions, cost := profiles[kind].simulate(e.random)
	metric := &domain.MetricRecord{
		ID:          metricID,
		PlanID:      planID,
		Channel:     kind.DisplayName(),
		Impressions: impressions,
		Clicks:      clicks,
		Conversions: conversions,
		Cost:        cost,
		CreatedAt:   e.nowFn(),
	}

	if err := e.metricRepo.Append(ctx, metric); err != nil {
		return fail(fmt.Errorf("gravando métrica: %w", err))
	}

	result.Status = domain.ChannelStatusSent
	result.MetricID = metricID
	return result
}
