package main

import (
	"context"

	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/cache"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/database"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/events"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/integrator/gemini"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/integrator/vision"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/integrator/vision/visionclient"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/repository"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/api"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/config"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/scheduler"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/usecases/campaign"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/usecases/monitoring"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/usecases/planning"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/log"
	"github.com/sirupsen/logrus"
)

type eventPublisher interface {
	planning.EventPublisher
	Close() error
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	planRepo := repository.NewPlanRepository(conn)
	metricRepo := repository.NewMetricRepository(conn)

	genaiClient, err := gemini.NewClient(ctx, cfg.Gemini)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar cliente do Gemini")
	}
	generator := gemini.New(cfg.Gemini, genaiClient)

	if cfg.Extractor.URL == "" {
		logrus.Warn("EXTRACTOR_URL não configurada, planos a partir de artefatos vão falhar")
	}
	extractor := vision.New(cfg.Extractor, visionclient.NewClient(cfg.Extractor))

	publisher := newPublisher(cfg.Kafka)
	defer publisher.Close()

	executor := campaign.NewExecutor(cfg.Campaign, metricRepo)
	planner := planning.NewService(cfg.Extractor, planRepo, generator, extractor, executor, publisher)
	monitor := monitoring.NewService(planRepo, metricRepo, generator, planner)

	agent := scheduler.NewMonitoringAgentService(cfg.Monitoring, planner, monitor, newRefinementBudget(ctx, cfg))
	if err := agent.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agente de monitoramento")
	} else {
		logrus.Info("Agente de monitoramento iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Dependencies{
		DB:         conn,
		Planner:    planner,
		Monitor:    monitor,
		MetricRepo: metricRepo,
		Scheduler:  agent,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// dbconn abre o banco configurado e garante o schema
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatalf("Erro ao conectar ao banco (%s)", dbConfig.Driver)
	}

	if err := database.EnsureSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar o schema do banco")
	}

	logrus.WithField("driver", conn.Driver).Info("Conexão com o banco estabelecida com sucesso")
	return conn
}

func newPublisher(cfg config.Kafka) eventPublisher {
	if len(cfg.Brokers) == 0 {
		logrus.Info("KAFKA_BROKERS vazio, eventos do ciclo de vida não serão publicados")
		return events.NoopPublisher{}
	}

	publisher, err := events.NewKafkaPublisher(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o publisher do Kafka")
	}

	logrus.WithField("topic", cfg.Topic).Info("Publicando eventos do ciclo de vida no Kafka")
	return publisher
}

func newRefinementBudget(ctx context.Context, cfg *config.Config) cache.RefinementBudget {
	if cfg.Redis.URL == "" {
		logrus.Info("REDIS_URL vazio, orçamento de refinamentos mantido em memória")
		return cache.NewMemoryRefinementBudget(cfg.Monitoring.MaxRefinements, cfg.Monitoring.Window)
	}

	client, err := cache.Connect(ctx, cfg.Redis.URL)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, orçamento de refinamentos mantido em memória")
		return cache.NewMemoryRefinementBudget(cfg.Monitoring.MaxRefinements, cfg.Monitoring.Window)
	}

	return cache.NewRedisRefinementBudget(client, cfg.Monitoring.MaxRefinements, cfg.Monitoring.Window)
}
