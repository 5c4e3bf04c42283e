package main

import (
	"context"
	"os"
	"time"

	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/database"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/repository"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/config"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/domain"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Plano de demonstração gravado com --seed.
var demoPlan = domain.PlanBody{
	ExecutiveSummary:  "A monthly subscription box of curated dog toys.",
	Industry:          "Pet supplies",
	TargetAudience:    "Urban dog owners aged 25-45",
	ValueProposition:  "New, vet-approved toys delivered every month",
	MarketingChannels: []string{"Email", "WhatsApp", "Social Media"},
	KPIs:              []string{"Subscriber growth", "Churn rate", "CAC"},
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco de dados")
	}
	defer conn.Close()
	logrus.WithField("driver", conn.Driver).Info("Conexão com o banco de dados estabelecida com sucesso")

	startTime := time.Now()
	if err := database.EnsureSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("ERRO ao criar tabelas")
	}
	logrus.Infof("Schema verificado em %s", time.Since(startTime))

	if len(os.Args) > 1 && os.Args[1] == "--seed" {
		seed(ctx, conn)
	}

	logrus.Info("Migração concluída")
}

func seed(ctx context.Context, conn *database.Connection) {
	planRepo := repository.NewPlanRepository(conn)

	existing, err := planRepo.List(ctx, "")
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao consultar planos")
	}
	if len(existing) > 0 {
		logrus.Infof("%d planos já existentes, seed ignorado", len(existing))
		return
	}

	now := time.Now().UTC()
	plan := &domain.Plan{
		ID:         utils.NewPlanID(),
		Body:       demoPlan,
		SourceText: "A subscription box for dog toys",
		Status:     domain.PlanStatusDraft,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := planRepo.Create(ctx, plan); err != nil {
		logrus.WithError(err).Fatal("ERRO ao inserir plano de demonstração")
	}

	logrus.WithField("plan_id", plan.ID).Info("Plano de demonstração inserido")
}
