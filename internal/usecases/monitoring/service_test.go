package monitoring

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/database"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/repository"
	repomocks "github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/repository/mocks"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/config"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/domain"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/usecases/planning"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/usecases/planning/mocks"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/apiErrors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const refinedJSON = `{"executiveSummary":"Dog toys, monthly.","industry":"Pet supplies","targetAudience":"Dog owners","valueProposition":"Monthly curated dog toys","marketingChannels":["Email"],"kpis":["CAC"]}`

type fixture struct {
	ctx        context.Context
	planRepo   repository.PlanRepository
	metricRepo repository.MetricRepository
	generator  *mocks.MockGenerator
	planner    *planning.Service
	monitor    *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctx := context.Background()
	conn, err := database.Open(ctx, database.DriverSQLite, filepath.Join(t.TempDir(), "monitoring.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, database.EnsureSchema(ctx, conn))

	ctrl := gomock.NewController(t)
	generator := mocks.NewMockGenerator(ctrl)
	planRepo := repository.NewPlanRepository(conn)
	metricRepo := repository.NewMetricRepository(conn)

	planner := planning.NewService(config.Extractor{PollInterval: time.Millisecond, Deadline: time.Second},
		planRepo, generator, nil, nil, nil)

	return &fixture{
		ctx:        ctx,
		planRepo:   planRepo,
		metricRepo: metricRepo,
		generator:  generator,
		planner:    planner,
		monitor:    NewService(planRepo, metricRepo, generator, planner),
	}
}

func (f *fixture) seed(t *testing.T, withMetrics bool) *domain.Plan {
	t.Helper()

	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	plan := &domain.Plan{
		ID: "plan-1",
		Body: domain.PlanBody{
			ExecutiveSummary:  "A subscription box for dog toys, curated every month for happy dogs.",
			Industry:          "Pet supplies",
			TargetAudience:    "Dog owners",
			ValueProposition:  "Monthly curated dog toys",
			MarketingChannels: []string{"Email", "WhatsApp"},
			KPIs:              []string{"Churn rate", "CAC"},
		},
		SourceText: "A subscription box for dog toys",
		Status:     domain.PlanStatusApproved,
		Version:    2,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, f.planRepo.Create(f.ctx, plan))

	if withMetrics {
		require.NoError(t, f.metricRepo.Append(f.ctx, &domain.MetricRecord{
			ID: "email-abc", PlanID: "plan-1", Channel: "Email",
			Impressions: 1200, Clicks: 150, Conversions: 12, Cost: 80, CreatedAt: now,
		}))
	}

	return plan
}

func TestEvaluateAndMaybeRefine_NoAction(t *testing.T) {
	f := newFixture(t)
	original := f.seed(t, true)

	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, "email-abc")
			return `{"refinementNeeded": false, "refinementInstruction": ""}`, nil
		})

	result, err := f.monitor.EvaluateAndMaybeRefine(f.ctx, "plan-1")
	require.NoError(t, err)
	assert.False(t, result.Refined)
	assert.Nil(t, result.Plan)
	assert.Equal(t, messageNoAction, result.Message)

	stored, err := f.planRepo.GetByID(f.ctx, "plan-1")
	require.NoError(t, err)
	assert.Equal(t, original.Version, stored.Version)
	if diff := cmp.Diff(original.Body, stored.Body); diff != "" {
		t.Errorf("plano não deveria mudar (-antes +depois):\n%s", diff)
	}
}

func TestEvaluateAndMaybeRefine_NeededWithoutInstruction(t *testing.T) {
	f := newFixture(t)
	f.seed(t, true)

	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return(`{"refinementNeeded": true, "refinementInstruction": "  "}`, nil)

	result, err := f.monitor.EvaluateAndMaybeRefine(f.ctx, "plan-1")
	require.NoError(t, err)
	assert.False(t, result.Refined)
	assert.True(t, result.Analysis.RefinementNeeded)
}

func TestEvaluateAndMaybeRefine_TriggersRefine(t *testing.T) {
	f := newFixture(t)
	original := f.seed(t, true)

	gomock.InOrder(
		f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
			Return(`{"refinementNeeded": true, "refinementInstruction": "shorten summary"}`, nil),
		f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, prompt string) (string, error) {
				assert.Contains(t, prompt, "shorten summary")
				return refinedJSON, nil
			}),
	)

	result, err := f.monitor.EvaluateAndMaybeRefine(f.ctx, "plan-1")
	require.NoError(t, err)
	require.True(t, result.Refined)
	assert.Equal(t, "shorten summary", result.Analysis.RefinementInstruction)
	assert.NotEqual(t, original.Body, result.Plan.Body)
	assert.NotEmpty(t, result.Diff)

	// o resultado é exatamente o que o refinador produz para a mesma instrução
	var expected domain.PlanBody
	require.NoError(t, planning.DecodeObject(refinedJSON, &expected))
	if diff := cmp.Diff(expected, result.Plan.Body); diff != "" {
		t.Errorf("corpo refinado diferente (-want +got):\n%s", diff)
	}

	stored, err := f.planRepo.GetByID(f.ctx, "plan-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PlanStatusApproved, stored.Status)
	assert.Equal(t, original.Version+1, stored.Version)
}

func TestEvaluateAndMaybeRefine_Errors(t *testing.T) {
	t.Run("sem métricas", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, false)

		_, err := f.monitor.EvaluateAndMaybeRefine(f.ctx, "plan-1")
		require.ErrorIs(t, err, ErrNoMetrics)
		assertCode(t, err, apiErrors.ErrNoMetrics)
	})

	t.Run("plano inexistente", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.monitor.EvaluateAndMaybeRefine(f.ctx, "missing")
		require.ErrorIs(t, err, planning.ErrPlanNotFound)
	})

	t.Run("análise não decodificável", func(t *testing.T) {
		f := newFixture(t)
		original := f.seed(t, true)

		f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("The campaign is doing great!", nil)

		_, err := f.monitor.EvaluateAndMaybeRefine(f.ctx, "plan-1")
		require.ErrorIs(t, err, ErrAnalysisParseFailed)
		assertCode(t, err, apiErrors.ErrAnalysisParseFailed)

		stored, err := f.planRepo.GetByID(f.ctx, "plan-1")
		require.NoError(t, err)
		assert.Equal(t, original.Version, stored.Version)
	})

	t.Run("decisão nula não vira ausência de ação", func(t *testing.T) {
		f := newFixture(t)
		original := f.seed(t, true)

		f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
			Return(`{"refinementNeeded": null, "refinementInstruction": "shorten"}`, nil)

		result, err := f.monitor.EvaluateAndMaybeRefine(f.ctx, "plan-1")
		assert.Nil(t, result)
		require.ErrorIs(t, err, ErrAnalysisParseFailed)
		assertCode(t, err, apiErrors.ErrAnalysisParseFailed)

		stored, err := f.planRepo.GetByID(f.ctx, "plan-1")
		require.NoError(t, err)
		assert.Equal(t, original.Version, stored.Version)
	})

	t.Run("erro do provedor", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, true)

		f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("rate limited"))

		_, err := f.monitor.EvaluateAndMaybeRefine(f.ctx, "plan-1")
		require.ErrorIs(t, err, planning.ErrGenerationFailed)
	})
}

func TestEvaluateAndMaybeRefine_RefinerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	planRepo := repomocks.NewMockPlanRepository(ctrl)
	metricRepo := repomocks.NewMockMetricRepository(ctrl)
	generator := mocks.NewMockGenerator(ctrl)
	refiner := mocks.NewMockRefiner(ctrl)

	planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(&domain.Plan{ID: "plan-1", Version: 1}, nil)
	metricRepo.EXPECT().ListAll(gomock.Any()).Return([]*domain.MetricRecord{{ID: "email-1"}}, nil)
	generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return(`{"refinementNeeded": true, "refinementInstruction": "add social media"}`, nil)

	conflict := planning.NewPlanErrorWithID(planning.ErrConcurrentModification, apiErrors.ErrConcurrentModification, "plan-1", "")
	refiner.EXPECT().RefinePlan(gomock.Any(), "plan-1", "add social media").Return(nil, conflict)

	_, err := NewService(planRepo, metricRepo, generator, refiner).EvaluateAndMaybeRefine(context.Background(), "plan-1")
	assert.ErrorIs(t, err, planning.ErrConcurrentModification)
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()

	var planErr *planning.PlanError
	require.True(t, errors.As(err, &planErr))
	assert.Equal(t, code, planErr.Code)
}
