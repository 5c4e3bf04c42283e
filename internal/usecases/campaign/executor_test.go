package campaign

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/database"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/repository"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/repository/mocks"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/config"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fixedRandom sempre sorteia o mínimo da faixa e o meio do custo.
type fixedRandom struct{}

func (fixedRandom) IntN(int) int { return 0 }
func (fixedRandom) Float64() float64 { return 0.5 }

type recordingSender struct {
	mu       sync.Mutex
	messages []Message
	err      error
}

func (s *recordingSender) Send(_ context.Context, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return s.err
}

type panickingSender struct{}

func (panickingSender) Send(context.Context, Message) error { panic("smtp client is nil") }

var testCampaignConfig = config.Campaign{
	EmailSender:       "marketing@example.com",
	EmailRecipient:    "customer1@example.com",
	WhatsAppRecipient: "+15550000000",
	SocialPlatform:    "Social Media",
	MaxParallel:       2,
}

func newMetricRepo(t *testing.T) repository.MetricRepository {
	t.Helper()

	ctx := context.Background()
	conn, err := database.Open(ctx, database.DriverSQLite, filepath.Join(t.TempDir(), "metrics.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, database.EnsureSchema(ctx, conn))

	return repository.NewMetricRepository(conn)
}

func newTestExecutor(repo repository.MetricRepository, opts ...Option) *Executor {
	e := NewExecutor(testCampaignConfig, repo, append([]Option{WithRandom(fixedRandom{})}, opts...)...)
	e.nowFn = func() time.Time { return time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC) }
	return e
}

func TestExecuteCampaign_EmptyChannels(t *testing.T) {
	repo := newMetricRepo(t)
	e := newTestExecutor(repo)

	result := e.ExecuteCampaign(context.Background(), "plan-1", domain.PlanBody{MarketingChannels: []string{}})

	assert.False(t, result.Success)
	assert.Equal(t, "No marketing channels to execute", result.Message)
	assert.Empty(t, result.Channels)

	metrics, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, metrics)
}

func TestExecuteCampaign_FanOut(t *testing.T) {
	repo := newMetricRepo(t)
	e := newTestExecutor(repo)
	ctx := context.Background()

	var result *domain.ExecutionResult
	require.NotPanics(t, func() {
		result = e.ExecuteCampaign(ctx, "plan-1", domain.PlanBody{
			MarketingChannels: []string{"Email", "WhatsApp", "Unknown"},
		})
	})

	assert.True(t, result.Success)
	require.Len(t, result.Channels, 3)
	assert.Equal(t, domain.ChannelStatusSent, result.Channels[0].Status)
	assert.Equal(t, domain.ChannelStatusSent, result.Channels[1].Status)
	assert.Equal(t, domain.ChannelResult{Channel: "Unknown", Status: domain.ChannelStatusUnsupported}, result.Channels[2])
	assert.Regexp(t, `^email-[A-Za-z0-9]{12}$`, result.Channels[0].MetricID)
	assert.Regexp(t, `^whatsapp-[A-Za-z0-9]{12}$`, result.Channels[1].MetricID)

	metrics, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, metrics, 2)

	byChannel := map[string]*domain.MetricRecord{}
	for _, m := range metrics {
		byChannel[m.Channel] = m
		assert.Equal(t, "plan-1", m.PlanID)
	}

	email := byChannel["Email"]
	require.NotNil(t, email)
	assert.Equal(t, int64(1000), email.Impressions)
	assert.Equal(t, int64(100), email.Clicks)
	assert.Equal(t, int64(10), email.Conversions)
	assert.InDelta(t, 100.0, email.Cost, 0.001)

	whatsapp := byChannel["WhatsApp"]
	require.NotNil(t, whatsapp)
	assert.Equal(t, int64(500), whatsapp.Impressions)
	assert.InDelta(t, 45.0, whatsapp.Cost, 0.001)
}

func TestExecuteCampaign_ChannelNamesAreCaseInsensitive(t *testing.T) {
	repo := newMetricRepo(t)
	e := newTestExecutor(repo)

	result := e.ExecuteCampaign(context.Background(), "plan-1", domain.PlanBody{
		MarketingChannels: []string{"EMAIL", " social  media "},
	})

	sent, failed, unsupported := result.Counts()
	assert.Equal(t, 2, sent)
	assert.Zero(t, failed)
	assert.Zero(t, unsupported)
	assert.Equal(t, "Social Media", result.Channels[1].Channel)
}

func TestExecuteCampaign_PartialFailure(t *testing.T) {
	repo := newMetricRepo(t)
	failing := &recordingSender{err: errors.New("whatsapp api unavailable")}
	e := newTestExecutor(repo,
		WithSender(domain.ChannelWhatsApp, failing),
		WithSender(domain.ChannelSocialMedia, panickingSender{}),
	)

	result := e.ExecuteCampaign(context.Background(), "plan-1", domain.PlanBody{
		MarketingChannels: []string{"WhatsApp", "Social Media", "Email"},
	})

	assert.True(t, result.Success)
	assert.Equal(t, domain.ChannelStatusFailed, result.Channels[0].Status)
	assert.Equal(t, "whatsapp api unavailable", result.Channels[0].Error)
	assert.Equal(t, domain.ChannelStatusFailed, result.Channels[1].Status)
	assert.Contains(t, result.Channels[1].Error, "panic")
	assert.Equal(t, domain.ChannelStatusSent, result.Channels[2].Status)

	metrics, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, metrics, 1)
	assert.Equal(t, "Email", metrics[0].Channel)
}

func TestExecuteCampaign_MetricStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMetricRepository(ctrl)
	repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	e := newTestExecutor(repo)
	result := e.ExecuteCampaign(context.Background(), "plan-1", domain.PlanBody{MarketingChannels: []string{"Email"}})

	require.Len(t, result.Channels, 1)
	assert.Equal(t, domain.ChannelStatusFailed, result.Channels[0].Status)
	assert.Empty(t, result.Channels[0].MetricID)
	assert.Contains(t, result.Channels[0].Error, "disk full")
}

func TestMessageFor(t *testing.T) {
	t.Run("email usa o resumo como assunto", func(t *testing.T) {
		msg := messageFor(domain.ChannelEmail, domain.PlanBody{
			ExecutiveSummary: "Dog toys every month",
			ValueProposition: "Curated toys",
		}, testCampaignConfig)
		assert.Equal(t, Message{
			From:      "marketing@example.com",
			Recipient: "customer1@example.com",
			Subject:   "Dog toys every month",
			Body:      "Curated toys",
		}, msg)
	})

	t.Run("valores padrão quando o plano está vazio", func(t *testing.T) {
		msg := messageFor(domain.ChannelEmail, domain.PlanBody{}, testCampaignConfig)
		assert.Equal(t, "A Special Offer", msg.Subject)
		assert.Equal(t, "Check out our new product!", msg.Body)
	})

	t.Run("whatsapp e social usam a proposta de valor", func(t *testing.T) {
		body := domain.PlanBody{ValueProposition: "Curated toys"}
		assert.Equal(t, Message{Recipient: "+15550000000", Body: "Curated toys"}, messageFor(domain.ChannelWhatsApp, body, testCampaignConfig))
		assert.Equal(t, Message{Recipient: "Social Media", Body: "Curated toys"}, messageFor(domain.ChannelSocialMedia, body, testCampaignConfig))
	})
}

func TestMetricProfiles_StayInRange(t *testing.T) {
	random := DefaultRandom()
	for kind, profile := range profiles {
		for range 200 {
			impressions, clicks, conversions, cost := profile.simulate(random)
			assert.GreaterOrEqual(t, impressions, profile.impressions.min, kind)
			assert.LessOrEqual(t, impressions, profile.impressions.max, kind)
			assert.GreaterOrEqual(t, clicks, profile.clicks.min, kind)
			assert.LessOrEqual(t, clicks, profile.clicks.max, kind)
			assert.GreaterOrEqual(t, conversions, profile.conversions.min, kind)
			assert.LessOrEqual(t, conversions, profile.conversions.max, kind)
			assert.GreaterOrEqual(t, cost, profile.cost.min, kind)
			assert.LessOrEqual(t, cost, profile.cost.max, kind)
		}
	}
}
