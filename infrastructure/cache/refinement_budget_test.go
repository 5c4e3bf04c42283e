package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRefinementBudget(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	budget := NewMemoryRefinementBudget(2, time.Hour)
	budget.nowFn = func() time.Time { return now }

	allowed, err := budget.Allow(ctx, "plan-1")
	require.NoError(t, err)
	assert.True(t, allowed)

	require.NoError(t, budget.Record(ctx, "plan-1"))
	require.NoError(t, budget.Record(ctx, "plan-1"))

	allowed, _ = budget.Allow(ctx, "plan-1")
	assert.False(t, allowed, "budget esgotado dentro da janela")

	allowed, _ = budget.Allow(ctx, "plan-2")
	assert.True(t, allowed, "orçamento é por plano")

	now = now.Add(time.Hour)
	allowed, _ = budget.Allow(ctx, "plan-1")
	assert.True(t, allowed, "janela expirada libera o plano")
}

func TestMemoryRefinementBudget_WindowStartsAtFirstRecord(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	budget := NewMemoryRefinementBudget(2, time.Hour)
	budget.nowFn = func() time.Time { return now }

	require.NoError(t, budget.Record(ctx, "plan-1"))
	now = now.Add(50 * time.Minute)
	require.NoError(t, budget.Record(ctx, "plan-1"))

	allowed, _ := budget.Allow(ctx, "plan-1")
	assert.False(t, allowed)

	now = now.Add(10 * time.Minute)
	allowed, _ = budget.Allow(ctx, "plan-1")
	assert.True(t, allowed)
}

func TestMemoryRefinementBudget_Unlimited(t *testing.T) {
	ctx := context.Background()
	budget := NewMemoryRefinementBudget(0, time.Hour)

	for i := 0; i < 5; i++ {
		require.NoError(t, budget.Record(ctx, "plan-1"))
	}
	allowed, err := budget.Allow(ctx, "plan-1")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := Connect(context.Background(), "redis://:bad port")
	assert.Error(t, err)
}
