package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/database"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/domain"
)

const metricsTable = "campaign_metrics"

var metricColumns = []string{"id", "plan_id", "channel", "impressions", "clicks", "conversions", "cost", "created_at"}

// MetricRepository é append-only: métricas nunca são alteradas ou removidas.
type MetricRepository interface {
	Append(ctx context.Context, metric *domain.MetricRecord) error
	ListAll(ctx context.Context) ([]*domain.MetricRecord, error)
	ListByPlan(ctx context.Context, planID string) ([]*domain.MetricRecord, error)
}

type metricRepository struct {
	conn *database.Connection
}

func NewMetricRepository(conn *database.Connection) MetricRepository {
	return &metricRepository{
		conn: conn,
	}
}

func (r *metricRepository) Append(ctx context.Context, metric *domain.MetricRecord) error {
	metricSQL, metricArgs, err := squirrel.
		Insert(metricsTable).
		Columns(metricColumns...).
		Values(
			metric.ID,
			metric.PlanID,
			metric.Channel,
			metric.Impressions,
			metric.Clicks,
			metric.Conversions,
			metric.Cost,
			metric.CreatedAt,
		).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, metricSQL, metricArgs...)
	return err
}

func (r *metricRepository) ListAll(ctx context.Context) ([]*domain.MetricRecord, error) {
	return r.list(ctx, nil)
}

func (r *metricRepository) ListByPlan(ctx context.Context, planID string) ([]*domain.MetricRecord, error) {
	return r.list(ctx, squirrel.Eq{"plan_id": planID})
}

func (r *metricRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.MetricRecord, error) {
	queryBuilder := squirrel.
		Select(metricColumns...).
		From(metricsTable).
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(r.conn.Placeholder())

	if where != nil {
		queryBuilder = queryBuilder.Where(where)
	}

	metricSQL, metricArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, metricSQL, metricArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	metrics := make([]*domain.MetricRecord, 0)
	for rows.Next() {
		m := &domain.MetricRecord{}
		if err := rows.Scan(
			&m.ID,
			&m.PlanID,
			&m.Channel,
			&m.Impressions,
			&m.Clicks,
			&m.Conversions,
			&m.Cost,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}

	return metrics, rows.Err()
}
