package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/database"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/domain"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const plansTable = "plans"

var planColumns = []string{"id", "body", "source_text", "status", "version", "created_at", "updated_at"}

// ErrVersionConflict indica que o plano foi alterado por outra escrita
// depois da versão lida pelo chamador.
var ErrVersionConflict = errors.New("plan version conflict")

type PlanRepository interface {
	Create(ctx context.Context, plan *domain.Plan) error
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	List(ctx context.Context, status domain.PlanStatus) ([]*domain.Plan, error)
	UpdateBody(ctx context.Context, id string, body domain.PlanBody, expectedVersion int) (*domain.Plan, error)
	UpdateStatus(ctx context.Context, id string, status domain.PlanStatus, expectedVersion int) (*domain.Plan, error)
}

type planRepository struct {
	conn  *database.Connection
	nowFn func() time.Time
}

func NewPlanRepository(conn *database.Connection) PlanRepository {
	return &planRepository{
		conn:  conn,
		nowFn: func() time.Time { return time.Now().UTC() },
	}
}

func (r *planRepository) Create(ctx context.Context, plan *domain.Plan) error {
	body, err := json.Marshal(plan.Body)
	if err != nil {
		return err
	}

	planSQL, planArgs, err := squirrel.
		Insert(plansTable).
		Columns(planColumns...).
		Values(plan.ID, string(body), plan.SourceText, string(plan.Status), plan.Version, plan.CreatedAt, plan.UpdatedAt).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, planSQL, planArgs...)
	return err
}

// GetByID retorna nil, nil quando o plano não existe.
func (r *planRepository) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	return r.getByID(ctx, r.conn, id)
}

func (r *planRepository) getByID(ctx context.Context, q database.Queryer, id string) (*domain.Plan, error) {
	planSQL, planArgs, err := squirrel.
		Select(planColumns...).
		From(plansTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return nil, err
	}

	plan, err := deserializePlan(q.QueryRowContext(ctx, planSQL, planArgs...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return plan, nil
}

// List retorna os planos do mais novo para o mais antigo. Status vazio lista todos.
func (r *planRepository) List(ctx context.Context, status domain.PlanStatus) ([]*domain.Plan, error) {
	queryBuilder := squirrel.
		Select(planColumns...).
		From(plansTable).
		OrderBy("created_at DESC", "id ASC").
		PlaceholderFormat(r.conn.Placeholder())

	if status != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": string(status)})
	}

	planSQL, planArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, planSQL, planArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]*domain.Plan, 0)
	for rows.Next() {
		plan, err := deserializePlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	return plans, rows.Err()
}

func (r *planRepository) UpdateBody(ctx context.Context, id string, body domain.PlanBody, expectedVersion int) (*domain.Plan, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	return r.update(ctx, id, expectedVersion, map[string]any{"body": string(raw)})
}

func (r *planRepository) UpdateStatus(ctx context.Context, id string, status domain.PlanStatus, expectedVersion int) (*domain.Plan, error) {
	return r.update(ctx, id, expectedVersion, map[string]any{"status": string(status)})
}

// update aplica a alteração somente se a versão gravada ainda for expectedVersion.
// Retorna nil, nil se o plano não existe e ErrVersionConflict se a versão mudou.
// A releitura acontece na mesma transação, então o plano devolvido é exatamente
// o que esta escrita gravou.
func (r *planRepository) update(ctx context.Context, id string, expectedVersion int, values map[string]any) (*domain.Plan, error) {
	planSQL, planArgs, err := squirrel.
		Update(plansTable).
		SetMap(values).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", r.nowFn()).
		Where(squirrel.Eq{"id": id, "version": expectedVersion}).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return nil, err
	}

	var updated *domain.Plan
	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, planSQL, planArgs...)
		if err != nil {
			return err
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}

		current, err := r.getByID(ctx, tx, id)
		if err != nil || current == nil {
			return err
		}

		if affected == 0 {
			return ErrVersionConflict
		}

		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func deserializePlan(row scanner) (*domain.Plan, error) {
	var (
		plan   domain.Plan
		body   string
		status string
	)

	if err := row.Scan(
		&plan.ID,
		&body,
		&plan.SourceText,
		&status,
		&plan.Version,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(body), &plan.Body); err != nil {
		return nil, err
	}
	plan.Status = domain.PlanStatus(status)

	return &plan, nil
}
