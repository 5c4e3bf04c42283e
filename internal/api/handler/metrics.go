package handler

import (
	"net/http"

	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/repository"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/domain"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/usecases/planning"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/apiErrors"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/log"
	"github.com/julienschmidt/httprouter"
)

func ListMetrics(metricRepo repository.MetricRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics, err := metricRepo.ListAll(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar métricas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar métricas", nil)
			return
		}

		writeJSON(w, http.StatusOK, orEmpty(metrics))
	})
}

// GetPlanMetrics lista as métricas geradas pelas campanhas de um plano.
func GetPlanMetrics(planner planning.Planner, metricRepo repository.MetricRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if _, err := planner.GetPlan(r.Context(), id); err != nil {
			writeUseCaseError(w, r, err, "Erro ao buscar plano")
			return
		}

		metrics, err := metricRepo.ListByPlan(r.Context(), id)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("plan_id", id).Error("Erro ao listar métricas do plano")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar métricas", nil)
			return
		}

		writeJSON(w, http.StatusOK, orEmpty(metrics))
	})
}

func orEmpty(metrics []*domain.MetricRecord) []*domain.MetricRecord {
	if metrics == nil {
		return []*domain.MetricRecord{}
	}
	return metrics
}
