package handler

import (
	"net/http"
	"strings"

	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/domain"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/usecases/monitoring"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/usecases/planning"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/apiErrors"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/log"
	"github.com/julienschmidt/httprouter"
)

type createPlanRequest struct {
	RawText  string              `json:"rawText"`
	Artifact *domain.ArtifactRef `json:"artifact"`
}

type refinePlanRequest struct {
	RefinementInstruction string `json:"refinementInstruction"`
}

func CreatePlan(planner planning.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req createPlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		plan, err := planner.BuildPlan(r.Context(), domain.BuildPlanInput{
			RawText:  req.RawText,
			Artifact: req.Artifact,
		})
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao gerar plano")
			return
		}

		log.ForContext(r.Context()).WithField("plan_id", plan.ID).Info("Plano gerado")
		writeJSON(w, http.StatusCreated, plan)
	})
}

func ListPlans(planner planning.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := domain.PlanStatus(strings.ToLower(r.URL.Query().Get("status")))

		plans, err := planner.ListPlans(r.Context(), status)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao listar planos")
			return
		}

		if plans == nil {
			plans = []*domain.Plan{}
		}
		writeJSON(w, http.StatusOK, plans)
	})
}

func GetPlan(planner planning.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		plan, err := planner.GetPlan(r.Context(), id)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao buscar plano")
			return
		}

		writeJSON(w, http.StatusOK, plan)
	})
}

func RefinePlan(planner planning.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req refinePlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		result, err := planner.RefinePlan(r.Context(), id, req.RefinementInstruction)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao refinar plano")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func ApprovePlan(planner planning.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		result, err := planner.ApprovePlan(r.Context(), id)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao aprovar plano")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func MonitorPlan(monitor monitoring.Monitor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		result, err := monitor.EvaluateAndMaybeRefine(r.Context(), id)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao avaliar plano")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}
