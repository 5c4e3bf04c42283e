package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	repomocks "github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/repository/mocks"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/api/handler/router"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/domain"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/usecases/monitoring"
	monitoringmocks "github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/usecases/monitoring/mocks"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/usecases/planning"
	planningmocks "github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/usecases/planning/mocks"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/apiErrors"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeScheduler struct {
	triggered int
	busy      bool
}

func (f *fakeScheduler) TriggerManualSync() bool {
	f.triggered++
	return !f.busy
}

func (f *fakeScheduler) GetStatus() map[string]any {
	return map[string]any{"enabled": true}
}

type handlerDeps struct {
	planner    *planningmocks.MockPlanner
	monitor    *monitoringmocks.MockMonitor
	metricRepo *repomocks.MockMetricRepository
	scheduler  *fakeScheduler
}

func newTestRouter(t *testing.T) (router.Router, handlerDeps) {
	ctrl := gomock.NewController(t)
	deps := handlerDeps{
		planner:    planningmocks.NewMockPlanner(ctrl),
		monitor:    monitoringmocks.NewMockMonitor(ctrl),
		metricRepo: repomocks.NewMockMetricRepository(ctrl),
		scheduler:  &fakeScheduler{},
	}

	rt := router.New(
		router.WithRoutes(Healthcheck(nil)...),
		router.WithRoutes(Plans(deps.planner, deps.monitor)...),
		router.WithRoutes(Metrics(deps.planner, deps.metricRepo)...),
		router.WithRoutes(CronJobs(deps.scheduler)...),
	)
	return rt, deps
}

func serve(rt http.Handler, role, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if role != "" {
		req = req.WithContext(middleware.WithClaims(req.Context(), &domain.Claims{UserID: "u1", Role: role}))
	}
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestCreatePlan(t *testing.T) {
	rt, deps := newTestRouter(t)

	deps.planner.EXPECT().
		BuildPlan(gomock.Any(), domain.BuildPlanInput{RawText: "A subscription box for dog toys"}).
		Return(&domain.Plan{ID: "p1", Status: domain.PlanStatusDraft, Version: 1}, nil)

	rec := serve(rt, domain.RoleAnalyst, http.MethodPost, "/v1/plans", `{"rawText":"A subscription box for dog toys"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var plan domain.Plan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	assert.Equal(t, "p1", plan.ID)
}

func TestCreatePlan_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "corpo inválido",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "entrada inválida",
			body:       `{}`,
			err:        planning.NewPlanError(planning.ErrInvalidInput, apiErrors.ErrInvalidInput, ""),
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidInput,
		},
		{
			name:       "resposta do modelo inválida",
			body:       `{"rawText":"x"}`,
			err:        planning.NewPlanError(planning.ErrPlanGenerationFailed, apiErrors.ErrPlanGenerationFailed, "stage channels"),
			wantStatus: http.StatusBadGateway,
			wantCode:   apiErrors.ErrPlanGenerationFailed,
		},
		{
			name:       "timeout de extração",
			body:       `{"artifact":{"bucket":"b","key":"k.pdf","mediaType":"application/pdf"}}`,
			err:        planning.NewPlanError(planning.ErrExtractionTimedOut, apiErrors.ErrExtractionTimedOut, ""),
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   apiErrors.ErrExtractionTimedOut,
		},
		{
			name:       "erro sem código",
			body:       `{"rawText":"x"}`,
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, deps := newTestRouter(t)
			if tt.err != nil {
				deps.planner.EXPECT().BuildPlan(gomock.Any(), gomock.Any()).Return(nil, tt.err)
			}

			rec := serve(rt, domain.RoleAdmin, http.MethodPost, "/v1/plans", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestListPlans(t *testing.T) {
	rt, deps := newTestRouter(t)

	deps.planner.EXPECT().ListPlans(gomock.Any(), domain.PlanStatusApproved).Return(nil, nil)

	rec := serve(rt, domain.RoleAnalyst, http.MethodGet, "/v1/plans?status=APPROVED", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetPlan_NotFound(t *testing.T) {
	rt, deps := newTestRouter(t)

	deps.planner.EXPECT().GetPlan(gomock.Any(), "missing").
		Return(nil, planning.NewPlanErrorWithID(planning.ErrPlanNotFound, apiErrors.ErrPlanNotFound, "missing", ""))

	rec := serve(rt, domain.RoleAnalyst, http.MethodGet, "/v1/plans/missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	apiErr := decodeError(t, rec)
	assert.Equal(t, apiErrors.ErrPlanNotFound, apiErr.Code)
	assert.Equal(t, map[string]any{"planId": "missing"}, apiErr.Details)
}

func TestRefinePlan(t *testing.T) {
	rt, deps := newTestRouter(t)

	deps.planner.EXPECT().RefinePlan(gomock.Any(), "p1", "shorten summary").
		Return(&domain.RefinementResult{Plan: &domain.Plan{ID: "p1", Version: 2}, Diff: "@@"}, nil)

	rec := serve(rt, domain.RoleAnalyst, http.MethodPost, "/v1/plans/p1/refine", `{"refinementInstruction":"shorten summary"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"diff":"@@"`)
}

func TestRefinePlan_Conflict(t *testing.T) {
	rt, deps := newTestRouter(t)

	deps.planner.EXPECT().RefinePlan(gomock.Any(), "p1", "x").
		Return(nil, planning.NewPlanErrorWithID(planning.ErrConcurrentModification, apiErrors.ErrConcurrentModification, "p1", ""))

	rec := serve(rt, domain.RoleAnalyst, http.MethodPost, "/v1/plans/p1/refine", `{"refinementInstruction":"x"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apiErrors.ErrConcurrentModification, decodeError(t, rec).Code)
}

func TestApprovePlan_Roles(t *testing.T) {
	rt, deps := newTestRouter(t)

	rec := serve(rt, domain.RoleAnalyst, http.MethodPost, "/v1/plans/p1/approve", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(rt, "", http.MethodPost, "/v1/plans/p1/approve", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	deps.planner.EXPECT().ApprovePlan(gomock.Any(), "p1").Return(&domain.ApprovalResult{
		Plan:      &domain.Plan{ID: "p1", Status: domain.PlanStatusApproved, Version: 2},
		Execution: &domain.ExecutionResult{Success: true, Message: "ok", Channels: []domain.ChannelResult{}},
	}, nil)

	rec = serve(rt, domain.RoleManager, http.MethodPost, "/v1/plans/p1/approve", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"executionResult"`)
}

func TestApprovePlan_AlreadyApproved(t *testing.T) {
	rt, deps := newTestRouter(t)

	deps.planner.EXPECT().ApprovePlan(gomock.Any(), "p1").
		Return(nil, planning.NewPlanErrorWithID(planning.ErrAlreadyApproved, apiErrors.ErrAlreadyApproved, "p1", ""))

	rec := serve(rt, domain.RoleAdmin, http.MethodPost, "/v1/plans/p1/approve", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apiErrors.ErrAlreadyApproved, decodeError(t, rec).Code)
}

func TestMonitorPlan(t *testing.T) {
	rt, deps := newTestRouter(t)

	deps.monitor.EXPECT().EvaluateAndMaybeRefine(gomock.Any(), "p1").
		Return(nil, planning.NewPlanErrorWithID(monitoring.ErrNoMetrics, apiErrors.ErrNoMetrics, "p1", ""))

	rec := serve(rt, domain.RoleManager, http.MethodPost, "/v1/plans/p1/monitor", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNoMetrics, decodeError(t, rec).Code)

	deps.monitor.EXPECT().EvaluateAndMaybeRefine(gomock.Any(), "p1").
		Return(&domain.MonitoringResult{Refined: false, Message: "No refinement needed"}, nil)

	rec = serve(rt, domain.RoleManager, http.MethodPost, "/v1/plans/p1/monitor", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"refined":false`)
}

func TestMetrics(t *testing.T) {
	rt, deps := newTestRouter(t)

	deps.metricRepo.EXPECT().ListAll(gomock.Any()).Return([]*domain.MetricRecord{{ID: "email-1", Channel: "Email"}}, nil)
	rec := serve(rt, domain.RoleAnalyst, http.MethodGet, "/v1/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email-1"`)

	deps.metricRepo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db down"))
	rec = serve(rt, domain.RoleAnalyst, http.MethodGet, "/v1/metrics", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeError(t, rec).Code)

	deps.planner.EXPECT().GetPlan(gomock.Any(), "p1").Return(&domain.Plan{ID: "p1"}, nil)
	deps.metricRepo.EXPECT().ListByPlan(gomock.Any(), "p1").Return(nil, nil)
	rec = serve(rt, domain.RoleAnalyst, http.MethodGet, "/v1/plans/p1/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCronJobs(t *testing.T) {
	rt, deps := newTestRouter(t)

	rec := serve(rt, domain.RoleManager, http.MethodPost, "/v1/cron/monitoring/run", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(rt, domain.RoleAdmin, http.MethodPost, "/v1/cron/monitoring/run", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), `"started":true`)

	deps.scheduler.busy = true
	rec = serve(rt, domain.RoleAdmin, http.MethodPost, "/v1/cron/monitoring/run", "")
	assert.Contains(t, rec.Body.String(), `"started":false`)
	assert.Equal(t, 2, deps.scheduler.triggered)

	rec = serve(rt, domain.RoleManager, http.MethodGet, "/v1/cron/status", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"monitoring":{"enabled":true}}`, rec.Body.String())
}

func TestHealthcheck(t *testing.T) {
	rt, _ := newTestRouter(t)

	rec := serve(rt, "", http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
