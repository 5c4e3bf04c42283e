package handler

import (
	"net/http"

	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// CronJobTypeMonitoring é a única cron job exposta hoje.
const CronJobTypeMonitoring = "monitoring"

// MonitoringScheduler é o que os handlers de cron precisam do agente de monitoramento.
type MonitoringScheduler interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// RunCronJob dispara manualmente uma rodada do agente de monitoramento
func RunCronJob(agent MonitoringScheduler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		if agent == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Agente de monitoramento não disponível", nil)
			return
		}

		started := agent.TriggerManualSync()
		message := "Cron job iniciada com sucesso"
		if !started {
			message = "Cron job já em andamento"
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": message,
			"type":    CronJobTypeMonitoring,
			"started": started,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(agent MonitoringScheduler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if agent != nil {
			status[CronJobTypeMonitoring] = agent.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	})
}
