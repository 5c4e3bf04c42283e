package handler

import (
	"errors"
	"net/http"

	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/usecases/planning"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/apiErrors"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/log"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeUseCaseError traduz o erro de um caso de uso para a resposta HTTP.
// Erros sem código conhecido viram 500 com a mensagem genérica informada.
func writeUseCaseError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log.ForContext(r.Context()).WithError(err).Error(fallback)

	var planErr *planning.PlanError
	if errors.As(err, &planErr) {
		var details any
		if planErr.PlanID != "" {
			details = map[string]string{"planId": planErr.PlanID}
		}
		apiErrors.WriteError(w, planErr.Code, planErr.Error(), details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}
