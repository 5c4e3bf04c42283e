package planning

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/domain"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/apiErrors"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/log"
)

// extractText obtém o texto de origem do artefato, escolhendo extração
// síncrona ou por job conforme o media type.
func (s *Service) extractText(ctx context.Context, ref domain.ArtifactRef) (string, error) {
	if strings.TrimSpace(ref.Bucket) == "" || strings.TrimSpace(ref.Key) == "" {
		return "", NewPlanError(ErrInvalidInput, apiErrors.ErrInvalidInput, "artifact.bucket e artifact.key são obrigatórios")
	}

	var (
		text string
		err  error
	)

	switch domain.ExtractionModeFor(ref.MediaType) {
	case domain.ExtractionModeLabels, domain.ExtractionModeText:
		text, err = s.extractor.Extract(ctx, ref)
		if err != nil {
			return "", NewPlanError(ErrExtractionFailed, apiErrors.ErrExtractionFailed, err.Error())
		}
	case domain.ExtractionModeJob:
		text, err = s.awaitJob(ctx, ref)
		if err != nil {
			return "", err
		}
	default:
		return "", NewPlanError(ErrInvalidInput, apiErrors.ErrInvalidInput, fmt.Sprintf("media type não suportado: %q", ref.MediaType))
	}

	if strings.TrimSpace(text) == "" {
		return "", NewPlanError(ErrNoContentExtracted, apiErrors.ErrNoContentExtracted, ref.Key)
	}

	return text, nil
}

// awaitJob inicia o job de extração e consulta o status até um estado terminal.
// O intervalo entre consultas dobra até maxPollInterval e o total é limitado por deadline.
func (s *Service) awaitJob(ctx context.Context, ref domain.ArtifactRef) (string, error) {
	jobID, err := s.extractor.StartJob(ctx, ref)
	if err != nil {
		return "", NewPlanError(ErrExtractionFailed, apiErrors.ErrExtractionFailed, err.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, s.deadline)
	defer cancel()

	logger := log.ForContext(ctx).WithField("job_id", jobID)
	interval := s.pollInterval

	for attempt := 1; ; attempt++ {
		job, err := s.extractor.PollJob(ctx, jobID)
		if err != nil {
			if timedOut(ctx) {
				return "", s.timeoutError(jobID)
			}
			return "", NewPlanError(ErrExtractionFailed, apiErrors.ErrExtractionFailed, err.Error())
		}

		switch job.Status {
		case domain.ExtractionJobSucceeded:
			logger.Debugf("Job de extração concluído após %d consultas", attempt)
			return job.Text, nil
		case domain.ExtractionJobFailed:
			return "", NewPlanError(ErrExtractionFailed, apiErrors.ErrExtractionFailed,
				fmt.Sprintf("job %s: %s", jobID, job.Error))
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			if timedOut(ctx) {
				return "", s.timeoutError(jobID)
			}
			return "", ctx.Err()
		case <-timer.C:
		}

		interval = min(interval*2, s.maxPollInterval)
	}
}

func (s *Service) timeoutError(jobID string) *PlanError {
	return NewPlanError(ErrExtractionTimedOut, apiErrors.ErrExtractionTimedOut,
		fmt.Sprintf("job %s sem resultado após %s", jobID, s.deadline))
}

func timedOut(ctx context.Context) bool {
	return errors.Is(ctx.Err(), context.DeadlineExceeded)
}
