package vision

import (
	"context"
	"fmt"
	"sort"
	"strings"

	visiondomain "github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/integrator/vision/domain"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/integrator/vision/visionclient"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/config"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/domain"
)

// VisionService adapta o serviço de extração à interface usada pelo planejamento.
type VisionService struct {
	cfg    config.Extractor
	Client visionclient.Client
}

func New(cfg config.Extractor, client visionclient.Client) *VisionService {
	return &VisionService{
		cfg:    cfg,
		Client: client,
	}
}

// Extract atende os tipos síncronos. Para imagens, os rótulos acima da
// confiança mínima viram o texto de origem, do mais para o menos confiável.
func (s *VisionService) Extract(ctx context.Context, ref domain.ArtifactRef) (string, error) {
	object := visiondomain.ObjectRef{Bucket: ref.Bucket, Key: ref.Key}

	switch domain.ExtractionModeFor(ref.MediaType) {
	case domain.ExtractionModeLabels:
		resp, err := s.Client.DetectLabels(ctx, visiondomain.LabelsRequest{
			ObjectRef:     object,
			MaxLabels:     s.cfg.MaxLabels,
			MinConfidence: s.cfg.MinConfidence,
		})
		if err != nil {
			return "", err
		}
		return joinLabels(resp.Labels, s.cfg.MinConfidence, s.cfg.MaxLabels), nil
	case domain.ExtractionModeText:
		resp, err := s.Client.ReadText(ctx, object)
		if err != nil {
			return "", err
		}
		return resp.Text, nil
	}

	return "", fmt.Errorf("extração síncrona não suportada para %q", ref.MediaType)
}

func (s *VisionService) StartJob(ctx context.Context, ref domain.ArtifactRef) (string, error) {
	resp, err := s.Client.StartJob(ctx, visiondomain.StartJobRequest{
		ObjectRef: visiondomain.ObjectRef{Bucket: ref.Bucket, Key: ref.Key},
		MediaType: ref.MediaType,
	})
	if err != nil {
		return "", err
	}
	if resp.JobID == "" {
		return "", fmt.Errorf("serviço de extração não retornou jobId")
	}
	return resp.JobID, nil
}

func (s *VisionService) PollJob(ctx context.Context, jobID string) (*domain.ExtractionJob, error) {
	resp, err := s.Client.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	status := domain.ExtractionJobStatus(strings.ToLower(resp.Status))
	switch status {
	case domain.ExtractionJobPending, domain.ExtractionJobSucceeded, domain.ExtractionJobFailed:
	case "in_progress", "running", "submitted":
		status = domain.ExtractionJobPending
	default:
		return nil, fmt.Errorf("status de job desconhecido: %q", resp.Status)
	}

	return &domain.ExtractionJob{
		ID:     jobID,
		Status: status,
		Text:   resp.Text,
		Error:  resp.Error,
	}, nil
}

func joinLabels(labels []visiondomain.Label, minConfidence float64, maxLabels int) string {
	kept := make([]visiondomain.Label, 0, len(labels))
	for _, l := range labels {
		if l.Confidence >= minConfidence && strings.TrimSpace(l.Name) != "" {
			kept = append(kept, l)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Confidence > kept[j].Confidence })
	if maxLabels > 0 && len(kept) > maxLabels {
		kept = kept[:maxLabels]
	}

	names := make([]string, len(kept))
	for i, l := range kept {
		names[i] = l.Name
	}
	return strings.Join(names, ", ")
}
