package gemini

import (
	"context"
	"strings"
	"time"

	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/config"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/log"
	"github.com/pkg/errors"
	"google.golang.org/genai"
)

const defaultBackoff = 2 * time.Second

// contentGenerator é o subconjunto de genai.Models usado pelo serviço.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type GeminiService struct {
	cfg     config.Gemini
	models  contentGenerator
	backoff time.Duration
}

// NewClient abre o cliente da Gemini API com a chave configurada.
func NewClient(ctx context.Context, cfg config.Gemini) (*genai.Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("GEMINI_API_KEY não configurada")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar cliente gemini")
	}

	return client, nil
}

func New(cfg config.Gemini, client *genai.Client) *GeminiService {
	return newService(cfg, client.Models)
}

func newService(cfg config.Gemini, models contentGenerator) *GeminiService {
	return &GeminiService{
		cfg:     cfg,
		models:  models,
		backoff: defaultBackoff,
	}
}

// Generate envia um prompt e devolve o texto da primeira resposta. Erros do
// provedor são repetidos até MaxRetries com espera crescente.
func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(s.cfg.Temperature)),
	}
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	var (
		resp   *genai.GenerateContentResponse
		apiErr error
	)

	for attempt := 0; attempt <= s.cfg.MaxRetries; attempt++ {
		resp, apiErr = s.models.GenerateContent(ctx, s.cfg.Model, contents, genConfig)
		if apiErr == nil {
			break
		}

		if attempt == s.cfg.MaxRetries {
			break
		}

		wait := time.Duration(attempt+1) * s.backoff
		log.ForContext(ctx).
			WithError(apiErr).
			WithField("attempt", attempt+1).
			Warnf("Falha na chamada ao Gemini, tentando novamente em %s", wait)

		select {
		case <-ctx.Done():
			return "", errors.Wrap(ctx.Err(), "contexto cancelado durante retry")
		case <-time.After(wait):
		}
	}

	if apiErr != nil {
		return "", errors.Wrapf(apiErr, "falha ao gerar conteúdo após %d tentativas", s.cfg.MaxRetries+1)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("resposta vazia do modelo")
	}

	return text, nil
}
