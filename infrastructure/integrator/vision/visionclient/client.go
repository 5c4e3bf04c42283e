package visionclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	visiondomain "github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/integrator/vision/domain"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/config"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	DetectLabels(ctx context.Context, req visiondomain.LabelsRequest) (*visiondomain.LabelsResponse, error)
	ReadText(ctx context.Context, ref visiondomain.ObjectRef) (*visiondomain.TextResponse, error)
	StartJob(ctx context.Context, req visiondomain.StartJobRequest) (*visiondomain.JobResponse, error)
	GetJob(ctx context.Context, jobID string) (*visiondomain.JobResponse, error)
}

type VisionClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewClient(cfg config.Extractor) Client {
	return &VisionClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: cfg.URL,
		token:   cfg.Token,
	}
}

func (c *VisionClient) DetectLabels(ctx context.Context, req visiondomain.LabelsRequest) (*visiondomain.LabelsResponse, error) {
	var response visiondomain.LabelsResponse
	if err := c.do(ctx, http.MethodPost, "/v1/labels", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *VisionClient) ReadText(ctx context.Context, ref visiondomain.ObjectRef) (*visiondomain.TextResponse, error) {
	var response visiondomain.TextResponse
	if err := c.do(ctx, http.MethodPost, "/v1/text", ref, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *VisionClient) StartJob(ctx context.Context, req visiondomain.StartJobRequest) (*visiondomain.JobResponse, error) {
	var response visiondomain.JobResponse
	if err := c.do(ctx, http.MethodPost, "/v1/jobs", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *VisionClient) GetJob(ctx context.Context, jobID string) (*visiondomain.JobResponse, error) {
	var response visiondomain.JobResponse
	if err := c.do(ctx, http.MethodGet, "/v1/jobs/"+url.PathEscape(jobID), nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *VisionClient) do(ctx context.Context, method, route string, payload, out any) error {
	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, route)

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "erro ao serializar a requisição")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("requisição %s %s falhou com status %s: %s", method, route, resp.Status, bytes.TrimSpace(detail))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return nil
}
