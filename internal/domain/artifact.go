package domain

import "strings"

// ArtifactRef aponta para um arquivo enviado ao object storage.
type ArtifactRef struct {
	Bucket    string `json:"bucket"`
	Key       string `json:"key"`
	MediaType string `json:"mediaType"`
}

type ExtractionMode string

const (
	ExtractionModeLabels      ExtractionMode = "labels"
	ExtractionModeText        ExtractionMode = "text"
	ExtractionModeJob         ExtractionMode = "job"
	ExtractionModeUnsupported ExtractionMode = "unsupported"
)

const mediaTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// ExtractionModeFor decide como extrair o texto de um artefato pelo media type declarado.
func ExtractionModeFor(mediaType string) ExtractionMode {
	mt := strings.ToLower(strings.TrimSpace(mediaType))
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}

	switch {
	case strings.HasPrefix(mt, "image/"):
		return ExtractionModeLabels
	case mt == "text/plain":
		return ExtractionModeText
	case strings.HasPrefix(mt, "video/"):
		return ExtractionModeJob
	case mt == "application/pdf", mt == "application/msword", mt == mediaTypeDocx:
		return ExtractionModeJob
	}

	return ExtractionModeUnsupported
}

type ExtractionJobStatus string

const (
	ExtractionJobPending   ExtractionJobStatus = "pending"
	ExtractionJobSucceeded ExtractionJobStatus = "succeeded"
	ExtractionJobFailed    ExtractionJobStatus = "failed"
)

func (s ExtractionJobStatus) IsTerminal() bool {
	return s == ExtractionJobSucceeded || s == ExtractionJobFailed
}

type ExtractionJob struct {
	ID     string              `json:"jobId"`
	Status ExtractionJobStatus `json:"status"`
	Text   string              `json:"text,omitempty"`
	Error  string              `json:"error,omitempty"`
}
