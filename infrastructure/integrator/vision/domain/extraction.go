package domain

type ObjectRef struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

type LabelsRequest struct {
	ObjectRef
	MaxLabels     int     `json:"maxLabels"`
	MinConfidence float64 `json:"minConfidence"`
}

type Label struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

type LabelsResponse struct {
	Labels []Label `json:"labels"`
}

type TextResponse struct {
	Text string `json:"text"`
}

type StartJobRequest struct {
	ObjectRef
	MediaType string `json:"mediaType"`
}

type JobResponse struct {
	JobID  string `json:"jobId"`
	Status string `json:"status"`
	Text   string `json:"text,omitempty"`
	Error  string `json:"error,omitempty"`
}
