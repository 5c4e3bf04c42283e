package domain

type MonitoringAnalysis struct {
	RefinementNeeded      bool   `json:"refinementNeeded"`
	RefinementInstruction string `json:"refinementInstruction"`
}

type MonitoringResult struct {
	Refined  bool               `json:"refined"`
	Message  string             `json:"message"`
	Analysis MonitoringAnalysis `json:"analysis"`
	Plan     *Plan              `json:"plan,omitempty"`
	Diff     string             `json:"diff,omitempty"`
}
