package domain

import "time"

// MetricRecord é o resultado simulado de um envio em um canal. Nunca é alterado depois de criado.
type MetricRecord struct {
	ID          string    `json:"id"`
	PlanID      string    `json:"planId,omitempty"`
	Channel     string    `json:"channel"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Conversions int64     `json:"conversions"`
	Cost        float64   `json:"cost"`
	CreatedAt   time.Time `json:"createdAt"`
}
