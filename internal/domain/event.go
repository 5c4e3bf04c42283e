package domain

import "time"

type PlanEventType string

const (
	PlanEventCreated          PlanEventType = "plan.created"
	PlanEventRefined          PlanEventType = "plan.refined"
	PlanEventApproved         PlanEventType = "plan.approved"
	PlanEventCampaignExecuted PlanEventType = "campaign.executed"
)

type PlanEvent struct {
	Type       PlanEventType `json:"type"`
	PlanID     string        `json:"planId"`
	Version    int           `json:"version"`
	Status     PlanStatus    `json:"status"`
	OccurredAt time.Time     `json:"occurredAt"`
	Payload    any           `json:"payload,omitempty"`
}

func NewPlanEvent(eventType PlanEventType, plan *Plan, occurredAt time.Time, payload any) PlanEvent {
	return PlanEvent{
		Type:       eventType,
		PlanID:     plan.ID,
		Version:    plan.Version,
		Status:     plan.Status,
		OccurredAt: occurredAt,
		Payload:    payload,
	}
}
