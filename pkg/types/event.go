package types

import (
	"encoding/json"
	"time"
)

// EventType discriminates the payload shape of an event-log entry.
type EventType string

const (
	EventTypeAgentReport        EventType = "agent_report"
	EventTypeAgentExecution     EventType = "agent_execution"
	EventTypeGovernanceDecision EventType = "governance_decision"
	EventTypePlanSelection      EventType = "plan_selection"
)

// AgentReportPayload carries the fields of an agent_report event.
type AgentReportPayload struct {
	AgentName  string  `json:"agent_name"`
	Summary    string  `json:"summary,omitempty"`
	CostImpact float64 `json:"cost_impact,omitempty"`
}

// AgentExecutionPayload carries the fields of an agent_execution event.
type AgentExecutionPayload struct {
	AgentName string `json:"agent_name"`
	Status    string `json:"status,omitempty"`
}

// GovernanceDecisionPayload carries the fields of a governance_decision event.
type GovernanceDecisionPayload struct {
	Checkpoint string `json:"checkpoint"`
	Decision   string `json:"decision,omitempty"`
	Reasoning  string `json:"reasoning,omitempty"`
}

// PlanSelectionPayload carries the fields of a plan_selection event.
type PlanSelectionPayload struct {
	PlanID   string `json:"plan_id"`
	PathType string `json:"path_type,omitempty"`
}

// Event is one entry in the flat chronological event log. The payload is a
// tagged union: exactly one of the typed payload pointers is set for the
// known event types, and RawPayload always holds the payload as received so
// unknown types and renamed fields still round-trip to the UI.
//
// Position in the log is 1-based sequence order: SequenceNumber = index + 1.
type Event struct {
	Type       EventType       `json:"type"`
	EventID    string          `json:"event_id,omitempty"`
	Timestamp  *time.Time      `json:"timestamp,omitempty"`
	RawPayload json.RawMessage `json:"payload,omitempty"`

	AgentReport        *AgentReportPayload        `json:"-"`
	AgentExecution     *AgentExecutionPayload     `json:"-"`
	GovernanceDecision *GovernanceDecisionPayload `json:"-"`
	PlanSelection      *PlanSelectionPayload      `json:"-"`
}

// UnmarshalJSON decodes the event envelope and then the type-specific payload
// case. A payload that does not parse for its declared type is kept raw
// rather than rejected; the event log and the trace document are fetched
// independently and field drift between them is expected.
func (e *Event) UnmarshalJSON(data []byte) error {
	type envelope Event
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	*e = Event(env)

	if len(e.RawPayload) == 0 {
		return nil
	}

	switch e.Type {
	case EventTypeAgentReport:
		var p AgentReportPayload
		if json.Unmarshal(e.RawPayload, &p) == nil {
			e.AgentReport = &p
		}
	case EventTypeAgentExecution:
		var p AgentExecutionPayload
		if json.Unmarshal(e.RawPayload, &p) == nil {
			e.AgentExecution = &p
		}
	case EventTypeGovernanceDecision:
		var p GovernanceDecisionPayload
		if json.Unmarshal(e.RawPayload, &p) == nil {
			e.GovernanceDecision = &p
		}
	case EventTypePlanSelection:
		var p PlanSelectionPayload
		if json.Unmarshal(e.RawPayload, &p) == nil {
			e.PlanSelection = &p
		}
	}

	return nil
}

// AgentName returns the agent the event refers to, or "" when the event type
// carries no agent field.
func (e *Event) AgentName() string {
	switch {
	case e.AgentReport != nil:
		return e.AgentReport.AgentName
	case e.AgentExecution != nil:
		return e.AgentExecution.AgentName
	default:
		return ""
	}
}

// Checkpoint returns the governance checkpoint the event refers to, or "".
func (e *Event) Checkpoint() string {
	if e.GovernanceDecision != nil {
		return e.GovernanceDecision.Checkpoint
	}
	return ""
}

// EventLogDocument is the backend's event log wire shape.
type EventLogDocument struct {
	Events []Event `json:"events"`
}
