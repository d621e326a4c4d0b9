package types

import (
	"encoding/json"
	"time"
)

// TraceDocument is the backend's canonical, structured execution record for
// one task. Field names are snake_cased exactly as the backend produces them.
//
// AgentExecutions and GovernanceDecisions are keyed by a business field
// (agent name / checkpoint) that is not guaranteed unique; correlation takes
// the first match in document order.
type TraceDocument struct {
	AgentExecutions        []AgentExecution     `json:"agent_executions,omitempty"`
	GovernanceDecisions    []GovernanceDecision `json:"governance_decisions,omitempty"`
	ExecutionPlan          *ExecutionPlan       `json:"execution_plan,omitempty"`
	AgentReports           []AgentReport        `json:"agent_reports,omitempty"`
	ToolExecutions         []ToolExecution      `json:"tool_executions,omitempty"`
	EvaluationFeedbackFlow []EvaluationFeedback `json:"evaluation_feedback_flow,omitempty"`
}

// AgentExecution is one per-agent execution record inside the trace.
type AgentExecution struct {
	Agent          string          `json:"agent"`
	Status         string          `json:"status,omitempty"`
	Input          json.RawMessage `json:"input,omitempty"`
	Output         json.RawMessage `json:"output,omitempty"`
	StartedAt      *time.Time      `json:"started_at,omitempty"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`
	DurationMS     int64           `json:"duration_ms,omitempty"`
	ToolExecutions []ToolExecution `json:"tool_executions,omitempty"`
}

// GovernanceDecision is a checkpoint-scoped policy decision recorded in the
// trace (mode selection, pause, resume approval).
type GovernanceDecision struct {
	Checkpoint string     `json:"checkpoint"`
	Decision   string     `json:"decision,omitempty"`
	Reasoning  string     `json:"reasoning,omitempty"`
	DecidedAt  *time.Time `json:"decided_at,omitempty"`
}

// ExecutionPlan captures plan identity, selection history, and the executed
// node list with per-node condition evidence.
type ExecutionPlan struct {
	PlanID           string          `json:"plan_id,omitempty"`
	PathType         string          `json:"path_type,omitempty"`
	SelectionHistory []PlanSelection `json:"selection_history,omitempty"`
	ExecutedNodes    []PlanNode      `json:"executed_nodes,omitempty"`
}

// PlanSelection is one entry in the plan's selection history.
type PlanSelection struct {
	PlanID     string     `json:"plan_id"`
	Reason     string     `json:"reason,omitempty"`
	SelectedAt *time.Time `json:"selected_at,omitempty"`
}

// PlanNode is one executed node of the plan. CostEstimate is the planner's
// per-node estimate; the counterfactual estimator currently ignores it in
// favor of fixed multipliers.
type PlanNode struct {
	NodeID            string          `json:"node_id"`
	Agent             string          `json:"agent,omitempty"`
	ConditionEvidence json.RawMessage `json:"condition_evidence,omitempty"`
	CostEstimate      float64         `json:"cost_estimate,omitempty"`
}

// AgentReport is one per-invocation report inside the trace.
type AgentReport struct {
	Agent      string     `json:"agent"`
	Summary    string     `json:"summary,omitempty"`
	CostImpact float64    `json:"cost_impact,omitempty"`
	Confidence float64    `json:"confidence,omitempty"`
	ReportedAt *time.Time `json:"reported_at,omitempty"`
}

// ToolExecution is one tool invocation, either from the flat top-level list
// or nested under an agent execution.
type ToolExecution struct {
	Tool       string          `json:"tool"`
	Agent      string          `json:"agent,omitempty"`
	Status     string          `json:"status,omitempty"`
	Args       json.RawMessage `json:"args,omitempty"`
	DurationMS int64           `json:"duration_ms,omitempty"`
}

// EvaluationFeedback is one evaluator-to-agent feedback hop.
type EvaluationFeedback struct {
	FromAgent string `json:"from_agent,omitempty"`
	ToAgent   string `json:"to_agent,omitempty"`
	Verdict   string `json:"verdict,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

// ActualPathSummary describes the actually-executed path of one task: the
// total observed cost and the number of plan nodes that ran.
type ActualPathSummary struct {
	PathType      string  `json:"path_type"`
	Cost          float64 `json:"cost"`
	NodesExecuted int     `json:"nodes_executed"`
}

// SummarizeActualPath derives the actual-path summary from a trace document.
// Cost is the sum of cost_impact across all agent reports, floored at zero;
// nodes executed is the executed-node count of the plan. A nil or partially
// missing trace yields zero values rather than an error.
func SummarizeActualPath(trace *TraceDocument) ActualPathSummary {
	summary := ActualPathSummary{PathType: "ACTUAL"}
	if trace == nil {
		return summary
	}

	for _, report := range trace.AgentReports {
		summary.Cost += report.CostImpact
	}
	if summary.Cost < 0 {
		summary.Cost = 0
	}

	if trace.ExecutionPlan != nil {
		summary.NodesExecuted = len(trace.ExecutionPlan.ExecutedNodes)
		if trace.ExecutionPlan.PathType != "" {
			summary.PathType = trace.ExecutionPlan.PathType
		}
	}

	return summary
}
