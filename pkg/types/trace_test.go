package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarizeActualPath(t *testing.T) {
	trace := &TraceDocument{
		AgentReports: []AgentReport{
			{Agent: "coder", CostImpact: 60},
			{Agent: "reviewer", CostImpact: 40},
		},
		ExecutionPlan: &ExecutionPlan{
			PathType: "DEGRADED",
			ExecutedNodes: []PlanNode{
				{NodeID: "n1", Agent: "coder"},
				{NodeID: "n2", Agent: "reviewer"},
				{NodeID: "n3", Agent: "evaluator"},
			},
		},
	}

	summary := SummarizeActualPath(trace)
	require.Equal(t, "DEGRADED", summary.PathType)
	require.InDelta(t, 100.0, summary.Cost, 1e-9)
	require.Equal(t, 3, summary.NodesExecuted)
}

func TestSummarizeActualPath_NilTrace(t *testing.T) {
	summary := SummarizeActualPath(nil)
	require.Equal(t, "ACTUAL", summary.PathType)
	require.Zero(t, summary.Cost)
	require.Zero(t, summary.NodesExecuted)
}

func TestSummarizeActualPath_MissingPlanAndNegativeCost(t *testing.T) {
	trace := &TraceDocument{
		AgentReports: []AgentReport{
			{Agent: "coder", CostImpact: -5},
		},
	}

	summary := SummarizeActualPath(trace)
	require.Equal(t, "ACTUAL", summary.PathType)
	require.Zero(t, summary.Cost)
	require.Zero(t, summary.NodesExecuted)
}
