// Package counterfactual derives cost and node-count estimates for execution
// paths that were not taken.
//
// The estimator does not simulate execution. It applies fixed deterministic
// multipliers to the actually-observed path so reviewers get a reproducible
// order-of-magnitude comparison, and every consumer-facing presentation of
// its output must carry a disclaimer that the numbers are estimates, not
// executions.
package counterfactual

import "github.com/Benjamindaoson/agentic-delivery-os-sub001/pkg/types"

// PathType identifies a hypothetical alternate execution path.
type PathType string

const (
	PathNormal  PathType = "NORMAL"
	PathMinimal PathType = "MINIMAL"
)

// Scaling constants. These are a policy choice, not a measurement: the plan's
// per-node cost_estimate fields are deliberately ignored for now.
// TODO: revisit with product whether estimates should derive from per-node
// cost_estimate instead of these fixed multipliers.
const (
	normalCostFactor  = 1.5
	minimalCostFactor = 0.5
	normalNodeDelta   = 2
	minimalNodeDelta  = -2
)

// Disclaimer must accompany every rendering of estimator output.
const Disclaimer = "Estimated values only. These paths were never executed; figures are derived from the actual path by fixed multipliers."

// Path is one counterfactual comparison row. Always computed on demand from
// the current actual-path summary, never persisted.
type Path struct {
	PathType       PathType `json:"path_type"`
	EstimatedCost  float64  `json:"estimated_cost"`
	EstimatedNodes int      `json:"estimated_nodes"`
	Description    string   `json:"description"`
}

// Estimate returns exactly two rows, NORMAL then MINIMAL. It is total over
// its input domain and has no hidden state: the same summary always yields
// identical results. Cost and node count are assumed non-negative; callers
// validate upstream.
func Estimate(actual types.ActualPathSummary) []Path {
	minimalNodes := actual.NodesExecuted + minimalNodeDelta
	if minimalNodes < 1 {
		minimalNodes = 1
	}

	return []Path{
		{
			PathType:       PathNormal,
			EstimatedCost:  actual.Cost * normalCostFactor,
			EstimatedNodes: actual.NodesExecuted + normalNodeDelta,
			Description:    "full (non-degraded) execution path",
		},
		{
			PathType:       PathMinimal,
			EstimatedCost:  actual.Cost * minimalCostFactor,
			EstimatedNodes: minimalNodes,
			Description:    "minimal execution path",
		},
	}
}

// CostDiff is the estimated minus actual cost for one comparison row.
func CostDiff(estimated Path, actual types.ActualPathSummary) float64 {
	return estimated.EstimatedCost - actual.Cost
}

// CostDiffPercent returns the relative cost difference in percent. The
// second return value is false when the actual cost is zero, in which case
// the percentage is undefined and callers render "n/a" instead of dividing.
func CostDiffPercent(estimated Path, actual types.ActualPathSummary) (float64, bool) {
	if actual.Cost == 0 {
		return 0, false
	}
	return CostDiff(estimated, actual) / actual.Cost * 100, true
}
