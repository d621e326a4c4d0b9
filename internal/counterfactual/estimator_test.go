package counterfactual

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Benjamindaoson/agentic-delivery-os-sub001/pkg/types"
)

func TestEstimate_AppliesFixedMultipliers(t *testing.T) {
	actual := types.ActualPathSummary{PathType: "DEGRADED", Cost: 100, NodesExecuted: 5}

	paths := Estimate(actual)
	require.Len(t, paths, 2)

	require.Equal(t, PathNormal, paths[0].PathType)
	require.InDelta(t, 150.0, paths[0].EstimatedCost, 1e-9)
	require.Equal(t, 7, paths[0].EstimatedNodes)

	require.Equal(t, PathMinimal, paths[1].PathType)
	require.InDelta(t, 50.0, paths[1].EstimatedCost, 1e-9)
	require.Equal(t, 3, paths[1].EstimatedNodes)
}

func TestEstimate_MinimalNodesFlooredAtOne(t *testing.T) {
	paths := Estimate(types.ActualPathSummary{Cost: 0, NodesExecuted: 1})
	require.Len(t, paths, 2)
	require.Equal(t, 1, paths[1].EstimatedNodes)
	require.Zero(t, paths[1].EstimatedCost)

	paths = Estimate(types.ActualPathSummary{NodesExecuted: 0})
	require.Equal(t, 1, paths[1].EstimatedNodes)
}

func TestEstimate_Deterministic(t *testing.T) {
	actual := types.ActualPathSummary{Cost: 42.5, NodesExecuted: 4}
	require.Equal(t, Estimate(actual), Estimate(actual))
}

func TestCostDiff(t *testing.T) {
	actual := types.ActualPathSummary{Cost: 100, NodesExecuted: 5}
	paths := Estimate(actual)

	require.InDelta(t, 50.0, CostDiff(paths[0], actual), 1e-9)
	require.InDelta(t, -50.0, CostDiff(paths[1], actual), 1e-9)
}

func TestCostDiffPercent(t *testing.T) {
	actual := types.ActualPathSummary{Cost: 100, NodesExecuted: 5}
	paths := Estimate(actual)

	pct, ok := CostDiffPercent(paths[0], actual)
	require.True(t, ok)
	require.InDelta(t, 50.0, pct, 1e-9)

	pct, ok = CostDiffPercent(paths[1], actual)
	require.True(t, ok)
	require.InDelta(t, -50.0, pct, 1e-9)
}

func TestCostDiffPercent_ZeroActualCostUndefined(t *testing.T) {
	actual := types.ActualPathSummary{Cost: 0, NodesExecuted: 3}
	paths := Estimate(actual)

	_, ok := CostDiffPercent(paths[0], actual)
	require.False(t, ok)
}
