package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Benjamindaoson/agentic-delivery-os-sub001/internal/counterfactual"
	"github.com/Benjamindaoson/agentic-delivery-os-sub001/pkg/types"
)

// CounterfactualRow is one comparison row. CostDiffPercent is null when the
// actual cost is zero; the UI renders it as "n/a" rather than dividing.
type CounterfactualRow struct {
	counterfactual.Path
	CostDiff        float64  `json:"cost_diff"`
	CostDiffPercent *float64 `json:"cost_diff_percent"`
}

// CounterfactualResponse is the cost comparison view. Disclaimer always
// accompanies the rows: the figures are estimates, never real executions.
type CounterfactualResponse struct {
	TaskID     string                  `json:"task_id"`
	Actual     types.ActualPathSummary `json:"actual"`
	Paths      []CounterfactualRow     `json:"paths"`
	Disclaimer string                  `json:"disclaimer"`
	SnapshotAt time.Time               `json:"snapshot_at"`
}

// GetTaskCounterfactualsHandler handles
// GET /api/ui/v1/tasks/:task_id/counterfactuals
//
// Rows are regenerated from the current trace snapshot on every request;
// nothing is persisted.
func GetTaskCounterfactualsHandler(views ViewProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID := strings.TrimSpace(c.Param("task_id"))
		if taskID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "task_id is required"})
			return
		}

		trace, snapshotAt, ok := views.Views(taskID).Trace.Get()
		if !ok {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": errNotLoaded})
			return
		}

		actual := types.SummarizeActualPath(trace)
		paths := counterfactual.Estimate(actual)

		rows := make([]CounterfactualRow, 0, len(paths))
		for _, path := range paths {
			row := CounterfactualRow{
				Path:     path,
				CostDiff: counterfactual.CostDiff(path, actual),
			}
			if pct, ok := counterfactual.CostDiffPercent(path, actual); ok {
				row.CostDiffPercent = &pct
			}
			rows = append(rows, row)
		}

		c.JSON(http.StatusOK, CounterfactualResponse{
			TaskID:     taskID,
			Actual:     actual,
			Paths:      rows,
			Disclaimer: counterfactual.Disclaimer,
			SnapshotAt: snapshotAt,
		})
	}
}
