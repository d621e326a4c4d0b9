package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Benjamindaoson/agentic-delivery-os-sub001/pkg/types"
)

// ToolExecutionsResponse is the tool invocation view.
type ToolExecutionsResponse struct {
	TaskID         string                `json:"task_id"`
	ToolExecutions []types.ToolExecution `json:"tool_executions"`
	Total          int                   `json:"total"`
	SnapshotAt     time.Time             `json:"snapshot_at"`
}

// GetTaskToolExecutionsHandler handles GET /api/ui/v1/tasks/:task_id/tools
func GetTaskToolExecutionsHandler(views ViewProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID := strings.TrimSpace(c.Param("task_id"))
		if taskID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "task_id is required"})
			return
		}

		tools, snapshotAt, ok := views.Views(taskID).Tools.Get()
		if !ok {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": errNotLoaded})
			return
		}

		if tools == nil {
			tools = []types.ToolExecution{}
		}
		c.JSON(http.StatusOK, ToolExecutionsResponse{
			TaskID:         taskID,
			ToolExecutions: tools,
			Total:          len(tools),
			SnapshotAt:     snapshotAt,
		})
	}
}
