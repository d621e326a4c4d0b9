package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Benjamindaoson/agentic-delivery-os-sub001/pkg/types"
)

// TaskStatusResponse is the status view served to UI callers. ResumePath is
// the redirect hint the UI follows when the task is paused awaiting input.
type TaskStatusResponse struct {
	TaskID        string                    `json:"task_id"`
	Status        types.TaskStatusValue     `json:"status"`
	Detail        *types.TaskStatusDocument `json:"detail"`
	ResumePath    string                    `json:"resume_path,omitempty"`
	MissingInputs []string                  `json:"missing_inputs,omitempty"`
	SnapshotAt    time.Time                 `json:"snapshot_at"`
}

// GetTaskStatusHandler handles GET /api/ui/v1/tasks/:task_id/status
func GetTaskStatusHandler(views ViewProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID := strings.TrimSpace(c.Param("task_id"))
		if taskID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "task_id is required"})
			return
		}

		doc, snapshotAt, ok := views.Views(taskID).Status.Get()
		if !ok {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": errNotLoaded})
			return
		}

		status := types.NormalizeTaskStatus(doc.Status)
		resp := TaskStatusResponse{
			TaskID:     taskID,
			Status:     status,
			Detail:     doc,
			SnapshotAt: snapshotAt,
		}
		if status == types.TaskStatusPaused {
			resp.ResumePath = fmt.Sprintf("/api/ui/v1/tasks/%s/resume", taskID)
			resp.MissingInputs = doc.MissingInputs
		}

		c.JSON(http.StatusOK, resp)
	}
}
