package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Benjamindaoson/agentic-delivery-os-sub001/pkg/types"
)

// ResumeRequest is the request body for resuming a paused task. Inputs are
// keyed by the missing-input names reported on the status view.
type ResumeRequest struct {
	Inputs map[string]string `json:"inputs" binding:"required"`
}

// ResumeTaskHandler handles POST /api/ui/v1/tasks/:task_id/resume
//
// The console does not validate inputs beyond shape; the backend owns the
// business rules and may reject the resume.
func ResumeTaskHandler(resumer TaskResumer) gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID := strings.TrimSpace(c.Param("task_id"))
		if taskID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "task_id is required"})
			return
		}

		var req ResumeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request body: %v", err)})
			return
		}

		err := resumer.ResumeTask(c.Request.Context(), types.ResumeTaskRequest{
			TaskID: taskID,
			Inputs: req.Inputs,
		})
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("Failed to resume task: %v", err)})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"task_id": taskID,
			"message": "Resume submitted",
		})
	}
}
