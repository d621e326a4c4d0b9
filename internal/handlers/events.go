package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Benjamindaoson/agentic-delivery-os-sub001/pkg/types"
)

// EventListItem is one event-log row with its 1-based sequence number made
// explicit so the UI can hand it back for evidence resolution.
type EventListItem struct {
	SequenceNumber int         `json:"sequence_number"`
	Event          types.Event `json:"event"`
}

// EventListResponse is the event log view.
type EventListResponse struct {
	TaskID     string          `json:"task_id"`
	Events     []EventListItem `json:"events"`
	Total      int             `json:"total"`
	SnapshotAt time.Time       `json:"snapshot_at"`
}

// GetTaskEventsHandler handles GET /api/ui/v1/tasks/:task_id/events
func GetTaskEventsHandler(views ViewProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID := strings.TrimSpace(c.Param("task_id"))
		if taskID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "task_id is required"})
			return
		}

		log, snapshotAt, ok := views.Views(taskID).Events.Get()
		if !ok {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": errNotLoaded})
			return
		}

		items := make([]EventListItem, 0, len(log.Events))
		for i, event := range log.Events {
			items = append(items, EventListItem{SequenceNumber: i + 1, Event: event})
		}

		c.JSON(http.StatusOK, EventListResponse{
			TaskID:     taskID,
			Events:     items,
			Total:      len(items),
			SnapshotAt: snapshotAt,
		})
	}
}
