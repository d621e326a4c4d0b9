package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Benjamindaoson/agentic-delivery-os-sub001/internal/evidence"
)

// EvidenceResponse wraps a resolved evidence record. Degraded marks a
// best-effort result whose data is the raw event payload because the trace
// held no structured counterpart; the UI renders it with a staleness note
// instead of treating it as an error.
type EvidenceResponse struct {
	TaskID         string           `json:"task_id"`
	Record         *evidence.Record `json:"record"`
	Degraded       bool             `json:"degraded"`
	EventsSnapshot time.Time        `json:"events_snapshot_at"`
	TraceSnapshot  time.Time        `json:"trace_snapshot_at"`
}

// GetTaskEvidenceHandler handles
// GET /api/ui/v1/tasks/:task_id/evidence?event_id=...&sequence=...
//
// No event_id means nothing is selected and yields 204. An event_id that
// matches no event in the current log yields 404.
func GetTaskEvidenceHandler(views ViewProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID := strings.TrimSpace(c.Param("task_id"))
		if taskID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "task_id is required"})
			return
		}

		eventID := strings.TrimSpace(c.Query("event_id"))
		if eventID == "" {
			c.Status(http.StatusNoContent)
			return
		}

		sequence := 0
		if raw := c.Query("sequence"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "sequence must be a positive integer"})
				return
			}
			sequence = parsed
		}

		taskViews := views.Views(taskID)
		log, eventsAt, ok := taskViews.Events.Get()
		if !ok {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": errNotLoaded})
			return
		}
		// The trace may lag behind the event log; resolution degrades
		// gracefully on a nil trace rather than waiting for it.
		trace, traceAt, _ := taskViews.Trace.Get()

		record := evidence.Resolve(eventID, sequence, log.Events, trace)
		if record == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found in current event log"})
			return
		}

		c.JSON(http.StatusOK, EvidenceResponse{
			TaskID:         taskID,
			Record:         record,
			Degraded:       record.Degraded(),
			EventsSnapshot: eventsAt,
			TraceSnapshot:  traceAt,
		})
	}
}
