package handlers

import (
	"context"

	"github.com/Benjamindaoson/agentic-delivery-os-sub001/internal/poller"
	"github.com/Benjamindaoson/agentic-delivery-os-sub001/pkg/types"
)

// ViewProvider hands out the polled snapshots for a task, starting its
// refresh loops on first access.
type ViewProvider interface {
	Views(taskID string) *poller.TaskViews
}

// TaskResumer forwards resume inputs to the backend.
type TaskResumer interface {
	ResumeTask(ctx context.Context, req types.ResumeTaskRequest) error
}

// errNotLoaded is the generic inability-to-load body. The next poll tick is
// the retry mechanism, so the response does not distinguish "backend down"
// from "first poll still in flight".
const errNotLoaded = "data not yet loaded, retrying in background"
