package handlers

import (
	"context"
	"errors"

	"github.com/Benjamindaoson/agentic-delivery-os-sub001/internal/poller"
	"github.com/Benjamindaoson/agentic-delivery-os-sub001/pkg/types"
)

// fakeViewProvider hands out a single pre-populated TaskViews without
// starting any refresh loops.
type fakeViewProvider struct {
	views *poller.TaskViews
}

func newFakeViewProvider() *fakeViewProvider {
	return &fakeViewProvider{
		views: &poller.TaskViews{
			Status: &poller.Snapshot[*types.TaskStatusDocument]{},
			Events: &poller.Snapshot[*types.EventLogDocument]{},
			Trace:  &poller.Snapshot[*types.TraceDocument]{},
			Tools:  &poller.Snapshot[[]types.ToolExecution]{},
		},
	}
}

func (f *fakeViewProvider) Views(taskID string) *poller.TaskViews {
	f.views.TaskID = taskID
	return f.views
}

// fakeResumer records the last resume request and optionally fails.
type fakeResumer struct {
	lastRequest types.ResumeTaskRequest
	fail        bool
}

func (f *fakeResumer) ResumeTask(_ context.Context, req types.ResumeTaskRequest) error {
	f.lastRequest = req
	if f.fail {
		return errors.New("backend rejected resume")
	}
	return nil
}
