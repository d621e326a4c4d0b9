// Package poller runs the scheduled-refresh tasks that keep per-view
// snapshots of backend documents current. Polling at a fixed interval is the
// console's only concurrency primitive; each poll is independent and the
// latest response replaces the previous snapshot.
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/Benjamindaoson/agentic-delivery-os-sub001/internal/backend"
	"github.com/Benjamindaoson/agentic-delivery-os-sub001/internal/logger"
	"github.com/Benjamindaoson/agentic-delivery-os-sub001/internal/metrics"
	"github.com/Benjamindaoson/agentic-delivery-os-sub001/pkg/types"
)

// TaskViews holds the four polled snapshots for one task.
type TaskViews struct {
	TaskID string

	Status *Snapshot[*types.TaskStatusDocument]
	Events *Snapshot[*types.EventLogDocument]
	Trace  *Snapshot[*types.TraceDocument]
	Tools  *Snapshot[[]types.ToolExecution]

	cancel context.CancelFunc

	// lastAccess is guarded by the manager's mutex.
	lastAccess time.Time
}

// Manager starts and stops the per-task refresh loops. Views are created
// lazily on first access and torn down deterministically, via context
// cancellation, once no caller has read them for idleTTL.
type Manager struct {
	client   *backend.Client
	recorder *metrics.Recorder
	interval time.Duration
	idleTTL  time.Duration

	mu    sync.Mutex
	tasks map[string]*TaskViews

	rootCtx    context.Context
	rootCancel context.CancelFunc
}

// NewManager builds a poll manager. A zero interval defaults to 2 seconds,
// a zero idleTTL to 5 minutes. The recorder may be nil.
func NewManager(client *backend.Client, recorder *metrics.Recorder, interval, idleTTL time.Duration) *Manager {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if idleTTL <= 0 {
		idleTTL = 5 * time.Minute
	}
	ctx, cancel := context.WithCancel(context.Background())
	m := &Manager{
		client:     client,
		recorder:   recorder,
		interval:   interval,
		idleTTL:    idleTTL,
		tasks:      make(map[string]*TaskViews),
		rootCtx:    ctx,
		rootCancel: cancel,
	}
	go m.reapIdle()
	return m
}

// Views returns the snapshots for a task, starting its refresh loops on
// first access.
func (m *Manager) Views(taskID string) *TaskViews {
	m.mu.Lock()
	defer m.mu.Unlock()

	if views, ok := m.tasks[taskID]; ok {
		views.lastAccess = time.Now()
		return views
	}

	ctx, cancel := context.WithCancel(m.rootCtx)
	views := &TaskViews{
		TaskID: taskID,
		Status: &Snapshot[*types.TaskStatusDocument]{},
		Events: &Snapshot[*types.EventLogDocument]{},
		Trace:  &Snapshot[*types.TraceDocument]{},
		Tools:  &Snapshot[[]types.ToolExecution]{},
		cancel: cancel,
	}
	views.lastAccess = time.Now()
	m.tasks[taskID] = views

	go runView(ctx, "status", m.interval, views.Status, m.recorder, func(ctx context.Context) (*types.TaskStatusDocument, error) {
		return m.client.GetStatus(ctx, taskID)
	})
	go runView(ctx, "events", m.interval, views.Events, m.recorder, func(ctx context.Context) (*types.EventLogDocument, error) {
		return m.client.GetEvents(ctx, taskID)
	})
	go runView(ctx, "trace", m.interval, views.Trace, m.recorder, func(ctx context.Context) (*types.TraceDocument, error) {
		return m.client.GetTrace(ctx, taskID)
	})
	go runView(ctx, "tools", m.interval, views.Tools, m.recorder, func(ctx context.Context) ([]types.ToolExecution, error) {
		return m.client.GetToolExecutions(ctx, taskID)
	})

	logger.Logger.Info().Str("task_id", taskID).Dur("interval", m.interval).Msg("started task refresh loops")
	return views
}

// StopTask cancels a single task's refresh loops.
func (m *Manager) StopTask(taskID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if views, ok := m.tasks[taskID]; ok {
		views.cancel()
		delete(m.tasks, taskID)
	}
}

// Stop cancels every refresh loop. Safe to call more than once.
func (m *Manager) Stop() {
	m.rootCancel()
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, views := range m.tasks {
		views.cancel()
		delete(m.tasks, id)
	}
}

// runView polls one document on a fixed tick until the context is cancelled.
// A failed poll keeps the previous snapshot and logs at debug level; the next
// tick retries with no backoff. Each fetch runs in its own goroutine so a
// slow response does not delay the schedule, which is also what allows an
// older response to land after a newer one.
func runView[T any](ctx context.Context, view string, interval time.Duration, snap *Snapshot[T], recorder *metrics.Recorder, fetch func(context.Context) (T, error)) {
	poll := func() {
		start := time.Now()
		value, err := fetch(ctx)
		if recorder != nil {
			recorder.ObservePoll(view, err, time.Since(start))
		}
		if err != nil {
			if ctx.Err() == nil {
				logger.Logger.Debug().Str("view", view).Err(err).Msg("poll failed; keeping previous snapshot")
			}
			return
		}
		snap.Set(value)
		if recorder != nil {
			recorder.SetSnapshotAge(view, 0)
		}
	}

	go poll()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			go poll()
			if recorder != nil {
				if age, ok := snap.Age(); ok {
					recorder.SetSnapshotAge(view, age)
				}
			}
		}
	}
}

// reapIdle cancels refresh loops for tasks nobody has read recently.
func (m *Manager) reapIdle() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-m.rootCtx.Done():
			return
		case <-ticker.C:
			m.mu.Lock()
			for id, views := range m.tasks {
				if time.Since(views.lastAccess) > m.idleTTL {
					views.cancel()
					delete(m.tasks, id)
					logger.Logger.Info().Str("task_id", id).Msg("stopped idle task refresh loops")
				}
			}
			m.mu.Unlock()
		}
	}
}
