package poller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Benjamindaoson/agentic-delivery-os-sub001/pkg/types"
)

func TestSnapshot_GetBeforeFirstSet(t *testing.T) {
	var snap Snapshot[*types.TaskStatusDocument]

	value, at, ok := snap.Get()
	require.False(t, ok)
	require.Nil(t, value)
	require.True(t, at.IsZero())

	_, ok = snap.Age()
	require.False(t, ok)
}

func TestSnapshot_SetReplacesValue(t *testing.T) {
	var snap Snapshot[*types.TaskStatusDocument]

	snap.Set(&types.TaskStatusDocument{TaskID: "task-1", Status: "running"})
	snap.Set(&types.TaskStatusDocument{TaskID: "task-1", Status: "paused"})

	value, at, ok := snap.Get()
	require.True(t, ok)
	require.Equal(t, "paused", value.Status)
	require.WithinDuration(t, time.Now(), at, time.Second)

	age, ok := snap.Age()
	require.True(t, ok)
	require.Less(t, age, time.Second)
}

func TestSnapshot_NilValueCountsAsLoaded(t *testing.T) {
	var snap Snapshot[[]types.ToolExecution]

	snap.Set(nil)
	value, _, ok := snap.Get()
	require.True(t, ok)
	require.Nil(t, value)
}
