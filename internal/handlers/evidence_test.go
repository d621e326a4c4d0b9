package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Benjamindaoson/agentic-delivery-os-sub001/pkg/types"
)

func evidenceRouter(provider *fakeViewProvider) *gin.Engine {
	router := gin.New()
	router.GET("/api/ui/v1/tasks/:task_id/evidence", GetTaskEvidenceHandler(provider))
	return router
}

func TestGetTaskEvidenceHandler_NoSelectionYieldsNoContent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider := newFakeViewProvider()
	router := evidenceRouter(provider)

	req := httptest.NewRequest(http.MethodGet, "/api/ui/v1/tasks/task-1/evidence", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusNoContent, resp.Code)
	require.Empty(t, resp.Body.String())
}

func TestGetTaskEvidenceHandler_ResolvesGovernanceDecision(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var log types.EventLogDocument
	require.NoError(t, json.Unmarshal([]byte(`{"events":[
		{"type":"governance_decision","event_id":"e1","payload":{"checkpoint":"cp1"}}
	]}`), &log))

	provider := newFakeViewProvider()
	provider.views.Events.Set(&log)
	provider.views.Trace.Set(&types.TraceDocument{
		GovernanceDecisions: []types.GovernanceDecision{
			{Checkpoint: "cp1", Reasoning: "paused for missing input"},
		},
	})

	router := evidenceRouter(provider)

	req := httptest.NewRequest(http.MethodGet, "/api/ui/v1/tasks/task-1/evidence?event_id=e1&sequence=1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var payload EvidenceResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	require.Equal(t, "task-1", payload.TaskID)
	require.False(t, payload.Degraded)
	require.NotNil(t, payload.Record)
	require.Equal(t, "trace.governance_decisions[0]", payload.Record.TraceLocation)
	require.Equal(t, 1, payload.Record.SequenceNumber)
	require.False(t, payload.EventsSnapshot.IsZero())
	require.False(t, payload.TraceSnapshot.IsZero())
}

func TestGetTaskEvidenceHandler_DegradesWhenTraceNotLoaded(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var log types.EventLogDocument
	require.NoError(t, json.Unmarshal([]byte(`{"events":[
		{"type":"agent_report","event_id":"e1","payload":{"agent_name":"coder"}}
	]}`), &log))

	provider := newFakeViewProvider()
	provider.views.Events.Set(&log)
	// Trace snapshot intentionally left unloaded.

	router := evidenceRouter(provider)

	req := httptest.NewRequest(http.MethodGet, "/api/ui/v1/tasks/task-1/evidence?event_id=e1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var payload EvidenceResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	require.True(t, payload.Degraded)
	require.Equal(t, "trace.events[0]", payload.Record.TraceLocation)
	require.True(t, payload.TraceSnapshot.IsZero())
}

func TestGetTaskEvidenceHandler_UnknownEventYields404(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider := newFakeViewProvider()
	provider.views.Events.Set(&types.EventLogDocument{})

	router := evidenceRouter(provider)

	req := httptest.NewRequest(http.MethodGet, "/api/ui/v1/tasks/task-1/evidence?event_id=nope", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetTaskEvidenceHandler_InvalidSequence(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider := newFakeViewProvider()
	provider.views.Events.Set(&types.EventLogDocument{})

	router := evidenceRouter(provider)

	for _, sequence := range []string{"0", "-3", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/ui/v1/tasks/task-1/evidence?event_id=e1&sequence="+sequence, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusBadRequest, resp.Code, "sequence %q", sequence)
	}
}

func TestGetTaskEvidenceHandler_EventsNotLoadedYet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider := newFakeViewProvider()
	router := evidenceRouter(provider)

	req := httptest.NewRequest(http.MethodGet, "/api/ui/v1/tasks/task-1/evidence?event_id=e1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusServiceUnavailable, resp.Code)
}
