// Package evidence joins entries of the flat event log to their
// authoritative records inside the trace document.
//
// The two documents are fetched independently and may be transiently
// inconsistent, so this is a best-effort join: a missing structured record
// degrades to raw-event evidence instead of failing the lookup.
package evidence

import (
	"fmt"

	"github.com/Benjamindaoson/agentic-delivery-os-sub001/pkg/types"
)

// Record is the located evidence for one selected event. TraceLocation names
// where in the trace document the matched record lives, for example
// "trace.governance_decisions[0]"; the fallback form "trace.events[i]" marks
// a degraded result whose Data is the raw event payload.
type Record struct {
	EventID        string `json:"event_id"`
	SequenceNumber int    `json:"sequence_number"`
	TraceLocation  string `json:"trace_location"`
	Data           any    `json:"data"`
}

// Degraded reports whether no structured trace record was found and Data is
// the raw event payload. Callers must distinguish this from a nil Record,
// which means nothing was selected at all.
func (r *Record) Degraded() bool {
	return r != nil && len(r.TraceLocation) > len("trace.events[") &&
		r.TraceLocation[:len("trace.events[")] == "trace.events["
}

// Resolve locates the event selected by eventID (canonical key) or
// sequenceNumber (1-based positional fallback for events lacking an id) and
// correlates it to a record in the trace document.
//
// An empty eventID means nothing is selected and yields nil. An event that
// matches neither predicate also yields nil. Resolve performs no I/O and
// never fails hard: when the trace holds no structured counterpart the
// result carries the raw event payload at location "trace.events[seq-1]".
func Resolve(eventID string, sequenceNumber int, events []types.Event, trace *types.TraceDocument) *Record {
	if eventID == "" {
		return nil
	}

	matched := -1
	for i := range events {
		if events[i].EventID == eventID || i+1 == sequenceNumber {
			matched = i
			break
		}
	}
	if matched == -1 {
		return nil
	}
	event := &events[matched]

	// The input sequence number is echoed back when supplied; events
	// selected purely by id fall back to their position in the log.
	seq := sequenceNumber
	if seq <= 0 {
		seq = matched + 1
	}

	if location, data, ok := correlate(event, trace); ok {
		return &Record{
			EventID:        eventID,
			SequenceNumber: seq,
			TraceLocation:  location,
			Data:           data,
		}
	}

	var data any
	if len(event.RawPayload) > 0 {
		data = event.RawPayload
	} else {
		data = event
	}
	return &Record{
		EventID:        eventID,
		SequenceNumber: seq,
		TraceLocation:  fmt.Sprintf("trace.events[%d]", seq-1),
		Data:           data,
	}
}

// correlate finds the first structured trace record keyed by the event's
// business field. Agent names and checkpoints are not guaranteed unique;
// first match in document order wins.
func correlate(event *types.Event, trace *types.TraceDocument) (string, any, bool) {
	if trace == nil {
		return "", nil, false
	}

	switch event.Type {
	case types.EventTypeAgentReport, types.EventTypeAgentExecution:
		agent := event.AgentName()
		if agent == "" {
			return "", nil, false
		}
		for i := range trace.AgentExecutions {
			if trace.AgentExecutions[i].Agent == agent {
				return fmt.Sprintf("trace.agent_executions[%d]", i), trace.AgentExecutions[i], true
			}
		}
	case types.EventTypeGovernanceDecision:
		checkpoint := event.Checkpoint()
		if checkpoint == "" {
			return "", nil, false
		}
		for i := range trace.GovernanceDecisions {
			if trace.GovernanceDecisions[i].Checkpoint == checkpoint {
				return fmt.Sprintf("trace.governance_decisions[%d]", i), trace.GovernanceDecisions[i], true
			}
		}
	}

	return "", nil, false
}
