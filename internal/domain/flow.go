package domain

import "fmt"

// FlowState is a state of the fix flow.
type FlowState string

const (
	StateIdle                FlowState = "idle"
	StateAnalyzing           FlowState = "analyzing"
	StateAwaitingFixResponse FlowState = "awaiting_fix_response"
	StateDecisionPending     FlowState = "decision_pending"
	StateDiffShown           FlowState = "diff_shown"
	StateDecisionPending2    FlowState = "decision_pending_after_diff"
	StateApplied             FlowState = "applied"
	StateCancelled           FlowState = "cancelled"
	StateFailed              FlowState = "failed"
)

// IsTerminal reports whether no further transitions are possible.
func (s FlowState) IsTerminal() bool {
	return s == StateApplied || s == StateCancelled || s == StateFailed
}

// FlowEvent drives the fix flow.
type FlowEvent string

const (
	EventInvoke           FlowEvent = "invoke"
	EventRequestSent      FlowEvent = "request_sent"
	EventResponseReceived FlowEvent = "response_received"
	EventAutoApply        FlowEvent = "auto_apply"
	EventChooseApply      FlowEvent = "choose_apply"
	EventChooseShowDiff   FlowEvent = "choose_show_diff"
	EventChooseCancel     FlowEvent = "choose_cancel"
	EventDiffRendered     FlowEvent = "diff_rendered"
	EventFail             FlowEvent = "fail"
)

var transitions = map[FlowState]map[FlowEvent]FlowState{
	StateIdle: {
		EventInvoke: StateAnalyzing,
	},
	StateAnalyzing: {
		EventRequestSent: StateAwaitingFixResponse,
	},
	StateAwaitingFixResponse: {
		EventResponseReceived: StateDecisionPending,
	},
	StateDecisionPending: {
		EventAutoApply:      StateApplied,
		EventChooseApply:    StateApplied,
		EventChooseShowDiff: StateDiffShown,
		EventChooseCancel:   StateCancelled,
	},
	StateDiffShown: {
		EventDiffRendered: StateDecisionPending2,
	},
	StateDecisionPending2: {
		EventChooseApply:  StateApplied,
		EventChooseCancel: StateCancelled,
	},
}

// Flow is one fix flow instance. It is not safe for concurrent use; each
// invocation owns its own Flow.
type Flow struct {
	state FlowState
	path  []FlowState
}

// NewFlow returns a flow in the Idle state.
func NewFlow() *Flow {
	return &Flow{state: StateIdle, path: []FlowState{StateIdle}}
}

func (f *Flow) State() FlowState { return f.state }

// Path returns the states visited so far, starting with Idle.
func (f *Flow) Path() []FlowState {
	out := make([]FlowState, len(f.path))
	copy(out, f.path)
	return out
}

// Fire applies ev. Fail is accepted from any non-terminal state.
func (f *Flow) Fire(ev FlowEvent) error {
	if f.state.IsTerminal() {
		return fmt.Errorf("flow already finished in state %s (event %s)", f.state, ev)
	}
	next, ok := transitions[f.state][ev]
	if ev == EventFail {
		next, ok = StateFailed, true
	}
	if !ok {
		return fmt.Errorf("invalid transition from %s on %s", f.state, ev)
	}
	f.state = next
	f.path = append(f.path, next)
	return nil
}

// ChoiceEvent maps a user choice to its flow event.
func ChoiceEvent(c Choice) (FlowEvent, error) {
	switch c {
	case ChoiceApply:
		return EventChooseApply, nil
	case ChoiceShowDiff:
		return EventChooseShowDiff, nil
	case ChoiceCancel:
		return EventChooseCancel, nil
	default:
		return "", fmt.Errorf("unknown choice %q", c)
	}
}
