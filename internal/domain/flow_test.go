package domain_test

import (
	"testing"

	"github.com/fixhook/fixhook/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fire(t *testing.T, f *domain.Flow, events ...domain.FlowEvent) {
	t.Helper()
	for _, ev := range events {
		require.NoError(t, f.Fire(ev), "event %s", ev)
	}
}

func TestFlow_AutoApply(t *testing.T) {
	f := domain.NewFlow()
	fire(t, f, domain.EventInvoke, domain.EventRequestSent, domain.EventResponseReceived, domain.EventAutoApply)
	assert.Equal(t, domain.StateApplied, f.State())
	assert.True(t, f.State().IsTerminal())
}

func TestFlow_ShowDiffThenCancel(t *testing.T) {
	f := domain.NewFlow()
	fire(t, f,
		domain.EventInvoke, domain.EventRequestSent, domain.EventResponseReceived,
		domain.EventChooseShowDiff, domain.EventDiffRendered, domain.EventChooseCancel,
	)
	assert.Equal(t, []domain.FlowState{
		domain.StateIdle,
		domain.StateAnalyzing,
		domain.StateAwaitingFixResponse,
		domain.StateDecisionPending,
		domain.StateDiffShown,
		domain.StateDecisionPending2,
		domain.StateCancelled,
	}, f.Path())
}

func TestFlow_NoSecondDiffAfterDiff(t *testing.T) {
	f := domain.NewFlow()
	fire(t, f,
		domain.EventInvoke, domain.EventRequestSent, domain.EventResponseReceived,
		domain.EventChooseShowDiff, domain.EventDiffRendered,
	)
	assert.Error(t, f.Fire(domain.EventChooseShowDiff))
	assert.Equal(t, domain.StateDecisionPending2, f.State())
}

func TestFlow_FailFromAnyActiveState(t *testing.T) {
	f := domain.NewFlow()
	fire(t, f, domain.EventInvoke, domain.EventRequestSent, domain.EventFail)
	assert.Equal(t, domain.StateFailed, f.State())
}

func TestFlow_TerminalRejectsEvents(t *testing.T) {
	f := domain.NewFlow()
	fire(t, f, domain.EventInvoke, domain.EventRequestSent, domain.EventResponseReceived, domain.EventChooseCancel)
	assert.Error(t, f.Fire(domain.EventFail))
	assert.Error(t, f.Fire(domain.EventChooseApply))
}

func TestFlow_CannotSkipRequest(t *testing.T) {
	f := domain.NewFlow()
	fire(t, f, domain.EventInvoke)
	assert.Error(t, f.Fire(domain.EventChooseApply))
}

func TestChoiceEvent(t *testing.T) {
	ev, err := domain.ChoiceEvent(domain.ChoiceShowDiff)
	require.NoError(t, err)
	assert.Equal(t, domain.EventChooseShowDiff, ev)

	_, err = domain.ChoiceEvent("later")
	assert.Error(t, err)
}
