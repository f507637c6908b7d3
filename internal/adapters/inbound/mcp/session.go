package mcp

import (
	"context"
	"sync"

	"github.com/fixhook/fixhook/internal/domain"
)

// fixedPrompter answers every prompt with the same choice. Agents decide
// up front whether a call previews or applies.
type fixedPrompter struct {
	choice domain.Choice
}

func (p fixedPrompter) Choose(_ context.Context, _ string, choices []domain.Choice) (domain.Choice, error) {
	for _, c := range choices {
		if c == p.choice {
			return c, nil
		}
	}
	return domain.ChoiceCancel, nil
}

// collectingPresenter keeps notices so they can be returned in the tool result.
type collectingPresenter struct {
	mu       sync.Mutex
	messages []string
}

func (p *collectingPresenter) Info(msg string)    { p.add(msg) }
func (p *collectingPresenter) Success(msg string) { p.add(msg) }
func (p *collectingPresenter) Warn(msg string)    { p.add(msg) }
func (p *collectingPresenter) Error(msg string)   { p.add(msg) }

func (p *collectingPresenter) ShowDiff(_, _, _ string) error { return nil }

func (p *collectingPresenter) add(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
}

func (p *collectingPresenter) Messages() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.messages...)
}
