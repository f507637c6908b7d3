package application_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/fixhook/fixhook/internal/domain"
)

type staticConfig struct {
	cfg domain.Config
	err error
}

func (c staticConfig) Load(_ string, flags domain.ConfigOverrides) (domain.Config, error) {
	if c.err != nil {
		return domain.Config{}, c.err
	}
	return c.cfg.Apply(flags), nil
}

// memWorkspace keeps documents in memory. Bumping a file's revision
// simulates an edit made while the fix request is in flight.
type memWorkspace struct {
	files    map[string]string
	revision map[string]int
	applied  int
}

func newMemWorkspace(files map[string]string) *memWorkspace {
	return &memWorkspace{files: files, revision: map[string]int{}}
}

func (w *memWorkspace) Open(path string) (*domain.Document, error) {
	text, ok := w.files[path]
	if !ok {
		return nil, fmt.Errorf("opening %s: file does not exist", path)
	}
	return &domain.Document{
		Path:        path,
		LanguageID:  domain.DetectLanguageID(path),
		Text:        text,
		Fingerprint: fmt.Sprintf("%s@%d", path, w.revision[path]),
	}, nil
}

func (w *memWorkspace) Apply(doc *domain.Document, r domain.Range, text string) error {
	if doc.Fingerprint != fmt.Sprintf("%s@%d", doc.Path, w.revision[doc.Path]) {
		return domain.NewStaleDocumentError(doc.Path)
	}
	current := &domain.Document{Path: doc.Path, Text: w.files[doc.Path]}
	updated, err := current.Replace(r, text)
	if err != nil {
		return err
	}
	w.files[doc.Path] = updated
	w.revision[doc.Path]++
	w.applied++
	return nil
}

type fakeClient struct {
	resp     *domain.FixResponse
	err      error
	requests []domain.FixRequest
	onFix    func()
}

func (c *fakeClient) Fix(_ context.Context, cfg domain.Config, req domain.FixRequest) (*domain.FixResponse, error) {
	if cfg.Endpoint == "" {
		return nil, domain.NewConfigError("no endpoint configured", nil)
	}
	c.requests = append(c.requests, req)
	if c.onFix != nil {
		c.onFix()
	}
	return c.resp, c.err
}

// scriptedPrompter answers prompts in order and records what it was asked.
type scriptedPrompter struct {
	answers []domain.Choice
	asked   [][]domain.Choice
}

func (p *scriptedPrompter) Choose(_ context.Context, _ string, choices []domain.Choice) (domain.Choice, error) {
	p.asked = append(p.asked, choices)
	if len(p.answers) == 0 {
		return "", errors.New("unexpected prompt")
	}
	c := p.answers[0]
	p.answers = p.answers[1:]
	return c, nil
}

type recordingPresenter struct {
	infos     []string
	successes []string
	warns     []string
	errs      []string
	diffs     int
}

func (p *recordingPresenter) Info(msg string)    { p.infos = append(p.infos, msg) }
func (p *recordingPresenter) Success(msg string) { p.successes = append(p.successes, msg) }
func (p *recordingPresenter) Warn(msg string)    { p.warns = append(p.warns, msg) }
func (p *recordingPresenter) Error(msg string)   { p.errs = append(p.errs, msg) }
func (p *recordingPresenter) ShowDiff(_, _, _ string) error {
	p.diffs++
	return nil
}

type staticDiagnostics []domain.Diagnostic

func (d staticDiagnostics) Diagnostics(_ *domain.Document) ([]domain.Diagnostic, error) {
	return d, nil
}

type dirtyVCS bool

func (v dirtyVCS) HasUncommittedChanges(_ string) (bool, error) { return bool(v), nil }
