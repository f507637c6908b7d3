package application

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fixhook/fixhook/internal/domain"
)

// FixService runs one fix flow per invocation:
// resolve target → collect diagnostics → request fix → decide → apply.
type FixService struct {
	configs     domain.ConfigLoader
	workspace   domain.Workspace
	diagnostics domain.DiagnosticSource
	client      domain.FixClient
	prompter    domain.Prompter
	presenter   domain.Presenter
	vcs         domain.VersionControl
	logger      zerolog.Logger
}

// FixServiceOption configures optional collaborators.
type FixServiceOption func(*FixService)

// WithDiagnostics sets where diagnostics come from. Without it none are sent.
func WithDiagnostics(src domain.DiagnosticSource) FixServiceOption {
	return func(s *FixService) { s.diagnostics = src }
}

// WithVersionControl enables the uncommitted-changes warning.
func WithVersionControl(vc domain.VersionControl) FixServiceOption {
	return func(s *FixService) { s.vcs = vc }
}

// WithLogger sets the base logger. Its level is lowered to debug per
// invocation when the snapshot has verbose set.
func WithLogger(l zerolog.Logger) FixServiceOption {
	return func(s *FixService) { s.logger = l }
}

func NewFixService(
	configs domain.ConfigLoader,
	workspace domain.Workspace,
	client domain.FixClient,
	prompter domain.Prompter,
	presenter domain.Presenter,
	opts ...FixServiceOption,
) *FixService {
	s := &FixService{
		configs:   configs,
		workspace: workspace,
		client:    client,
		prompter:  prompter,
		presenter: presenter,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FixInvocation describes one user-triggered fix.
type FixInvocation struct {
	ProjectPath string
	File        string
	Scope       domain.Scope
	Selection   *domain.Selection
	// Language overrides extension-based detection when set.
	Language string
	Flags    domain.ConfigOverrides
}

// Run executes the flow. Every failure is logged and reported through the
// presenter once, and the outcome records the Failed state. The document is
// only written after the user (or the disabled preview) accepts the fix.
func (s *FixService) Run(ctx context.Context, inv FixInvocation) (*domain.FixOutcome, error) {
	flow := domain.NewFlow()
	outcome := &domain.FixOutcome{File: inv.File}

	log := s.logger.Level(zerolog.WarnLevel)
	err := s.run(ctx, inv, flow, outcome, &log)

	outcome.State = flow.State()
	if err != nil {
		if !flow.State().IsTerminal() {
			_ = flow.Fire(domain.EventFail)
		}
		outcome.State = flow.State()
		log.Error().Err(err).
			Str("kind", string(domain.KindOf(err))).
			Str("file", inv.File).
			Msg("code fix failed")
		s.presenter.Error("Code fix failed: " + err.Error())
	}
	outcome.Path = flow.Path()
	return outcome, err
}

func (s *FixService) run(ctx context.Context, inv FixInvocation, flow *domain.Flow, outcome *domain.FixOutcome, log *zerolog.Logger) error {
	cfg, err := s.configs.Load(inv.ProjectPath, inv.Flags)
	if err != nil {
		return err
	}
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return domain.NewMissingEndpointError()
	}
	if cfg.Verbose {
		*log = s.logger.Level(zerolog.DebugLevel)
	}

	if err := flow.Fire(domain.EventInvoke); err != nil {
		return err
	}

	doc, err := s.workspace.Open(inv.File)
	if err != nil {
		return err
	}
	if inv.Language != "" {
		doc.LanguageID = inv.Language
	}
	outcome.File = doc.Path

	target, err := ResolveTarget(doc, inv.Scope, inv.Selection)
	if err != nil {
		return err
	}
	outcome.Range = target.Range
	outcome.Original = target.Text

	s.warnIfDirty(doc.Path, log)

	problems, err := s.collectProblems(doc)
	if err != nil {
		return err
	}

	req := domain.FixRequest{
		Code:     target.Text,
		Language: doc.LanguageID,
		Filename: doc.Path,
		Problems: problems,
	}
	log.Debug().
		Str("endpoint", cfg.Endpoint).
		Str("language", req.Language).
		Str("file", req.Filename).
		Int("problems", len(problems)).
		Int("code_bytes", len(req.Code)).
		Msg("sending fix request")

	if err := flow.Fire(domain.EventRequestSent); err != nil {
		return err
	}
	resp, err := s.client.Fix(ctx, cfg, req)
	if err != nil {
		return err
	}
	outcome.Response = resp
	if err := flow.Fire(domain.EventResponseReceived); err != nil {
		return err
	}
	log.Debug().
		Int("fixed_bytes", len(resp.FixedCode)).
		Str("explanation", resp.Explanation).
		Msg("fix received")

	return s.decide(ctx, cfg, flow, target, resp)
}

func (s *FixService) decide(ctx context.Context, cfg domain.Config, flow *domain.Flow, target *domain.Target, resp *domain.FixResponse) error {
	if !cfg.DiffPreview {
		return s.apply(flow, domain.EventAutoApply, target, resp)
	}

	ev, err := s.choose(ctx, readyMessage(target, resp),
		domain.ChoiceApply, domain.ChoiceShowDiff, domain.ChoiceCancel)
	if err != nil {
		return err
	}

	switch ev {
	case domain.EventChooseApply:
		return s.apply(flow, ev, target, resp)
	case domain.EventChooseShowDiff:
		if err := flow.Fire(ev); err != nil {
			return err
		}
		if err := s.presenter.ShowDiff(target.Document.Path, target.Text, resp.FixedCode); err != nil {
			return fmt.Errorf("showing diff: %w", err)
		}
		if err := flow.Fire(domain.EventDiffRendered); err != nil {
			return err
		}
		return s.confirmAfterDiff(ctx, flow, target, resp)
	default:
		return s.cancel(flow)
	}
}

func (s *FixService) confirmAfterDiff(ctx context.Context, flow *domain.Flow, target *domain.Target, resp *domain.FixResponse) error {
	ev, err := s.choose(ctx, "Apply this fix?", domain.ChoiceApply, domain.ChoiceCancel)
	if err != nil {
		return err
	}
	if ev == domain.EventChooseApply {
		return s.apply(flow, ev, target, resp)
	}
	return s.cancel(flow)
}

// choose prompts and maps the answer to a flow event. Answers outside the
// offered choices are errors, not cancellations.
func (s *FixService) choose(ctx context.Context, msg string, choices ...domain.Choice) (domain.FlowEvent, error) {
	choice, err := s.prompter.Choose(ctx, msg, choices)
	if err != nil {
		return "", fmt.Errorf("reading decision: %w", err)
	}
	if !slices.Contains(choices, choice) {
		return "", fmt.Errorf("choice %q was not offered", choice)
	}
	return domain.ChoiceEvent(choice)
}

func (s *FixService) apply(flow *domain.Flow, ev domain.FlowEvent, target *domain.Target, resp *domain.FixResponse) error {
	if err := s.workspace.Apply(target.Document, target.Range, resp.FixedCode); err != nil {
		return err
	}
	if err := flow.Fire(ev); err != nil {
		return err
	}
	s.presenter.Success(successMessage(resp))
	return nil
}

func (s *FixService) cancel(flow *domain.Flow) error {
	if err := flow.Fire(domain.EventChooseCancel); err != nil {
		return err
	}
	s.presenter.Info("Fix cancelled. No changes were made.")
	return nil
}

func (s *FixService) collectProblems(doc *domain.Document) ([]string, error) {
	if s.diagnostics == nil {
		return []string{}, nil
	}
	diags, err := s.diagnostics.Diagnostics(doc)
	if err != nil {
		return nil, fmt.Errorf("reading diagnostics: %w", err)
	}
	return domain.FormatDiagnostics(diags), nil
}

func (s *FixService) warnIfDirty(path string, log *zerolog.Logger) {
	if s.vcs == nil {
		return
	}
	dirty, err := s.vcs.HasUncommittedChanges(path)
	if err != nil {
		log.Debug().Err(err).Str("file", path).Msg("git status unavailable")
		return
	}
	if dirty {
		s.presenter.Warn(fmt.Sprintf("%s has uncommitted changes; commit or stash them if you want to be able to revert this fix with git.", filepath.Base(path)))
	}
}

func readyMessage(target *domain.Target, resp *domain.FixResponse) string {
	msg := fmt.Sprintf("Fix ready for %s", filepath.Base(target.Document.Path))
	if resp.Explanation != "" {
		msg += ": " + resp.Explanation
	}
	return msg
}

func successMessage(resp *domain.FixResponse) string {
	msg := "Code fixed successfully."
	if resp.Explanation != "" {
		msg += " " + resp.Explanation
	}
	if resp.Confidence != nil {
		msg += fmt.Sprintf(" (confidence: %s)", formatConfidence(*resp.Confidence))
	}
	return msg
}

// formatConfidence accepts both 0..1 and 0..100 scales.
func formatConfidence(c float64) string {
	if c <= 1 {
		c *= 100
	}
	return fmt.Sprintf("%.0f%%", c)
}
