package domain

import "context"

// ConfigLoader produces the configuration snapshot for one invocation.
type ConfigLoader interface {
	Load(projectPath string, flags ConfigOverrides) (Config, error)
}

// Workspace reads documents and applies edits to them.
type Workspace interface {
	Open(path string) (*Document, error)
	// Apply replaces r in doc with text. It must refuse to write if the
	// document on disk no longer matches doc.Fingerprint.
	Apply(doc *Document, r Range, text string) error
}

// DiagnosticSource returns the known diagnostics for a document in source order.
type DiagnosticSource interface {
	Diagnostics(doc *Document) ([]Diagnostic, error)
}

// FixClient sends one fix request to the remote service.
type FixClient interface {
	Fix(ctx context.Context, cfg Config, req FixRequest) (*FixResponse, error)
}

// Prompter asks the user to pick one of choices.
type Prompter interface {
	Choose(ctx context.Context, message string, choices []Choice) (Choice, error)
}

// Presenter shows notices and the side-by-side diff.
type Presenter interface {
	Info(msg string)
	Success(msg string)
	Warn(msg string)
	Error(msg string)
	ShowDiff(filename, original, fixed string) error
}

// VersionControl reports whether a file has uncommitted changes.
type VersionControl interface {
	HasUncommittedChanges(path string) (bool, error)
}
