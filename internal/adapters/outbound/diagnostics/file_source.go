package diagnostics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fixhook/fixhook/internal/domain"
)

// FileSource implements domain.DiagnosticSource by reading LSP-shaped JSON.
// The input is either an array of diagnostics or a publishDiagnostics
// params object {"uri": ..., "diagnostics": [...]}.
type FileSource struct {
	path  string
	stdin io.Reader
}

var _ domain.DiagnosticSource = (*FileSource)(nil)

// NewFileSource reads from path; "-" reads stdin.
func NewFileSource(path string, stdin io.Reader) *FileSource {
	return &FileSource{path: path, stdin: stdin}
}

type publishParams struct {
	URI         string              `json:"uri"`
	Diagnostics []domain.Diagnostic `json:"diagnostics"`
}

// Diagnostics returns the diagnostics in file order. The document is not
// consulted: the file is assumed to describe it.
func (s *FileSource) Diagnostics(_ *domain.Document) ([]domain.Diagnostic, error) {
	data, err := s.read()
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func (s *FileSource) read() ([]byte, error) {
	if s.path == "-" {
		data, err := io.ReadAll(s.stdin)
		if err != nil {
			return nil, fmt.Errorf("reading diagnostics from stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewUserError(fmt.Sprintf("diagnostics file %s does not exist", s.path))
		}
		return nil, fmt.Errorf("reading diagnostics: %w", err)
	}
	return data, nil
}

// Parse decodes either accepted diagnostics shape. Blank input means none.
func Parse(data []byte) ([]domain.Diagnostic, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var diags []domain.Diagnostic
		if err := json.Unmarshal(trimmed, &diags); err != nil {
			return nil, domain.NewUserError(fmt.Sprintf("invalid diagnostics JSON: %v", err))
		}
		return diags, nil
	}

	var params publishParams
	if err := json.Unmarshal(trimmed, &params); err != nil {
		return nil, domain.NewUserError(fmt.Sprintf("invalid diagnostics JSON: %v", err))
	}
	return params.Diagnostics, nil
}
