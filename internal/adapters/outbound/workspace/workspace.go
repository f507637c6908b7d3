package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/google/renameio"

	"github.com/fixhook/fixhook/internal/domain"
)

// FileWorkspace implements domain.Workspace on the local filesystem.
type FileWorkspace struct{}

var _ domain.Workspace = (*FileWorkspace)(nil)

func New() *FileWorkspace { return &FileWorkspace{} }

// Fingerprint is the git blob hash of data.
func Fingerprint(data []byte) string {
	return plumbing.ComputeHash(plumbing.BlobObject, data).String()
}

// Open reads path into a document snapshot. The path is made absolute.
func (w *FileWorkspace) Open(path string) (*domain.Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewUserError(fmt.Sprintf("no such file: %s", path))
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, domain.NewUserError(fmt.Sprintf("%s is a directory, not a file", path))
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &domain.Document{
		Path:        abs,
		LanguageID:  domain.DetectLanguageID(abs),
		Text:        string(data),
		Fingerprint: Fingerprint(data),
	}, nil
}

// Apply re-reads the file and refuses to write unless its fingerprint still
// matches doc. The write is atomic and keeps the file mode. Symlinks are
// followed so the link survives and its target receives the edit.
func (w *FileWorkspace) Apply(doc *domain.Document, r domain.Range, text string) error {
	target, err := filepath.EvalSymlinks(doc.Path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", doc.Path, err)
	}
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat %s: %w", doc.Path, err)
	}
	current, err := os.ReadFile(target)
	if err != nil {
		return fmt.Errorf("re-reading %s: %w", doc.Path, err)
	}
	if Fingerprint(current) != doc.Fingerprint {
		return domain.NewStaleDocumentError(doc.Path)
	}

	updated, err := doc.Replace(r, text)
	if err != nil {
		return err
	}
	if err := renameio.WriteFile(target, []byte(updated), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", doc.Path, err)
	}
	return nil
}
