package gitinfo

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"github.com/fixhook/fixhook/internal/domain"
)

// ErrNotARepository is returned when path is not inside a git work tree.
var ErrNotARepository = errors.New("not inside a git repository")

// GitInfoAdapter implements domain.VersionControl using go-git.
type GitInfoAdapter struct{}

var _ domain.VersionControl = (*GitInfoAdapter)(nil)

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

// HasUncommittedChanges reports whether path differs from HEAD in the index
// or work tree. Untracked files count as uncommitted.
func (g *GitInfoAdapter) HasUncommittedChanges(path string) (bool, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("resolving path: %w", err)
	}
	repo, err := open(filepath.Dir(abs))
	if err != nil {
		return false, err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("opening worktree: %w", err)
	}
	root, err := filepath.EvalSymlinks(wt.Filesystem.Root())
	if err != nil {
		return false, fmt.Errorf("resolving worktree root: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return false, fmt.Errorf("resolving %s: %w", path, err)
	}
	rel, err := filepath.Rel(root, resolved)
	if err != nil {
		return false, fmt.Errorf("relating %s to worktree: %w", path, err)
	}

	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("getting status: %w", err)
	}
	fs, ok := status[filepath.ToSlash(rel)]
	if !ok {
		return false, nil
	}
	return fs.Worktree != git.Unmodified || fs.Staging != git.Unmodified, nil
}

func open(dir string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, ErrNotARepository
		}
		return nil, fmt.Errorf("opening git repo: %w", err)
	}
	return repo, nil
}
