package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/fixhook/fixhook/internal/domain"
)

// FileName is the project-level configuration file.
const FileName = ".fixhook.yaml"

// Environment variables, applied above both files and below CLI flags.
const (
	EnvConfigDir   = "FIXHOOK_CONFIG_DIR"
	EnvEndpoint    = "FIXHOOK_ENDPOINT"
	EnvTimeoutMs   = "FIXHOOK_TIMEOUT_MS"
	EnvVerbose     = "FIXHOOK_VERBOSE"
	EnvDiffPreview = "FIXHOOK_DIFF_PREVIEW"
)

// Loader implements domain.ConfigLoader. Each Load reads every layer again
// and returns a fresh snapshot; nothing is cached between invocations.
type Loader struct {
	getenv func(string) string
}

var _ domain.ConfigLoader = (*Loader)(nil)

// New creates a Loader reading the process environment.
func New() *Loader { return &Loader{getenv: os.Getenv} }

// NewWithEnv creates a Loader with a custom environment lookup.
func NewWithEnv(getenv func(string) string) *Loader { return &Loader{getenv: getenv} }

// Load layers defaults, the user config.toml, <projectPath>/.fixhook.yaml,
// the environment and flags, in that order, then validates the result.
func (l *Loader) Load(projectPath string, flags domain.ConfigOverrides) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	user, err := l.loadUserFile()
	if err != nil {
		return domain.Config{}, err
	}
	cfg = cfg.Apply(user)

	project, err := loadProjectFile(projectPath)
	if err != nil {
		return domain.Config{}, err
	}
	cfg = cfg.Apply(project)

	env, err := l.fromEnv()
	if err != nil {
		return domain.Config{}, err
	}
	cfg = cfg.Apply(env).Apply(flags)

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

// Dir returns the user config directory.
// Resolution order: $FIXHOOK_CONFIG_DIR > $XDG_CONFIG_HOME/fixhook > ~/.config/fixhook
func (l *Loader) Dir() string {
	if dir := l.getenv(EnvConfigDir); dir != "" {
		return dir
	}
	if configHome := l.getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "fixhook")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "fixhook")
}

// UserFile returns the path of the user-level config.toml.
func (l *Loader) UserFile() string {
	dir := l.Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}

func (l *Loader) loadUserFile() (domain.ConfigOverrides, error) {
	var o domain.ConfigOverrides
	path := l.UserFile()
	if path == "" {
		return o, nil
	}
	if _, err := toml.DecodeFile(path, &o); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ConfigOverrides{}, nil
		}
		return domain.ConfigOverrides{}, domain.NewConfigError(fmt.Sprintf("parsing %s: %v", path, err), err)
	}
	return o, nil
}

func loadProjectFile(projectPath string) (domain.ConfigOverrides, error) {
	var o domain.ConfigOverrides
	data, err := os.ReadFile(filepath.Join(projectPath, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return o, nil
		}
		return o, domain.NewConfigError(fmt.Sprintf("reading %s: %v", FileName, err), err)
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return domain.ConfigOverrides{}, domain.NewConfigError(fmt.Sprintf("parsing %s: %v", FileName, err), err)
	}
	return o, nil
}

func (l *Loader) fromEnv() (domain.ConfigOverrides, error) {
	var o domain.ConfigOverrides
	if v := strings.TrimSpace(l.getenv(EnvEndpoint)); v != "" {
		o.Endpoint = &v
	}
	if v := strings.TrimSpace(l.getenv(EnvTimeoutMs)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return o, domain.NewConfigError(fmt.Sprintf("%s must be an integer, got %q", EnvTimeoutMs, v), err)
		}
		o.TimeoutMs = &n
	}
	for name, dst := range map[string]**bool{EnvVerbose: &o.Verbose, EnvDiffPreview: &o.DiffPreview} {
		v := strings.TrimSpace(l.getenv(name))
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return o, domain.NewConfigError(fmt.Sprintf("%s must be a boolean, got %q", name, v), err)
		}
		*dst = &b
	}
	return o, nil
}
