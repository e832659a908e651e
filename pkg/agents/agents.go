// Package agents defines the registry of supported agent tools. Each agent
// stores skills under its own directory convention; the registry supplies
// those conventions as an immutable set of bindings injected into the skill
// lifecycle manager.
package agents

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Binding describes how a single agent tool stores its skills.
type Binding struct {
	// Name identifies the agent and doubles as its dot-directory name
	// (".claude", ".cursor", ...).
	Name string `yaml:"name" mapstructure:"name"`

	// SkillsDir is the skills subpath under the scope root. Empty means the
	// conventional ".<name>/skills".
	SkillsDir string `yaml:"skills_dir,omitempty" mapstructure:"skills_dir"`

	// ConfigDir is the agent's own configuration root, used as the base for
	// globally scoped skills. Empty means the user home directory. A leading
	// "~" is expanded to the home directory.
	ConfigDir string `yaml:"config_dir,omitempty" mapstructure:"config_dir"`
}

// SkillsPath returns the skills subpath for the binding, falling back to the
// ".<name>/skills" convention when none is configured.
func (b Binding) SkillsPath() string {
	if b.SkillsDir != "" {
		return filepath.FromSlash(b.SkillsDir)
	}
	return filepath.Join("."+b.Name, "skills")
}

// Validate checks that the binding is usable as a filesystem convention.
func (b Binding) Validate() error {
	if b.Name == "" {
		return errors.New("agent name must not be empty")
	}
	if strings.ContainsAny(b.Name, `/\`) {
		return errors.Errorf("agent name %q must not contain path separators", b.Name)
	}
	return nil
}

// Default returns the built-in registry of supported agents.
func Default() []Binding {
	return []Binding{
		{Name: "claude"},
		{Name: "cursor"},
		{Name: "windsurf"},
		{Name: "copilot"},
		{Name: "gemini"},
		{Name: "codex"},
	}
}

type registryFile struct {
	Agents []Binding `yaml:"agents"`
}

// LoadFile reads agent bindings from a YAML registry file.
func LoadFile(path string) ([]Binding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read agents file")
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "failed to parse agents file")
	}
	if len(file.Agents) == 0 {
		return nil, errors.Errorf("agents file %s defines no agents", path)
	}

	for _, b := range file.Agents {
		if err := b.Validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid agent binding in %s", path)
		}
	}

	return file.Agents, nil
}

// Merge overlays override bindings on top of a base registry. An override
// with the same name replaces the base binding in place; new names are
// appended in order.
func Merge(base, overrides []Binding) []Binding {
	merged := make([]Binding, len(base))
	copy(merged, base)

	index := make(map[string]int, len(merged))
	for i, b := range merged {
		index[b.Name] = i
	}

	for _, o := range overrides {
		if i, ok := index[o.Name]; ok {
			merged[i] = o
			continue
		}
		index[o.Name] = len(merged)
		merged = append(merged, o)
	}

	return merged
}
