package skills

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/skillsync-cli/skillsync/pkg/agents"
)

// Resolver performs read-only existence checks, mapping a skill name to the
// per-agent SKILL.md files that currently exist on disk.
type Resolver struct {
	bindings   []agents.Binding
	projectDir string
	homeDir    string
}

// NewResolver creates a resolver over the given agent bindings and scope
// roots.
func NewResolver(bindings []agents.Binding, projectDir, homeDir string) *Resolver {
	return &Resolver{
		bindings:   bindings,
		projectDir: projectDir,
		homeDir:    homeDir,
	}
}

// BaseRoot returns the storage root for a binding under the given scope.
// Project scope always resolves to the project directory; global scope
// resolves to the binding's config dir, falling back to the home directory.
func (r *Resolver) BaseRoot(b agents.Binding, scope Scope) string {
	if scope == ScopeProject {
		return r.projectDir
	}
	if b.ConfigDir != "" {
		return r.expandPath(b.ConfigDir)
	}
	return r.homeDir
}

// SkillDir returns the directory a skill occupies for a binding.
func (r *Resolver) SkillDir(b agents.Binding, name string, scope Scope) string {
	return filepath.Join(r.BaseRoot(b, scope), b.SkillsPath(), name)
}

// SkillFile returns the expected SKILL.md path for a skill under a binding.
func (r *Resolver) SkillFile(b agents.Binding, name string, scope Scope) string {
	return filepath.Join(r.SkillDir(b, name, scope), SkillFileName)
}

// Resolve maps each agent that currently stores the named skill to its
// SKILL.md path. The mapping is empty when no agent has a matching file.
func (r *Resolver) Resolve(name string, scope Scope) map[string]string {
	found := make(map[string]string)

	for _, b := range r.bindings {
		path := r.SkillFile(b, name, scope)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			found[b.Name] = path
		}
	}

	return found
}

// expandPath resolves a configured directory to an absolute path, expanding a
// leading "~" to the home directory.
func (r *Resolver) expandPath(path string) string {
	if path == "~" {
		return r.homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(r.homeDir, path[2:])
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
