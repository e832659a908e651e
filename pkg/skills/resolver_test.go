package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsync-cli/skillsync/pkg/agents"
)

func TestResolverPaths(t *testing.T) {
	projectDir := t.TempDir()
	homeDir := t.TempDir()
	configDir := t.TempDir()

	bindings := []agents.Binding{
		{Name: "claude"},
		{Name: "cursor", ConfigDir: configDir},
		{Name: "custom", SkillsDir: "tools/custom/skills"},
	}
	r := NewResolver(bindings, projectDir, homeDir)

	t.Run("project scope roots at the project directory", func(t *testing.T) {
		assert.Equal(t,
			filepath.Join(projectDir, ".claude", "skills", "deploy-helper", "SKILL.md"),
			r.SkillFile(bindings[0], "deploy-helper", ScopeProject))
	})

	t.Run("global scope uses the binding config dir", func(t *testing.T) {
		assert.Equal(t,
			filepath.Join(configDir, ".cursor", "skills", "deploy-helper", "SKILL.md"),
			r.SkillFile(bindings[1], "deploy-helper", ScopeGlobal))
	})

	t.Run("global scope falls back to home", func(t *testing.T) {
		assert.Equal(t,
			filepath.Join(homeDir, ".claude", "skills", "deploy-helper", "SKILL.md"),
			r.SkillFile(bindings[0], "deploy-helper", ScopeGlobal))
	})

	t.Run("custom skills subpath replaces the dot convention", func(t *testing.T) {
		assert.Equal(t,
			filepath.Join(projectDir, "tools", "custom", "skills", "deploy-helper", "SKILL.md"),
			r.SkillFile(bindings[2], "deploy-helper", ScopeProject))
	})

	t.Run("tilde config dirs expand under home", func(t *testing.T) {
		b := agents.Binding{Name: "claude", ConfigDir: "~/claude-home"}
		assert.Equal(t, filepath.Join(homeDir, "claude-home"), r.BaseRoot(b, ScopeGlobal))

		b.ConfigDir = "~"
		assert.Equal(t, homeDir, r.BaseRoot(b, ScopeGlobal))
	})
}

func TestResolve(t *testing.T) {
	projectDir := t.TempDir()
	homeDir := t.TempDir()

	bindings := []agents.Binding{
		{Name: "claude"},
		{Name: "cursor"},
	}
	r := NewResolver(bindings, projectDir, homeDir)

	t.Run("empty when nothing exists", func(t *testing.T) {
		assert.Empty(t, r.Resolve("deploy-helper", ScopeProject))
	})

	t.Run("reports only agents with an actual file", func(t *testing.T) {
		claudeFile := r.SkillFile(bindings[0], "deploy-helper", ScopeProject)
		require.NoError(t, os.MkdirAll(filepath.Dir(claudeFile), 0o755))
		require.NoError(t, os.WriteFile(claudeFile, []byte("stub"), 0o644))

		// Directory without a SKILL.md does not count.
		require.NoError(t, os.MkdirAll(filepath.Dir(r.SkillFile(bindings[1], "deploy-helper", ScopeProject)), 0o755))

		found := r.Resolve("deploy-helper", ScopeProject)
		assert.Equal(t, map[string]string{"claude": claudeFile}, found)
	})

	t.Run("a directory named SKILL.md does not count", func(t *testing.T) {
		path := r.SkillFile(bindings[1], "odd-skill", ScopeProject)
		require.NoError(t, os.MkdirAll(path, 0o755))

		assert.Empty(t, r.Resolve("odd-skill", ScopeProject))
	})

	t.Run("scopes are independent", func(t *testing.T) {
		globalFile := r.SkillFile(bindings[0], "global-only", ScopeGlobal)
		require.NoError(t, os.MkdirAll(filepath.Dir(globalFile), 0o755))
		require.NoError(t, os.WriteFile(globalFile, []byte("stub"), 0o644))

		assert.Empty(t, r.Resolve("global-only", ScopeProject))
		assert.Len(t, r.Resolve("global-only", ScopeGlobal), 1)
	})
}
