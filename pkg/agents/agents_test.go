package agents

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillsPath(t *testing.T) {
	t.Run("defaults to dot directory convention", func(t *testing.T) {
		b := Binding{Name: "claude"}
		assert.Equal(t, filepath.Join(".claude", "skills"), b.SkillsPath())
	})

	t.Run("explicit skills dir wins", func(t *testing.T) {
		b := Binding{Name: "custom", SkillsDir: "tools/custom/skills"}
		assert.Equal(t, filepath.Join("tools", "custom", "skills"), b.SkillsPath())
	})
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Binding{Name: "claude"}.Validate())
	assert.Error(t, Binding{}.Validate())
	assert.Error(t, Binding{Name: "bad/agent"}.Validate())
	assert.Error(t, Binding{Name: `bad\agent`}.Validate())
}

func TestDefault(t *testing.T) {
	bindings := Default()
	require.NotEmpty(t, bindings)

	seen := make(map[string]bool)
	for _, b := range bindings {
		assert.NoError(t, b.Validate())
		assert.False(t, seen[b.Name], "duplicate default agent %q", b.Name)
		seen[b.Name] = true
	}
	assert.True(t, seen["claude"])
}

func TestLoadFile(t *testing.T) {
	t.Run("parses agent bindings", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "agents.yaml")
		content := `agents:
  - name: claude
    config_dir: ~/claude-config
  - name: custom
    skills_dir: tools/custom/skills
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		bindings, err := LoadFile(path)
		require.NoError(t, err)
		require.Len(t, bindings, 2)
		assert.Equal(t, "claude", bindings[0].Name)
		assert.Equal(t, "~/claude-config", bindings[0].ConfigDir)
		assert.Equal(t, "tools/custom/skills", bindings[1].SkillsDir)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("empty registry", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "agents.yaml")
		require.NoError(t, os.WriteFile(path, []byte("agents: []\n"), 0o644))

		_, err := LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "defines no agents")
	})

	t.Run("invalid binding", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "agents.yaml")
		require.NoError(t, os.WriteFile(path, []byte("agents:\n  - name: bad/agent\n"), 0o644))

		_, err := LoadFile(path)
		require.Error(t, err)
	})
}

func TestMerge(t *testing.T) {
	base := []Binding{
		{Name: "claude"},
		{Name: "cursor"},
	}

	t.Run("override replaces in place", func(t *testing.T) {
		merged := Merge(base, []Binding{{Name: "claude", ConfigDir: "/opt/claude"}})
		require.Len(t, merged, 2)
		assert.Equal(t, "/opt/claude", merged[0].ConfigDir)
		assert.Equal(t, "cursor", merged[1].Name)
	})

	t.Run("new names append in order", func(t *testing.T) {
		merged := Merge(base, []Binding{{Name: "zed"}, {Name: "aider"}})
		require.Len(t, merged, 4)
		assert.Equal(t, "zed", merged[2].Name)
		assert.Equal(t, "aider", merged[3].Name)
	})

	t.Run("does not mutate the base", func(t *testing.T) {
		Merge(base, []Binding{{Name: "claude", ConfigDir: "/opt/claude"}})
		assert.Empty(t, base[0].ConfigDir)
	})
}
