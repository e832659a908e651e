// Package skills implements the skill lifecycle: creating, editing, deleting
// and listing SKILL.md definitions replicated across supporting agent tools.
// A skill is a directory holding a SKILL.md file with YAML frontmatter
// describing the skill's name and purpose; each registered agent keeps its
// own copy under its directory convention.
package skills

// SkillFileName is the definition file stored in every skill directory.
const SkillFileName = "SKILL.md"

// Skill represents a loaded skill with its metadata
type Skill struct {
	Name        string // Unique name from frontmatter
	Description string // Brief description of the skill's purpose
	Directory   string // Full path to the skill directory
	Content     string // Full content of SKILL.md (body, not frontmatter)
}

// Metadata represents the YAML frontmatter in SKILL.md files
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Scope selects the storage root for skill directories.
type Scope int

const (
	// ScopeProject roots skills at the project working directory.
	ScopeProject Scope = iota
	// ScopeGlobal roots skills at each agent's configured directory,
	// defaulting to the user home directory.
	ScopeGlobal
)

// String returns the scope name.
func (s Scope) String() string {
	if s == ScopeGlobal {
		return "global"
	}
	return "project"
}

// ScopeFromProjectLevel converts the project-level flag into a Scope.
func ScopeFromProjectLevel(projectLevel bool) Scope {
	if projectLevel {
		return ScopeProject
	}
	return ScopeGlobal
}
