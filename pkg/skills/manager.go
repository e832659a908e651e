package skills

import (
	"context"
	"os"
	"path/filepath"
	"regexp"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/skillsync-cli/skillsync/pkg/agents"
	"github.com/skillsync-cli/skillsync/pkg/logger"
)

// Outcome records the result of one agent's share of a fan-out operation.
type Outcome struct {
	Agent string
	File  string
	Err   error
}

// Report maps agent name to its outcome for a create, edit or delete. A
// fan-out never rolls back: outcomes with a nil Err stay on disk even when
// other agents failed, and the Report is how callers detect partial states.
type Report map[string]Outcome

// AgentSkills lists the skill directories one agent currently has.
type AgentSkills struct {
	Agent  string
	Dir    string
	Skills []string
}

// Manager implements the skill lifecycle across all registered agents. The
// agent registry is fixed at construction time.
type Manager struct {
	bindings      []agents.Binding
	projectDir    string
	homeDir       string
	resolver      *Resolver
	broadcastEdit bool
}

// Option is a function that configures a Manager
type Option func(*Manager) error

// WithAgents sets the agent registry the manager operates on.
func WithAgents(bindings ...agents.Binding) Option {
	return func(m *Manager) error {
		if len(bindings) == 0 {
			return errors.New("at least one agent binding must be provided")
		}
		for _, b := range bindings {
			if err := b.Validate(); err != nil {
				return err
			}
		}
		m.bindings = bindings
		return nil
	}
}

// WithProjectDir overrides the project scope root, defaulting to the current
// working directory.
func WithProjectDir(dir string) Option {
	return func(m *Manager) error {
		m.projectDir = dir
		return nil
	}
}

// WithHomeDir overrides the home directory used as the global scope fallback.
func WithHomeDir(dir string) Option {
	return func(m *Manager) error {
		m.homeDir = dir
		return nil
	}
}

// WithBroadcastEdit makes Edit copy the first resolved agent's edited content
// to every agent, collapsing any per-agent divergence. The default edits each
// agent's own file independently.
func WithBroadcastEdit() Option {
	return func(m *Manager) error {
		m.broadcastEdit = true
		return nil
	}
}

// NewManager creates a skill lifecycle manager. Without options it operates
// on the built-in agent registry, rooted at the current working directory for
// project scope and the user home directory for global scope.
func NewManager(opts ...Option) (*Manager, error) {
	m := &Manager{}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	if m.bindings == nil {
		m.bindings = agents.Default()
	}
	if m.projectDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get working directory")
		}
		m.projectDir = wd
	}
	if m.homeDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get user home directory")
		}
		m.homeDir = home
	}

	m.resolver = NewResolver(m.bindings, m.projectDir, m.homeDir)
	return m, nil
}

// Agents returns the bindings the manager operates on, in registry order.
func (m *Manager) Agents() []agents.Binding {
	return m.bindings
}

// Resolve maps each agent that currently stores the named skill to its
// SKILL.md path in the given scope.
func (m *Manager) Resolve(name string, scope Scope) map[string]string {
	return m.resolver.Resolve(name, scope)
}

// Create writes the rendered skill definition for every registered agent.
// It is idempotent: when the skill already resolves to existing files, that
// mapping is returned unchanged and nothing is written. A failing agent does
// not stop the fan-out; per-agent results land in the Report and failures
// are aggregated into the returned error.
func (m *Manager) Create(ctx context.Context, name, description string, scope Scope) (Report, error) {
	if violations := ValidateName(name); len(violations) > 0 {
		return nil, &ValidationError{Field: "name", Violations: violations}
	}
	if violations := ValidateDescription(description); len(violations) > 0 {
		return nil, &ValidationError{Field: "description", Violations: violations}
	}

	if existing := m.resolver.Resolve(name, scope); len(existing) > 0 {
		logger.G(ctx).WithFields(logrus.Fields{
			"skill": name,
			"scope": scope.String(),
		}).Debug("skill already exists, returning existing files")

		report := make(Report, len(existing))
		for agent, file := range existing {
			report[agent] = Outcome{Agent: agent, File: file}
		}
		return report, nil
	}

	content, err := RenderTemplate(name, description)
	if err != nil {
		return nil, err
	}

	report := make(Report, len(m.bindings))
	var errs *multierror.Error

	for _, b := range m.bindings {
		file := m.resolver.SkillFile(b, name, scope)
		outcome := Outcome{Agent: b.Name, File: file}

		if err := writeSkillFile(file, content); err != nil {
			outcome.Err = err
			errs = multierror.Append(errs, errors.Wrapf(err, "agent %s", b.Name))
			logger.G(ctx).WithError(err).WithField("agent", b.Name).Error("failed to create skill file")
		} else {
			logger.G(ctx).WithFields(logrus.Fields{
				"agent": b.Name,
				"file":  file,
			}).Debug("created skill file")
		}

		report[b.Name] = outcome
	}

	return report, errs.ErrorOrNil()
}

var descriptionLineRE = regexp.MustCompile(`(?m)^description:\s*.*$`)

// replaceDescriptionLine rewrites the first "description:" line of a skill
// definition. Content without such a line is returned unchanged; no line is
// inserted.
func replaceDescriptionLine(content, description string) string {
	loc := descriptionLineRE.FindStringIndex(content)
	if loc == nil {
		return content
	}
	return content[:loc[0]] + "description: " + description + content[loc[1]:]
}

// Edit rewrites the description line of an existing skill for every agent
// that has it. Each agent's own file is edited in place, preserving any
// per-agent divergence; WithBroadcastEdit instead propagates the first
// resolved agent's edited content to all of them.
func (m *Manager) Edit(ctx context.Context, name, description string, scope Scope) (Report, error) {
	if violations := ValidateDescription(description); len(violations) > 0 {
		return nil, &ValidationError{Field: "description", Violations: violations}
	}

	existing := m.resolver.Resolve(name, scope)
	if len(existing) == 0 {
		return nil, &NotFoundError{Name: name}
	}

	var broadcast string
	if m.broadcastEdit {
		source := m.firstResolved(existing)
		raw, err := os.ReadFile(source)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read skill file")
		}
		broadcast = replaceDescriptionLine(string(raw), description)
	}

	report := make(Report, len(existing))
	var errs *multierror.Error

	for _, b := range m.bindings {
		file, ok := existing[b.Name]
		if !ok {
			continue
		}
		outcome := Outcome{Agent: b.Name, File: file}

		content := broadcast
		if !m.broadcastEdit {
			raw, err := os.ReadFile(file)
			if err != nil {
				outcome.Err = err
				errs = multierror.Append(errs, errors.Wrapf(err, "agent %s", b.Name))
				report[b.Name] = outcome
				continue
			}
			content = replaceDescriptionLine(string(raw), description)
		}

		if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
			outcome.Err = err
			errs = multierror.Append(errs, errors.Wrapf(err, "agent %s", b.Name))
			logger.G(ctx).WithError(err).WithField("agent", b.Name).Error("failed to edit skill file")
		} else {
			logger.G(ctx).WithFields(logrus.Fields{
				"agent": b.Name,
				"file":  file,
			}).Debug("edited skill file")
		}

		report[b.Name] = outcome
	}

	return report, errs.ErrorOrNil()
}

// firstResolved returns the resolved file of the first binding, in registry
// order, that has one.
func (m *Manager) firstResolved(existing map[string]string) string {
	for _, b := range m.bindings {
		if file, ok := existing[b.Name]; ok {
			return file
		}
	}
	return ""
}

// Delete removes the skill's directory subtree for every agent that has it,
// including any extra files beside SKILL.md. There is no rollback: agents
// already deleted stay deleted when a later removal fails.
func (m *Manager) Delete(ctx context.Context, name string, scope Scope) (Report, error) {
	existing := m.resolver.Resolve(name, scope)
	if len(existing) == 0 {
		return nil, &NotFoundError{Name: name}
	}

	report := make(Report, len(existing))
	var errs *multierror.Error

	for _, b := range m.bindings {
		file, ok := existing[b.Name]
		if !ok {
			continue
		}
		dir := filepath.Dir(file)
		outcome := Outcome{Agent: b.Name, File: file}

		if err := os.RemoveAll(dir); err != nil {
			outcome.Err = err
			errs = multierror.Append(errs, errors.Wrapf(err, "agent %s", b.Name))
			logger.G(ctx).WithError(err).WithField("agent", b.Name).Error("failed to delete skill directory")
		} else {
			logger.G(ctx).WithFields(logrus.Fields{
				"agent": b.Name,
				"dir":   dir,
			}).Debug("deleted skill directory")
		}

		report[b.Name] = outcome
	}

	return report, errs.ErrorOrNil()
}

// List enumerates the skill directories of every registered agent in the
// given scope. Agents whose skills directory does not exist are skipped;
// agents with an existing but empty directory are reported with an empty
// list. Order follows the registry.
func (m *Manager) List(ctx context.Context, scope Scope) ([]AgentSkills, error) {
	var listed []AgentSkills

	for _, b := range m.bindings {
		dir := filepath.Join(m.resolver.BaseRoot(b, scope), b.SkillsPath())

		entries, err := os.ReadDir(dir)
		if err != nil {
			logger.G(ctx).WithFields(logrus.Fields{
				"agent": b.Name,
				"dir":   dir,
			}).Debug("skills directory not present, skipping agent")
			continue
		}

		names := []string{}
		for _, entry := range entries {
			info, err := os.Stat(filepath.Join(dir, entry.Name()))
			if err != nil || !info.IsDir() {
				continue
			}
			names = append(names, entry.Name())
		}

		listed = append(listed, AgentSkills{Agent: b.Name, Dir: dir, Skills: names})
	}

	return listed, nil
}

func writeSkillFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create skill directory")
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrap(err, "failed to write skill file")
	}
	return nil
}
