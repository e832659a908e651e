package skills

import (
	"bytes"
	"text/template"

	"github.com/pkg/errors"
)

const skillTemplateText = `---
name: {{.Name}}
description: {{.Description}}
---

# {{.Name}}

## Instructions

Add step-by-step instructions for the agent to follow when this skill is
invoked.

## Usage

Use this skill when the task matches the description above.
`

var skillTemplate = template.Must(template.New("skill").Parse(skillTemplateText))

// RenderTemplate produces the initial SKILL.md content for a skill. The
// rendered frontmatter always carries a single "description:" line, which is
// what Edit later rewrites.
func RenderTemplate(name, description string) (string, error) {
	var buf bytes.Buffer
	err := skillTemplate.Execute(&buf, struct {
		Name        string
		Description string
	}{Name: name, Description: description})
	if err != nil {
		return "", errors.Wrap(err, "failed to render skill template")
	}
	return buf.String(), nil
}
