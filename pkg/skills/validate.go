package skills

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	maxNameLength        = 64
	maxDescriptionLength = 1024
)

var nameRE = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// ValidateName checks a proposed skill name against the naming rules and
// returns the list of violations, empty when the name is valid. The name is
// used as a directory segment, so path separators are rejected outright.
func ValidateName(name string) []string {
	var violations []string

	if name == "" {
		return append(violations, "name must not be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		violations = append(violations, "name must not contain path separators")
	}
	if len(name) > maxNameLength {
		violations = append(violations, fmt.Sprintf("name must be at most %d characters", maxNameLength))
	}
	if !strings.ContainsAny(name, `/\`) && !nameRE.MatchString(name) {
		violations = append(violations, "name must start with a letter or digit and contain only letters, digits, hyphens and underscores")
	}

	return violations
}

// ValidateDescription checks a skill description and returns the list of
// violations, empty when the description is valid. Descriptions live on a
// single frontmatter line, so embedded newlines are rejected.
func ValidateDescription(description string) []string {
	var violations []string

	if strings.TrimSpace(description) == "" {
		return append(violations, "description must not be empty")
	}
	if strings.ContainsAny(description, "\r\n") {
		violations = append(violations, "description must be a single line")
	}
	if len(description) > maxDescriptionLength {
		violations = append(violations, fmt.Sprintf("description must be at most %d characters", maxDescriptionLength))
	}

	return violations
}
