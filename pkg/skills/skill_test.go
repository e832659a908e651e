package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScope(t *testing.T) {
	assert.Equal(t, "project", ScopeProject.String())
	assert.Equal(t, "global", ScopeGlobal.String())

	assert.Equal(t, ScopeProject, ScopeFromProjectLevel(true))
	assert.Equal(t, ScopeGlobal, ScopeFromProjectLevel(false))
}
