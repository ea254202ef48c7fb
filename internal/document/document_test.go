package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magus-warrior/80-s-webbuilder/internal/model"
	builderrors "github.com/magus-warrior/80-s-webbuilder/pkg/errors"
)

const validProjectYAML = `
name: Portfolio
slug: portfolio
pages:
  - id: page-1
    title: Home
    path: /
    nodes:
      - id: hero-1
        type: section
        name: Hero
        props:
          padding: 64px
        children:
          - id: text-1
            type: text
            name: Headline
tokens:
  - name: Brand Color
    value: "#336699"
    category: color
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseProjectYAML(t *testing.T) {
	t.Parallel()

	project, err := ParseProject(writeTemp(t, "project.yaml", validProjectYAML))
	require.NoError(t, err)

	assert.Equal(t, "Portfolio", project.Name)
	require.Len(t, project.Pages, 1)
	require.Len(t, project.Pages[0].Nodes, 1)
	assert.Equal(t, model.NodeSection, project.Pages[0].Nodes[0].Type)
	require.Len(t, project.Tokens, 1)
}

func TestParseProjectMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseProject(filepath.Join(t.TempDir(), "absent.yaml"))

	var parseErr *builderrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseProjectRejectsUnknownNodeType(t *testing.T) {
	t.Parallel()

	doc := `
name: Bad
pages:
  - id: page-1
    title: Home
    path: /
    nodes:
      - id: n1
        type: carousel
        name: Nope
`
	_, err := ParseProject(writeTemp(t, "project.yaml", doc))

	var validationErr *builderrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestParseProjectRejectsDuplicateNodeIDs(t *testing.T) {
	t.Parallel()

	doc := `
name: Bad
pages:
  - id: page-1
    title: Home
    path: /
    nodes:
      - id: n1
        type: text
        name: One
      - id: n1
        type: text
        name: Two
`
	_, err := ParseProject(writeTemp(t, "project.yaml", doc))

	var invariantErr *builderrors.InvariantError
	require.ErrorAs(t, err, &invariantErr)
	assert.Equal(t, builderrors.InvariantUniqueID, invariantErr.Kind)
}

func TestParseProjectRejectsDuplicatePageIDs(t *testing.T) {
	t.Parallel()

	doc := `
name: Bad
pages:
  - id: page-1
    title: Home
    path: /
  - id: page-1
    title: About
    path: /about
`
	_, err := ParseProject(writeTemp(t, "project.yaml", doc))

	var validationErr *builderrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "duplicate page id")
}

func TestProjectRoundTripJSON(t *testing.T) {
	t.Parallel()

	project, err := ParseProject(writeTemp(t, "project.yaml", validProjectYAML))
	require.NoError(t, err)

	jsonPath := filepath.Join(t.TempDir(), "project.json")
	require.NoError(t, WriteProject(jsonPath, project))

	reloaded, err := ParseProject(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, project, reloaded)
}

func TestParsePreset(t *testing.T) {
	t.Parallel()

	doc := `
name: Midnight
description: Dark theme
tokens:
  - name: Brand Color
    value: "#0d1b2a"
    category: color
  - name: Surface
    value: "#1b263b"
    category: color
`
	preset, err := ParsePreset(writeTemp(t, "preset.yaml", doc))
	require.NoError(t, err)
	assert.Equal(t, "Midnight", preset.Name)
	require.Len(t, preset.Tokens, 2)
}

func TestParsePresetRejectsCollidingTokenNames(t *testing.T) {
	t.Parallel()

	doc := `
name: Broken
tokens:
  - name: Brand Color
    value: "#000"
    category: color
  - name: brand-color
    value: "#fff"
    category: color
`
	_, err := ParsePreset(writeTemp(t, "preset.yaml", doc))

	var validationErr *builderrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestParsePresetRejectsBadCategory(t *testing.T) {
	t.Parallel()

	doc := `
name: Broken
tokens:
  - name: Brand Color
    value: "#000"
    category: sparkle
`
	_, err := ParsePreset(writeTemp(t, "preset.yaml", doc))

	var validationErr *builderrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}
