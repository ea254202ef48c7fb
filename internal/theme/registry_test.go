package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magus-warrior/80-s-webbuilder/internal/model"
	builderrors "github.com/magus-warrior/80-s-webbuilder/pkg/errors"
)

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "spaces collapse", input: "Brand Color", expected: "brand-color"},
		{name: "mixed punctuation", input: "Primary / Accent!", expected: "primary-accent"},
		{name: "already canonical", input: "spacing-lg", expected: "spacing-lg"},
		{name: "runs collapse to one hyphen", input: "a___b", expected: "a-b"},
		{name: "edges trimmed", input: "--brand--", expected: "brand"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeName(tt.input))
			assert.Equal(t, "--"+tt.expected, VariableName(tt.input))
		})
	}
}

func newTestRegistry(t *testing.T, tokens ...model.ThemeToken) *Registry {
	t.Helper()
	r, err := NewRegistry(tokens, nil)
	require.NoError(t, err)
	return r
}

func TestLookupIsOrderIndependent(t *testing.T) {
	t.Parallel()

	a := model.ThemeToken{Name: "Brand Color", Value: "#ff0000", Category: model.TokenColor}
	b := model.ThemeToken{Name: "Spacing LG", Value: "24px", Category: model.TokenSpacing}

	forward := newTestRegistry(t, a, b)
	backward := newTestRegistry(t, b, a)

	fromForward, ok := forward.Lookup("brand-color")
	require.True(t, ok)
	fromBackward, ok := backward.Lookup("Brand Color")
	require.True(t, ok)
	assert.Equal(t, fromForward, fromBackward)
}

func TestNewRegistryRejectsCollidingNames(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry([]model.ThemeToken{
		{Name: "Brand Color", Value: "#f00", Category: model.TokenColor},
		{Name: "brand--color", Value: "#00f", Category: model.TokenColor},
	}, nil)

	var validationErr *builderrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestUpdateValue(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t,
		model.ThemeToken{Name: "A", Value: "red", Category: model.TokenColor},
		model.ThemeToken{Name: "B", Value: "blue", Category: model.TokenColor},
	)

	r.UpdateValue("A", "green")
	tok, _ := r.Lookup("A")
	assert.Equal(t, "green", tok.Value)
	other, _ := r.Lookup("B")
	assert.Equal(t, "blue", other.Value, "others unaffected")

	r.UpdateValue("missing", "purple")
	assert.Len(t, r.Tokens(), 2)
}

func TestUpdateValueMatchesByNormalizedKey(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t,
		model.ThemeToken{Name: "Brand Color", Value: "#f00", Category: model.TokenColor},
	)

	// Any spelling that normalizes to the same key addresses the token,
	// matching Lookup's identity notion.
	r.UpdateValue("brand-color", "#00f")
	tok, ok := r.Lookup("Brand Color")
	require.True(t, ok)
	assert.Equal(t, "#00f", tok.Value)
}

func TestApplyPresetPreservesExistingValues(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t,
		model.ThemeToken{Name: "A", Value: "red", Category: model.TokenColor},
		model.ThemeToken{Name: "B", Value: "blue", Category: model.TokenColor},
	)

	preset := []model.ThemeToken{
		{Name: "A", Value: "green", Category: model.TokenColor},
		{Name: "C", Value: "yellow", Category: model.TokenColor},
	}
	require.NoError(t, r.ApplyPreset(preset, true))

	tokens := r.Tokens()
	require.Len(t, tokens, 2)
	assert.Equal(t, "red", tokens[0].Value, "A keeps its existing value")
	assert.Equal(t, "yellow", tokens[1].Value, "C adopts the preset value")
	_, hasB := r.Lookup("B")
	assert.False(t, hasB, "B is dropped because the preset omits it")
}

func TestApplyPresetPreserveMatchesByNormalizedKey(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t,
		model.ThemeToken{Name: "Brand Color", Value: "red", Category: model.TokenColor},
	)

	require.NoError(t, r.ApplyPreset([]model.ThemeToken{
		{Name: "brand-color", Value: "green", Category: model.TokenColor},
	}, true))

	tok, ok := r.Lookup("Brand Color")
	require.True(t, ok)
	assert.Equal(t, "red", tok.Value, "differently spelled preset name still preserves the value")
}

func TestApplyPresetWithoutPreserve(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t,
		model.ThemeToken{Name: "A", Value: "red", Category: model.TokenColor},
	)
	require.NoError(t, r.ApplyPreset([]model.ThemeToken{
		{Name: "A", Value: "green", Category: model.TokenColor},
	}, false))

	tok, _ := r.Lookup("A")
	assert.Equal(t, "green", tok.Value)
}

func TestVariableMap(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t,
		model.ThemeToken{Name: "Brand Color", Value: "#336699", Category: model.TokenColor},
		model.ThemeToken{Name: "Radius SM", Value: "4px", Category: model.TokenRadius},
	)

	assert.Equal(t, map[string]string{
		"--brand-color": "#336699",
		"--radius-sm":   "4px",
	}, r.VariableMap())
}
