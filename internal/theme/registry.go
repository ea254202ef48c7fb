// Package theme manages the project's named design tokens and their
// deterministic mapping onto CSS custom properties.
package theme

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/magus-warrior/80-s-webbuilder/internal/logger"
	"github.com/magus-warrior/80-s-webbuilder/internal/model"
	builderrors "github.com/magus-warrior/80-s-webbuilder/pkg/errors"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeName reduces a token display name to its canonical key: lowercase
// with non-alphanumeric runs collapsed to a single hyphen. The mapping is the
// single source of truth shared by variable naming and style resolution, so
// "Brand Color" and "brand--color" address the same token.
func NormalizeName(name string) string {
	key := nonAlphanumeric.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(key, "-")
}

// VariableName returns the CSS custom property for a token name, e.g.
// "Brand Color" -> "--brand-color".
func VariableName(name string) string {
	return "--" + NormalizeName(name)
}

// Registry holds the active token set for one open document. Mutations go
// through the editor; the registry itself assumes a single owner.
type Registry struct {
	tokens []model.ThemeToken
	log    *logger.Logger
}

// NewRegistry builds a registry seeded with the project's tokens. Token names
// must normalize to distinct keys; a collision is a caller error, never
// silently resolved.
func NewRegistry(tokens []model.ThemeToken, log *logger.Logger) (*Registry, error) {
	if err := checkCollisions(tokens); err != nil {
		return nil, err
	}
	r := &Registry{
		tokens: append([]model.ThemeToken(nil), tokens...),
		log:    log.Component("theme"),
	}
	return r, nil
}

// Tokens returns a copy of the active token set, in declaration order.
func (r *Registry) Tokens() []model.ThemeToken {
	return append([]model.ThemeToken(nil), r.tokens...)
}

// Lookup resolves a name (or anything normalizing to the same key) to its
// token. Resolution is referentially transparent: the same name yields the
// same token regardless of registry ordering, because keys are unique.
func (r *Registry) Lookup(name string) (model.ThemeToken, bool) {
	key := NormalizeName(name)
	for _, tok := range r.tokens {
		if NormalizeName(tok.Name) == key {
			return tok, true
		}
	}
	return model.ThemeToken{}, false
}

// UpdateValue replaces the value of the token whose name normalizes to the
// same key, leaving all others untouched. An unknown name is a silent no-op.
func (r *Registry) UpdateValue(name, value string) {
	key := NormalizeName(name)
	for i, tok := range r.tokens {
		if NormalizeName(tok.Name) == key {
			r.tokens[i].Value = value
			r.log.WithFields(map[string]any{"token": name}).Debug("token value updated")
			return
		}
	}
}

// ApplyPreset wholesale-replaces the active token set. With
// preserveExistingValues, incoming tokens whose names normalize to an
// existing token's key keep the existing value; everything else adopts the
// preset's value. Tokens absent from the preset are dropped.
func (r *Registry) ApplyPreset(tokens []model.ThemeToken, preserveExistingValues bool) error {
	if err := checkCollisions(tokens); err != nil {
		return err
	}

	next := append([]model.ThemeToken(nil), tokens...)
	if preserveExistingValues {
		existing := make(map[string]string, len(r.tokens))
		for _, tok := range r.tokens {
			existing[NormalizeName(tok.Name)] = tok.Value
		}
		for i, tok := range next {
			if value, ok := existing[NormalizeName(tok.Name)]; ok {
				next[i].Value = value
			}
		}
	}

	r.tokens = next
	r.log.WithFields(map[string]any{
		"count":    len(next),
		"preserve": preserveExistingValues,
	}).Debug("preset applied")
	return nil
}

// VariableMap renders the registry as CSS variable name -> value, scoped for
// the document root so descendant renderers reference tokens without
// re-resolving them.
func (r *Registry) VariableMap() map[string]string {
	out := make(map[string]string, len(r.tokens))
	for _, tok := range r.tokens {
		out[VariableName(tok.Name)] = tok.Value
	}
	return out
}

// ValidateTokens checks that a token set is loadable: no two names may
// collapse to the same canonical variable.
func ValidateTokens(tokens []model.ThemeToken) error {
	return checkCollisions(tokens)
}

func checkCollisions(tokens []model.ThemeToken) error {
	byKey := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		key := NormalizeName(tok.Name)
		if prev, ok := byKey[key]; ok {
			return builderrors.NewValidationError(
				"tokens",
				fmt.Sprintf("token names %q and %q collapse to the same variable --%s", prev, tok.Name, key),
				nil,
			)
		}
		byKey[key] = tok.Name
	}
	return nil
}
