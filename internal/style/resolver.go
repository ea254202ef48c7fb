// Package style turns a node's property bag plus the theme registry into a
// final CSS declaration for the rendering collaborator.
package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/magus-warrior/80-s-webbuilder/internal/model"
	"github.com/magus-warrior/80-s-webbuilder/internal/theme"
)

// propertyMap is the closed vocabulary of recognized style keys. It is shared
// between the editing surface and the resolver: a key outside this map is not
// styling, so a typo yields an unstyled node instead of a silent half-state.
var propertyMap = map[string]string{
	"color":               "color",
	"background":          "background",
	"fontSize":            "font-size",
	"fontWeight":          "font-weight",
	"textAlign":           "text-align",
	"padding":             "padding",
	"margin":              "margin",
	"borderRadius":        "border-radius",
	"gap":                 "gap",
	"width":               "width",
	"height":              "height",
	"display":             "display",
	"justifyContent":      "justify-content",
	"alignItems":          "align-items",
	"gridTemplateColumns": "grid-template-columns",
}

// columnsProp triggers the implicit grid defaults on container nodes. It is
// layout metadata, not itself a style key.
const columnsProp = "columns"

// PropertyKeys returns the recognized style keys in no particular order.
func PropertyKeys() []string {
	keys := make([]string, 0, len(propertyMap))
	for k := range propertyMap {
		keys = append(keys, k)
	}
	return keys
}

// CSSProperty maps a recognized style key to its CSS property name.
func CSSProperty(key string) (string, bool) {
	prop, ok := propertyMap[key]
	return prop, ok
}

// Declaration is a resolved set of CSS property -> value pairs for one node.
type Declaration map[string]string

// Resolver resolves node property bags against the theme registry.
type Resolver struct {
	registry *theme.Registry
}

// NewResolver builds a Resolver over the given registry.
func NewResolver(registry *theme.Registry) *Resolver {
	return &Resolver{registry: registry}
}

// Resolve produces the final declaration for a node. Values naming a known
// token become var() references; values already spelled as a variable
// reference, and plain literals, pass through unchanged. Container nodes with
// a numeric columns prop pick up grid defaults for whatever they have not set
// explicitly.
func (r *Resolver) Resolve(node *model.Node) Declaration {
	decl := Declaration{}
	if node == nil {
		return decl
	}

	for key, value := range node.Props {
		prop, ok := propertyMap[key]
		if !ok {
			continue
		}
		decl[prop] = r.resolveValue(value)
	}

	applyGridDefaults(node, decl)
	return decl
}

func (r *Resolver) resolveValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if strings.HasPrefix(trimmed, "var(") {
		return value
	}
	if r.registry != nil {
		if tok, ok := r.registry.Lookup(trimmed); ok {
			return fmt.Sprintf("var(%s)", theme.VariableName(tok.Name))
		}
	}
	return value
}

// applyGridDefaults fills in display, grid-template-columns, and gap for a
// container with a numeric columns prop. Explicit node props always win.
func applyGridDefaults(node *model.Node, decl Declaration) {
	if !node.IsContainer() {
		return
	}
	raw, ok := node.Prop(columnsProp)
	if !ok {
		return
	}
	columns, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || columns <= 0 {
		return
	}

	defaults := Declaration{
		"display":               "grid",
		"grid-template-columns": fmt.Sprintf("repeat(%d, minmax(0, 1fr))", columns),
		"gap":                   "1rem",
	}
	for prop, value := range defaults {
		if _, set := decl[prop]; !set {
			decl[prop] = value
		}
	}
}
