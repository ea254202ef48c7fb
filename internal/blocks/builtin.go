package blocks

import (
	"sort"

	"github.com/magus-warrior/80-s-webbuilder/internal/model"
)

// builtin is the block library bundled with the builder.
var builtin = map[string]Template{
	"hero": {
		Type: model.NodeSection,
		Name: "Hero",
		Props: map[string]string{
			"padding":    "64px",
			"textAlign":  "center",
			"background": "Surface",
		},
		Children: []Template{
			{
				Type:  model.NodeText,
				Name:  "Headline",
				Props: map[string]string{"fontSize": "48px", "fontWeight": "700"},
			},
			{
				Type:  model.NodeText,
				Name:  "Subheadline",
				Props: map[string]string{"fontSize": "20px", "color": "Muted"},
			},
			{
				Type:  model.NodeButton,
				Name:  "Call to action",
				Props: map[string]string{"background": "Brand Color", "padding": "12px", "borderRadius": "8px"},
			},
		},
	},
	"text": {
		Type:  model.NodeText,
		Name:  "Text",
		Props: map[string]string{"fontSize": "16px"},
	},
	"button": {
		Type:  model.NodeButton,
		Name:  "Button",
		Props: map[string]string{"background": "Brand Color", "padding": "12px", "borderRadius": "8px"},
	},
	"image": {
		Type:  model.NodeImage,
		Name:  "Image",
		Props: map[string]string{"width": "100%"},
	},
	"grid": {
		Type:  model.NodeContainer,
		Name:  "Grid",
		Props: map[string]string{"columns": "3"},
	},
}

// Builtin returns the bundled block names in sorted order.
func Builtin() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the template registered under name.
func Lookup(name string) (Template, bool) {
	t, ok := builtin[name]
	return t, ok
}
