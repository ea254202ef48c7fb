package model

// TokenCategory groups theme tokens by the kind of value they hold.
type TokenCategory string

const (
	TokenColor   TokenCategory = "color"
	TokenFont    TokenCategory = "font"
	TokenSpacing TokenCategory = "spacing"
	TokenRadius  TokenCategory = "radius"
	TokenShadow  TokenCategory = "shadow"
)

// Valid reports whether c is a known token category.
func (c TokenCategory) Valid() bool {
	switch c {
	case TokenColor, TokenFont, TokenSpacing, TokenRadius, TokenShadow:
		return true
	}
	return false
}

// ThemeToken is a named symbolic style value, resolvable to a CSS variable.
// Names are unique within a project; the registry rejects presets whose names
// collapse to the same canonical variable.
type ThemeToken struct {
	Name        string        `json:"name" yaml:"name" validate:"required"`
	Value       string        `json:"value" yaml:"value" validate:"required"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Category    TokenCategory `json:"category" yaml:"category" validate:"required,token_category"`
}
