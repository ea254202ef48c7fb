package document

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/magus-warrior/80-s-webbuilder/internal/model"
	"github.com/magus-warrior/80-s-webbuilder/internal/theme"
	builderrors "github.com/magus-warrior/80-s-webbuilder/pkg/errors"
)

// Preset is a shareable theme: a named token set applied wholesale to a
// project's registry.
type Preset struct {
	Name        string             `yaml:"name" validate:"required"`
	Description string             `yaml:"description,omitempty"`
	Tokens      []model.ThemeToken `yaml:"tokens" validate:"min=1,dive"`
}

// ParsePreset loads a theme preset from a YAML file and validates it.
func ParsePreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, builderrors.NewParseError(path, 0, err)
	}

	var preset Preset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, builderrors.NewParseError(path, extractLine(err), err)
	}

	if err := validatorInstance().Struct(&preset); err != nil {
		return nil, builderrors.NewValidationError("", "preset failed validation", err)
	}
	if err := theme.ValidateTokens(preset.Tokens); err != nil {
		return nil, err
	}

	return &preset, nil
}
