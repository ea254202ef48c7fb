// Package document loads and stores builder projects as YAML or JSON files,
// the data shapes exchanged with the storage collaborator. Every load runs
// full validation: struct rules first, then the tree invariants that the rest
// of the engine depends on.
package document

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/magus-warrior/80-s-webbuilder/internal/model"
	"github.com/magus-warrior/80-s-webbuilder/internal/theme"
	"github.com/magus-warrior/80-s-webbuilder/internal/tree"
	builderrors "github.com/magus-warrior/80-s-webbuilder/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseProject loads a project file from disk, validates it, and returns the
// resulting model. The format follows the file extension: .json is JSON,
// anything else is YAML.
func ParseProject(path string) (*model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, builderrors.NewParseError(path, 0, err)
	}

	var project model.Project
	if isJSON(path) {
		if err := json.Unmarshal(data, &project); err != nil {
			return nil, builderrors.NewParseError(path, 0, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &project); err != nil {
			return nil, builderrors.NewParseError(path, extractLine(err), err)
		}
	}

	if err := ValidateProject(&project); err != nil {
		return nil, err
	}

	return &project, nil
}

// WriteProject stores a project back to disk in the format the extension
// names.
func WriteProject(path string, project *model.Project) error {
	var (
		data []byte
		err  error
	)
	if isJSON(path) {
		data, err = json.MarshalIndent(project, "", "  ")
	} else {
		data, err = yaml.Marshal(project)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ValidateProject checks a loaded project end to end: struct-level rules,
// page id uniqueness, the per-page tree invariants, and token name
// collisions.
func ValidateProject(project *model.Project) error {
	if err := validatorInstance().Struct(project); err != nil {
		return builderrors.NewValidationError("", "project failed validation", err)
	}

	pageIDs := make(map[string]struct{}, len(project.Pages))
	for _, page := range project.Pages {
		if _, dup := pageIDs[page.ID]; dup {
			return builderrors.NewValidationError(
				"pages",
				fmt.Sprintf("duplicate page id %q", page.ID),
				nil,
			)
		}
		pageIDs[page.ID] = struct{}{}

		if err := tree.Validate(page.Nodes); err != nil {
			return err
		}
	}

	return theme.ValidateTokens(project.Tokens)
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
