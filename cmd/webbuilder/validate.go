package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/magus-warrior/80-s-webbuilder/internal/document"
	builderrors "github.com/magus-warrior/80-s-webbuilder/pkg/errors"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <project-file>",
		Short: "Validate a project document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], root)
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, path string, root *rootFlags) error {
	if strings.TrimSpace(path) == "" {
		return newCommandError("validate", "checking arguments", errors.New("project file path cannot be empty"), "Provide the path to a project YAML or JSON file.")
	}

	log, err := newLogger(root)
	if err != nil {
		return err
	}

	project, err := document.ParseProject(path)
	if err != nil {
		return describeValidationFailure(path, err)
	}

	log.WithFields(map[string]any{"path": path, "pages": len(project.Pages)}).Debug("project document validated")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", styled(successStyle, "valid:", out), path)
	fmt.Fprintf(out, "  project: %s\n", project.Name)
	fmt.Fprintf(out, "  pages:   %d\n", len(project.Pages))
	fmt.Fprintf(out, "  tokens:  %d\n", len(project.Tokens))
	return nil
}

func describeValidationFailure(path string, err error) error {
	var parseErr *builderrors.ParseError
	if errors.As(err, &parseErr) {
		return newCommandError("validate", fmt.Sprintf("parsing %s", path), err, "Check the document syntax near the reported line.")
	}

	var invariantErr *builderrors.InvariantError
	if errors.As(err, &invariantErr) {
		return newCommandError("validate", fmt.Sprintf("checking node tree in %s", path), err, "Every node id must be unique and no node may contain itself.")
	}

	return newCommandError("validate", fmt.Sprintf("validating %s", path), err, "Fix the reported field and validate again.")
}
