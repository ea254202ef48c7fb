package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magus-warrior/80-s-webbuilder/internal/document"
	"github.com/magus-warrior/80-s-webbuilder/internal/model"
	"github.com/magus-warrior/80-s-webbuilder/internal/tree"
)

type showOptions struct {
	jsonOutput bool
}

func newShowCmd(root *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <project-file>",
		Short: "Show a summary of a project document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the project summary as JSON")

	return cmd
}

func runShow(cmd *cobra.Command, path string, opts *showOptions) error {
	project, err := document.ParseProject(path)
	if err != nil {
		return newCommandError("show", fmt.Sprintf("loading %s", path), err, "Run 'webbuilder validate' for details on what is wrong.")
	}

	if opts.jsonOutput {
		return renderShowJSON(cmd, project)
	}

	return renderShowTable(cmd, project)
}

func renderShowTable(cmd *cobra.Command, project *model.Project) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s\n", styled(titleStyle, project.Name, out))
	fmt.Fprintf(out, "Slug: %s\n", project.Slug)
	if project.Description != "" {
		fmt.Fprintf(out, "\n%s\n", project.Description)
	}

	fmt.Fprintf(out, "\n%s\n", styled(sectionStyle, "Pages", out))
	for _, page := range project.Pages {
		fmt.Fprintf(out, "  %-20s %-16s %d nodes\n", page.Title, page.Path, tree.Count(page.Nodes))
	}

	fmt.Fprintf(out, "\n%s\n", styled(sectionStyle, "Tokens", out))
	if len(project.Tokens) == 0 {
		fmt.Fprintf(out, "  %s\n", styled(mutedStyle, "(none)", out))
		return nil
	}
	for _, token := range project.Tokens {
		fmt.Fprintf(out, "  %-24s %-10s %s\n", token.Name, token.Category, token.Value)
	}

	return nil
}

type showPagePayload struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Path      string `json:"path"`
	NodeCount int    `json:"node_count"`
}

type showJSONPayload struct {
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Description string             `json:"description,omitempty"`
	Pages       []showPagePayload  `json:"pages"`
	Tokens      []model.ThemeToken `json:"tokens,omitempty"`
}

func renderShowJSON(cmd *cobra.Command, project *model.Project) error {
	payload := showJSONPayload{
		Name:        project.Name,
		Slug:        project.Slug,
		Description: project.Description,
		Tokens:      project.Tokens,
	}

	for _, page := range project.Pages {
		payload.Pages = append(payload.Pages, showPagePayload{
			ID:        page.ID,
			Title:     page.Title,
			Path:      page.Path,
			NodeCount: tree.Count(page.Nodes),
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
