package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/magus-warrior/80-s-webbuilder/internal/document"
	"github.com/magus-warrior/80-s-webbuilder/internal/editor"
	"github.com/magus-warrior/80-s-webbuilder/internal/style"
)

type renderOptions struct {
	pageID string
	output string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <project-file>",
		Short: "Render a page's resolved styles as CSS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts, root)
		},
	}

	cmd.Flags().StringVar(&opts.pageID, "page", "", "Page id to render (defaults to the first page)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the CSS to a file instead of stdout")

	return cmd
}

func runRender(cmd *cobra.Command, path string, opts *renderOptions, root *rootFlags) error {
	project, err := document.ParseProject(path)
	if err != nil {
		return newCommandError("render", fmt.Sprintf("loading %s", path), err, "Run 'webbuilder validate' for details on what is wrong.")
	}

	log, err := newLogger(root)
	if err != nil {
		return err
	}

	ed, err := editor.New(project, editor.DefaultConfig(), nil, log)
	if err != nil {
		return newCommandError("render", "preparing the editing session", err, "Run 'webbuilder validate' for details on what is wrong.")
	}

	if opts.pageID != "" {
		if err := ed.SetActivePage(opts.pageID); err != nil {
			return newCommandError("render", fmt.Sprintf("selecting page %q", opts.pageID), err, "Run 'webbuilder show' to list the project's pages.")
		}
	}

	css := renderCSS(ed.CSSVariables(), ed.ResolveActivePage())

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(css), 0o644); err != nil {
			return newCommandError("render", fmt.Sprintf("writing %s", opts.output), err, "Check that the destination directory exists and is writable.")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", opts.output)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), css)
	return nil
}

func renderCSS(variables map[string]string, styles map[string]style.Declaration) string {
	var sb strings.Builder

	sb.WriteString(":root {\n")
	for _, name := range sortedKeys(variables) {
		fmt.Fprintf(&sb, "  %s: %s;\n", name, variables[name])
	}
	sb.WriteString("}\n")

	for _, nodeID := range sortedDeclKeys(styles) {
		decl := styles[nodeID]
		if len(decl) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\n#%s {\n", nodeID)
		for _, property := range sortedKeys(decl) {
			fmt.Fprintf(&sb, "  %s: %s;\n", property, decl[property])
		}
		sb.WriteString("}\n")
	}

	return sb.String()
}

func sortedKeys[M ~map[string]string](m M) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedDeclKeys(m map[string]style.Declaration) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
