package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magus-warrior/80-s-webbuilder/internal/document"
	"github.com/magus-warrior/80-s-webbuilder/internal/editor"
	"github.com/magus-warrior/80-s-webbuilder/internal/theme"
)

type tokensOptions struct {
	presetPath string
	preserve   bool
	output     string
}

func newTokensCmd(root *rootFlags) *cobra.Command {
	opts := &tokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens <project-file>",
		Short: "List theme tokens, optionally applying a preset first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args[0], opts, root)
		},
	}

	cmd.Flags().StringVar(&opts.presetPath, "preset", "", "Apply a theme preset file before listing")
	cmd.Flags().BoolVar(&opts.preserve, "preserve", false, "Keep existing values for tokens the preset also defines")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the updated project document to a file")

	return cmd
}

func runTokens(cmd *cobra.Command, path string, opts *tokensOptions, root *rootFlags) error {
	project, err := document.ParseProject(path)
	if err != nil {
		return newCommandError("tokens", fmt.Sprintf("loading %s", path), err, "Run 'webbuilder validate' for details on what is wrong.")
	}

	log, err := newLogger(root)
	if err != nil {
		return err
	}

	ed, err := editor.New(project, editor.DefaultConfig(), nil, log)
	if err != nil {
		return newCommandError("tokens", "preparing the editing session", err, "Run 'webbuilder validate' for details on what is wrong.")
	}

	if opts.presetPath != "" {
		preset, err := document.ParsePreset(opts.presetPath)
		if err != nil {
			return newCommandError("tokens", fmt.Sprintf("loading preset %s", opts.presetPath), err, "Check the preset file's token names and categories.")
		}
		if err := ed.ApplyPreset(preset.Tokens, opts.preserve); err != nil {
			return newCommandError("tokens", fmt.Sprintf("applying preset %q", preset.Name), err, "Preset token names must not collide after normalization.")
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", styled(sectionStyle, "Theme tokens", out))
	for _, token := range ed.Tokens() {
		fmt.Fprintf(out, "  %-24s %-10s %-20s %s\n", token.Name, token.Category, token.Value, styled(mutedStyle, theme.VariableName(token.Name), out))
	}

	if opts.output != "" {
		if err := document.WriteProject(opts.output, ed.Project()); err != nil {
			return newCommandError("tokens", fmt.Sprintf("writing %s", opts.output), err, "Check that the destination directory exists and is writable.")
		}
		fmt.Fprintf(out, "\nwrote %s\n", opts.output)
	}

	return nil
}
